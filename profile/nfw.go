package profile

import (
	"math"

	"github.com/phil-mansfield/haloprof"
	"github.com/phil-mansfield/haloprof/cosmo"
)

// ConcKey is the name of the NFW profile's single shape parameter.
const ConcKey = "conc_NFWmodel"

// NFWShape is the dimensionless density of the Navarro, Frenk & White
// (1997) profile, c^3 / (3 g(c)) / (c x (1 + c x)^2), in units of the mass
// definition's density threshold. Its single shape parameter is the
// concentration.
type NFWShape struct{}

// ParamKeys returns the NFW profile's shape parameter names.
func (NFWShape) ParamKeys() []string { return []string{ConcKey} }

// gNFW is the reciprocal of the NFW mass integral,
// g(y) = 1 / (log(1 + y) - y / (1 + y)).
func gNFW(y float64) float64 {
	return 1 / (math.Log(1+y) - y/(1+y))
}

// DimensionlessDensity evaluates the NFW shape,
// c^3 / (3 g(c)) / (c x (1 + c x)^2), at each x.
func (NFWShape) DimensionlessDensity(
	x []float64, prms [][]float64, out ...[]float64,
) ([]float64, error) {
	conc := prms[0]
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(x))}
	}

	for i := range x {
		c := at(conc, i)
		cx := c * x[i]
		num := c * c * c / (3 * gNFW(c))
		out[0][i] = num / (cx * (1 + cx) * (1 + cx))
	}
	return out[0], nil
}

// CumulativeMassPDF returns the fraction of the total halo mass enclosed
// within each scaled radius x: g(c) / g(x c), exactly. x values above 1 are
// clamped to 1, since everything beyond the halo boundary encloses all the
// mass.
//
// When the concentrations are given per-x, the two arrays must have the
// same length; otherwise CumulativeMassPDF fails with a
// ShapeMismatchError.
func (NFWShape) CumulativeMassPDF(
	x []float64, prms [][]float64, out ...[]float64,
) ([]float64, error) {
	conc := prms[0]
	if len(conc) != 1 && len(conc) != len(x) {
		return nil, haloprof.NewShapeMismatchError(
			"x", "conc", len(x), len(conc),
		)
	}
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(x))}
	}

	for i := range x {
		xi := x[i]
		if xi > 1 {
			xi = 1
		}
		c := at(conc, i)
		// g(0) = +Inf, so x = 0 correctly evaluates to 0.
		out[0][i] = gNFW(c) / gNFW(xi*c)
	}
	return out[0], nil
}

// NFWProfile is an NFW halo profile model. Concentrations for its
// operations come from a ConcMass collaborator, which defaults to the
// calibrated DuttonMaccio relation at the context's redshift.
//
// Because NFWShape implements ClosedFormCumulativeMass, all enclosed mass
// queries through this model are exact rather than quadrature-based.
type NFWProfile struct {
	*Model
	concMass ConcMass
}

var _ ClosedFormCumulativeMass = NFWShape{}

// NewNFWProfile creates an NFW profile model for the given cosmology
// context. If concMass is nil the DuttonMaccio relation at the context's
// redshift is used.
func NewNFWProfile(ctx *cosmo.Context, concMass ConcMass) *NFWProfile {
	if concMass == nil {
		concMass = &DuttonMaccio{ctx.Header().Z}
	}
	return &NFWProfile{NewModel(NFWShape{}, ctx), concMass}
}

// Concentration returns the model concentration of halos with the given
// masses in Msun/h.
func (p *NFWProfile) Concentration(mass []float64) []float64 {
	return p.concMass.Concentration(mass)
}

// MassDensity is Model.MassDensity with concentrations supplied by the
// profile's concentration-mass relation.
func (p *NFWProfile) MassDensity(r, mass []float64) ([]float64, error) {
	return p.Model.MassDensity(r, mass, p.concMass.Concentration(mass))
}

// EnclosedMass is Model.EnclosedMass with concentrations supplied by the
// profile's concentration-mass relation.
func (p *NFWProfile) EnclosedMass(radius, mass []float64) ([]float64, error) {
	return p.Model.EnclosedMass(radius, mass, p.concMass.Concentration(mass))
}

// CircularVelocity is Model.CircularVelocity with concentrations supplied
// by the profile's concentration-mass relation.
func (p *NFWProfile) CircularVelocity(
	radius, mass []float64,
) ([]float64, error) {
	return p.Model.CircularVelocity(
		radius, mass, p.concMass.Concentration(mass),
	)
}

// PotentialGradient is Model.PotentialGradient with concentrations supplied
// by the profile's concentration-mass relation.
func (p *NFWProfile) PotentialGradient(
	radius, mass []float64,
) ([]float64, error) {
	return p.Model.PotentialGradient(
		radius, mass, p.concMass.Concentration(mass),
	)
}

// CumulativeMassPDF evaluates the closed-form NFW cumulative mass
// distribution at each scaled radius for the given concentrations.
func (p *NFWProfile) CumulativeMassPDF(x, conc []float64) ([]float64, error) {
	if err := checkNonNegative("CumulativeMassPDF", "x", x); err != nil {
		return nil, err
	}
	return NFWShape{}.CumulativeMassPDF(x, [][]float64{conc})
}

// BiasedNFWProfile is an NFW profile whose concentrations are the
// underlying concentration-mass relation's values times a mutable bias
// factor. It models tracer populations whose concentration differs from
// their host halo's dark matter concentration.
type BiasedNFWProfile struct {
	*NFWProfile
	biased *biasedConcMass
}

type biasedConcMass struct {
	inner ConcMass
	bias  float64
}

func (b *biasedConcMass) Concentration(
	mass []float64, out ...[]float64,
) []float64 {
	cs := b.inner.Concentration(mass, out...)
	for i := range cs {
		cs[i] *= b.bias
	}
	return cs
}

// NewBiasedNFWProfile creates a BiasedNFWProfile with a bias of 1, i.e.
// initially identical to the unbiased profile. If concMass is nil the
// DuttonMaccio relation at the context's redshift is used.
func NewBiasedNFWProfile(
	ctx *cosmo.Context, concMass ConcMass,
) *BiasedNFWProfile {
	if concMass == nil {
		concMass = &DuttonMaccio{ctx.Header().Z}
	}
	biased := &biasedConcMass{concMass, 1.0}
	return &BiasedNFWProfile{
		&NFWProfile{NewModel(NFWShape{}, ctx), biased}, biased,
	}
}

// ConcBias returns the current concentration bias factor.
func (p *BiasedNFWProfile) ConcBias() float64 { return p.biased.bias }

// SetConcBias sets the concentration bias factor. Calibration code may call
// this between queries; doing so concurrently with queries on the same
// instance is not synchronized.
func (p *BiasedNFWProfile) SetConcBias(bias float64) { p.biased.bias = bias }
