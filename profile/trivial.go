package profile

import (
	"math"

	"github.com/phil-mansfield/haloprof/cosmo"
)

// TrivialShape is the density shape of a halo with all of its mass at the
// exact center. It has no shape parameters and its dimensionless density is
// zero everywhere away from the origin.
type TrivialShape struct{}

// ParamKeys returns nil: the trivial profile has no shape parameters.
func (TrivialShape) ParamKeys() []string { return nil }

// DimensionlessDensity returns zero at every x > 0. The point mass at the
// origin carries no finite density.
func (TrivialShape) DimensionlessDensity(
	x []float64, prms [][]float64, out ...[]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(x))}
	}
	for i := range x {
		out[0][i] = 0
	}
	return out[0], nil
}

// CumulativeMassPDF returns 1 at every x > 0: any positive radius encloses
// all the mass of a central point mass.
func (TrivialShape) CumulativeMassPDF(
	x []float64, prms [][]float64, out ...[]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(x))}
	}
	for i := range x {
		if x[i] > 0 {
			out[0][i] = 1
		} else {
			out[0][i] = 0
		}
	}
	return out[0], nil
}

var _ ClosedFormCumulativeMass = TrivialShape{}

// TrivialProfile models halos with all their mass concentrated at the halo
// center.
type TrivialProfile struct {
	*Model
}

// NewTrivialProfile creates a TrivialProfile for the given cosmology
// context.
func NewTrivialProfile(ctx *cosmo.Context) *TrivialProfile {
	return &TrivialProfile{NewModel(TrivialShape{}, ctx)}
}

// MassDensity returns the mean density of the total mass spread uniformly
// within each query radius, mass / (4 pi r^3 / 3). Unlike the other
// profiles this is not scaled by the halo boundary: it is the natural
// finite-density stand-in for a point mass at the queried radius.
func (p *TrivialProfile) MassDensity(r, mass []float64) ([]float64, error) {
	if err := p.checkRadiusMass("MassDensity", r, mass); err != nil {
		return nil, err
	}

	out := make([]float64, len(r))
	for i := range r {
		volume := 4 * math.Pi / 3 * r[i] * r[i] * r[i]
		out[i] = at(mass, i) / volume
	}
	return out, nil
}

// EnclosedMass returns the total mass at every positive radius: all of a
// point mass is interior to any positive radius.
func (p *TrivialProfile) EnclosedMass(
	radius, mass []float64,
) ([]float64, error) {
	if err := p.checkRadiusMass("EnclosedMass", radius, mass); err != nil {
		return nil, err
	}

	out := make([]float64, len(radius))
	for i := range out {
		out[i] = at(mass, i)
	}
	return out, nil
}
