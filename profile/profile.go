/*package profile models the radial mass-density profiles of dark matter
halos.

A profile is described by its dimensionless density shape: a pure function
of the halo-centric distance scaled by the halo boundary radius, plus zero
or more shape parameters such as the concentration. The Model type composes
a Shape with a cosmology Context and derives every physical quantity from
that pair: physical densities, enclosed masses, cumulative mass
distributions, circular velocities, and potential gradients.

Shapes which know a closed form for their cumulative mass distribution can
implement ClosedFormCumulativeMass, in which case Model uses it instead of
quadrature. The generic quadrature path normalizes each enclosed mass
integral by the same integral evaluated at the halo boundary, so both paths
recover the total halo mass at the boundary and agree everywhere to the
quadrature tolerance. The closed form is still preferred where available
since it is exact and cheaper.

Operations on a single Model are safe to call concurrently. The profile
variants expose mutable parameters (e.g. the concentration bias); mutating
those while another goroutine is using the same instance is the caller's
responsibility to avoid.
*/
package profile

import (
	"math"

	"github.com/phil-mansfield/haloprof"
	"github.com/phil-mansfield/haloprof/cosmo"
	"github.com/phil-mansfield/haloprof/math/quad"
)

// enclosedMassRelTol is the relative tolerance of the quadrature used by
// the generic enclosed mass path.
const enclosedMassRelTol = 1e-5

// Shape is the dimensionless density shape of a radial profile: density in
// units of the mass definition's density threshold as a function of
// x = r / R_halo.
//
// Implementations must be pure: no side effects and no dependence on
// anything but the arguments. Each shape parameter array must have length 1
// (a single value shared by every x) or len(x).
type Shape interface {
	// ParamKeys returns the ordered names of the shape parameters consumed
	// by DimensionlessDensity.
	ParamKeys() []string
	// DimensionlessDensity evaluates the shape at each x. If an output
	// array is given, the result is written to it (the array is still
	// returned as a convenience).
	DimensionlessDensity(
		x []float64, prms [][]float64, out ...[]float64,
	) ([]float64, error)
}

// ClosedFormCumulativeMass is implemented by shapes which know an exact
// expression for the fraction of the total mass enclosed within scaled
// radius x. Model prefers it over quadrature wherever enclosed masses are
// needed.
type ClosedFormCumulativeMass interface {
	CumulativeMassPDF(
		x []float64, prms [][]float64, out ...[]float64,
	) ([]float64, error)
}

// Model derives physical halo profile quantities from a dimensionless
// density shape and a cosmology context.
type Model struct {
	ctx   *cosmo.Context
	shape Shape
}

// NewModel creates a Model for the given shape and cosmology context.
func NewModel(shape Shape, ctx *cosmo.Context) *Model {
	return &Model{ctx, shape}
}

// Context returns the model's cosmology context.
func (m *Model) Context() *cosmo.Context { return m.ctx }

// DensityThreshold returns the characteristic density which scales the
// model's dimensionless densities, in Msun/h / (Mpc/h)^3.
func (m *Model) DensityThreshold() float64 { return m.ctx.DensityThreshold() }

// ParamKeys returns the ordered names of the model's shape parameters.
func (m *Model) ParamKeys() []string { return m.shape.ParamKeys() }

// HaloMassToHaloRadius converts halo masses in Msun/h to boundary radii in
// Mpc/h for the model's mass definition.
func (m *Model) HaloMassToHaloRadius(ms []float64, out ...[]float64) []float64 {
	return m.ctx.HaloMassToHaloRadius(ms, out...)
}

// HaloRadiusToHaloMass converts boundary radii in Mpc/h to halo masses in
// Msun/h for the model's mass definition.
func (m *Model) HaloRadiusToHaloMass(rs []float64, out ...[]float64) []float64 {
	return m.ctx.HaloRadiusToHaloMass(rs, out...)
}

// DimensionlessDensity evaluates the model's density shape at each scaled
// radius x.
func (m *Model) DimensionlessDensity(
	x []float64, prms ...[]float64,
) ([]float64, error) {
	if err := checkNonNegative("DimensionlessDensity", "x", x); err != nil {
		return nil, err
	}
	if err := checkParams(
		"DimensionlessDensity", len(x), m.shape.ParamKeys(), prms,
	); err != nil {
		return nil, err
	}
	return m.shape.DimensionlessDensity(x, prms)
}

// MassDensity returns the physical density in Msun/h / (Mpc/h)^3 of halos
// of the given total masses at the given halo-centric distances r (Mpc/h).
// mass must have length 1 or len(r).
func (m *Model) MassDensity(
	r, mass []float64, prms ...[]float64,
) ([]float64, error) {
	if err := m.checkRadiusMass("MassDensity", r, mass); err != nil {
		return nil, err
	}
	if err := checkParams(
		"MassDensity", len(r), m.shape.ParamKeys(), prms,
	); err != nil {
		return nil, err
	}

	rh := m.ctx.HaloMassToHaloRadius(mass)
	x := make([]float64, len(r))
	for i := range r {
		x[i] = r[i] / at(rh, i)
	}

	rho, err := m.shape.DimensionlessDensity(x, prms)
	if err != nil {
		return nil, err
	}
	thresh := m.ctx.DensityThreshold()
	for i := range rho {
		rho[i] *= thresh
	}
	return rho, nil
}

// EnclosedMass returns the mass in Msun/h enclosed within each radius
// (Mpc/h) for halos of the given total masses. mass must have length 1 or
// len(radius).
//
// If the model's shape implements ClosedFormCumulativeMass the result is
// exact. Otherwise each radius gets an independent adaptive quadrature of
// the density profile, normalized so that the halo boundary encloses the
// total mass; the two paths agree to the quadrature tolerance.
func (m *Model) EnclosedMass(
	radius, mass []float64, prms ...[]float64,
) ([]float64, error) {
	if err := m.checkRadiusMass("EnclosedMass", radius, mass); err != nil {
		return nil, err
	}
	if err := checkParams(
		"EnclosedMass", len(radius), m.shape.ParamKeys(), prms,
	); err != nil {
		return nil, err
	}

	rh := m.ctx.HaloMassToHaloRadius(mass)

	if cf, ok := m.shape.(ClosedFormCumulativeMass); ok {
		x := make([]float64, len(radius))
		for i := range radius {
			x[i] = radius[i] / at(rh, i)
		}
		p, err := cf.CumulativeMassPDF(x, prms)
		if err != nil {
			return nil, err
		}
		for i := range p {
			p[i] *= at(mass, i)
		}
		return p, nil
	}

	return m.quadratureEnclosedMass(radius, mass, rh, prms)
}

// quadratureEnclosedMass integrates r^2 times the density shape out to
// each radius and normalizes by the same integral at the halo boundary, so
// the boundary always encloses the total mass no matter how the shape is
// normalized. Radii beyond the boundary are clamped to it, matching the
// closed form convention that the boundary encloses everything.
func (m *Model) quadratureEnclosedMass(
	radius, mass, rh []float64, prms [][]float64,
) ([]float64, error) {
	out := make([]float64, len(radius))
	xBuf, rhoBuf := make([]float64, 1), make([]float64, 1)
	prmBuf := make([][]float64, len(prms))

	for i := range radius {
		for j := range prms {
			prmBuf[j] = []float64{at(prms[j], i)}
		}
		rhI := at(rh, i)

		var shapeErr error
		integrand := func(rr float64) float64 {
			xBuf[0] = rr / rhI
			rho, err := m.shape.DimensionlessDensity(xBuf, prmBuf, rhoBuf)
			if err != nil {
				shapeErr = err
				return 0
			}
			return rr * rr * rho[0]
		}

		r := radius[i]
		if r > rhI {
			r = rhI
		}
		num := 0.0
		if r > 0 {
			var err error
			num, err = quad.Integrate(integrand, 0, r, enclosedMassRelTol)
			if err != nil {
				return nil, err
			}
		}
		den, err := quad.Integrate(integrand, 0, rhI, enclosedMassRelTol)
		if err != nil {
			return nil, err
		}
		if shapeErr != nil {
			return nil, shapeErr
		}
		out[i] = at(mass, i) * num / den
	}
	return out, nil
}

// CumulativeMassPDF returns the fraction of the total mass enclosed within
// each scaled radius x = r / R_halo. mass must have length 1 or len(x); it
// is only consulted on the generic quadrature path, since closed form
// shapes determine the fraction from x and the shape parameters alone.
func (m *Model) CumulativeMassPDF(
	x, mass []float64, prms ...[]float64,
) ([]float64, error) {
	if err := checkNonNegative("CumulativeMassPDF", "x", x); err != nil {
		return nil, err
	}
	if err := checkParams(
		"CumulativeMassPDF", len(x), m.shape.ParamKeys(), prms,
	); err != nil {
		return nil, err
	}

	if cf, ok := m.shape.(ClosedFormCumulativeMass); ok {
		return cf.CumulativeMassPDF(x, prms)
	}

	if err := checkPositive("CumulativeMassPDF", "mass", mass); err != nil {
		return nil, err
	}
	if len(mass) != 1 && len(mass) != len(x) {
		return nil, haloprof.NewShapeMismatchError(
			"x", "mass", len(x), len(mass),
		)
	}

	rh := m.ctx.HaloMassToHaloRadius(mass)
	radius := make([]float64, len(x))
	for i := range x {
		radius[i] = x[i] * at(rh, i)
	}

	menc, err := m.quadratureEnclosedMass(radius, mass, rh, prms)
	if err != nil {
		return nil, err
	}
	for i := range menc {
		menc[i] /= at(mass, i)
	}
	return menc, nil
}

// CircularVelocity returns sqrt(G M(<r) / r) in km/s at each radius (Mpc/h)
// for halos of the given total masses (Msun/h).
func (m *Model) CircularVelocity(
	radius, mass []float64, prms ...[]float64,
) ([]float64, error) {
	menc, err := m.EnclosedMass(radius, mass, prms...)
	if err != nil {
		return nil, err
	}
	for i := range menc {
		menc[i] = math.Sqrt(cosmo.NewtonG * menc[i] / radius[i])
	}
	return menc, nil
}

// PotentialGradient returns the radial gradient of the gravitational
// potential, G M(<r) / r^2, at each radius.
func (m *Model) PotentialGradient(
	radius, mass []float64, prms ...[]float64,
) ([]float64, error) {
	menc, err := m.EnclosedMass(radius, mass, prms...)
	if err != nil {
		return nil, err
	}
	for i := range menc {
		menc[i] = cosmo.NewtonG * menc[i] / (radius[i] * radius[i])
	}
	return menc, nil
}

func (m *Model) checkRadiusMass(op string, r, mass []float64) error {
	if err := checkPositive(op, "radius", r); err != nil {
		return err
	}
	if err := checkPositive(op, "mass", mass); err != nil {
		return err
	}
	if len(mass) != 1 && len(mass) != len(r) {
		return haloprof.NewShapeMismatchError(
			"radius", "mass", len(r), len(mass),
		)
	}
	return nil
}

// at indexes into an array which may be a length-1 broadcast.
func at(arr []float64, i int) float64 {
	if len(arr) == 1 {
		return arr[0]
	}
	return arr[i]
}

func checkPositive(op, name string, xs []float64) error {
	for i, x := range xs {
		if x <= 0 {
			return haloprof.NewDomainError(
				op, "%s[%d] = %g, but must be positive", name, i, x,
			)
		}
	}
	return nil
}

func checkNonNegative(op, name string, xs []float64) error {
	for i, x := range xs {
		if x < 0 {
			return haloprof.NewDomainError(
				op, "%s[%d] = %g, but must be non-negative", name, i, x,
			)
		}
	}
	return nil
}

// checkParams validates that exactly one array was passed per shape
// parameter and that each has length 1 or n.
func checkParams(op string, n int, keys []string, prms [][]float64) error {
	if len(prms) != len(keys) {
		return haloprof.NewConfigurationError(
			"%s: got %d shape parameter arrays, but this profile takes "+
				"%d: %v", op, len(prms), len(keys), keys,
		)
	}
	for j, prm := range prms {
		if len(prm) != 1 && len(prm) != n {
			return haloprof.NewShapeMismatchError("x", keys[j], n, len(prm))
		}
	}
	return nil
}
