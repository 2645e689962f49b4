package cosmo

// Context bundles a cosmology, a redshift, and a mass definition. It is the
// unit-conversion collaborator consumed by the profile models: it owns the
// density threshold for its mass definition and converts between halo
// masses and halo boundary radii.
//
// A Context is immutable after construction and safe for concurrent use.
type Context struct {
	hd        CosmologyHeader
	def       MassDef
	threshold float64
}

// NewContext creates a Context for the given cosmology and mass definition.
// The density threshold is computed once, here.
func NewContext(hd *CosmologyHeader, def MassDef) *Context {
	return &Context{*hd, def, def.DensityThreshold(hd)}
}

// Header returns the cosmology underlying the Context.
func (ctx *Context) Header() *CosmologyHeader { return &ctx.hd }

// MassDef returns the mass definition underlying the Context.
func (ctx *Context) MassDef() MassDef { return ctx.def }

// DensityThreshold returns the characteristic density of the Context's mass
// definition at its redshift in Msun/h / (Mpc/h)^3.
func (ctx *Context) DensityThreshold() float64 { return ctx.threshold }

// HaloMassToHaloRadius converts halo masses in Msun/h to boundary radii in
// Mpc/h. If an output array is given, the result is written to it (the
// array is still returned as a convenience).
func (ctx *Context) HaloMassToHaloRadius(ms []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(ms))}
	}
	ctx.def.Radius(&ctx.hd, ms, out[0])
	return out[0]
}

// HaloRadiusToHaloMass converts boundary radii in Mpc/h to halo masses in
// Msun/h. If an output array is given, the result is written to it (the
// array is still returned as a convenience).
func (ctx *Context) HaloRadiusToHaloMass(rs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(rs))}
	}
	ctx.def.Mass(&ctx.hd, rs, out[0])
	return out[0]
}
