package cosmo

import (
	"math"
	"strings"
)

// MassDef is a halo mass definition, i.e. a choice of the overdensity
// threshold which sets the halo boundary.
type MassDef int

const (
	Vir MassDef = iota
	M200c
	M200m
	M500c
)

// MassDefFromString parses a mass definition out of the strings used by
// halo catalogs ("vir", "200c", "200m", "500c", optionally prefixed by
// 'r' or 'm').
func MassDefFromString(s string) (def MassDef, ok bool) {
	s = strings.ToLower(s)
	switch s {
	case "vir", "rvir", "mvir":
		return Vir, true
	case "200c", "r200c", "m200c":
		return M200c, true
	case "200m", "r200m", "m200m":
		return M200m, true
	case "500c", "r500c", "m500c":
		return M500c, true
	}
	return Vir, false
}

func (def MassDef) String() string {
	switch def {
	case Vir:
		return "vir"
	case M200c:
		return "200c"
	case M200m:
		return "200m"
	case M500c:
		return "500c"
	}
	panic(":3")
}

// DensityThreshold returns the characteristic density of the given mass
// definition at the header's redshift in Msun/h / (Mpc/h)^3. A halo's
// boundary is the radius within which its mean density equals this value.
func (def MassDef) DensityThreshold(hd *CosmologyHeader) float64 {
	h0 := hd.H100 * 100

	switch def {
	case Vir:
		return 177.653 * RhoCritical(h0, hd.OmegaM, hd.OmegaL, hd.Z)
	case M200c:
		return 200 * RhoCritical(h0, hd.OmegaM, hd.OmegaL, hd.Z)
	case M200m:
		return 200 * RhoAverage(h0, hd.OmegaM, hd.OmegaL, hd.Z)
	case M500c:
		return 500 * RhoCritical(h0, hd.OmegaM, hd.OmegaL, hd.Z)
	}
	panic(":3")
}

// Radius converts halo masses in Msun/h to halo boundary radii in Mpc/h
// and writes them to out. The radii use the same coordinate convention as
// DensityThreshold, so M = (4 pi / 3) rho_thresh R^3 holds at every
// redshift.
func (def MassDef) Radius(hd *CosmologyHeader, ms, out []float64) {
	rho := def.DensityThreshold(hd)
	factor := rho * 4 * math.Pi / 3

	for i, m := range ms {
		out[i] = math.Pow(m/factor, 1.0/3)
	}
}

// Mass converts halo boundary radii in Mpc/h to halo masses in Msun/h and
// writes them to out.
func (def MassDef) Mass(hd *CosmologyHeader, rs, out []float64) {
	rho := def.DensityThreshold(hd)
	factor := rho * 4 * math.Pi / 3

	for i, r := range rs {
		out[i] = factor * (r * r * r)
	}
}
