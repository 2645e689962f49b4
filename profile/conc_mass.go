package profile

import (
	"math"
)

// ConcMass is a concentration-mass relation: it assigns a profile
// concentration to halos of a given mass. If an output array is given, the
// result is written to it (the array is still returned as a convenience).
type ConcMass interface {
	Concentration(mass []float64, out ...[]float64) []float64
}

// DuttonMaccio is the calibrated NFW concentration-mass relation of Dutton
// & Maccio (2014), log10 c = a + b log10(M / 1e12 Msun/h), with
// redshift-dependent coefficients.
type DuttonMaccio struct {
	Z float64
}

// Concentration evaluates the relation at each mass in Msun/h.
func (dm *DuttonMaccio) Concentration(
	mass []float64, out ...[]float64,
) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(mass))}
	}

	a := 0.520 + (0.905-0.520)*math.Exp(-0.617*math.Pow(dm.Z, 1.21))
	b := -0.101 + 0.026*dm.Z
	for i, m := range mass {
		out[0][i] = math.Pow(10, a+b*math.Log10(m/1e12))
	}
	return out[0]
}

// FixedConc is a ConcMass which assigns the same concentration to every
// halo, overriding any mass dependence.
type FixedConc float64

// Concentration fills the output with the fixed concentration.
func (fc FixedConc) Concentration(
	mass []float64, out ...[]float64,
) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(mass))}
	}
	for i := range mass {
		out[0][i] = float64(fc)
	}
	return out[0]
}
