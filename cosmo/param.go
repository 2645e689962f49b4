package cosmo

import (
	"math"
)

// CosmologyHeader contains the cosmological parameters and redshift needed
// to convert between masses, radii, and densities.
type CosmologyHeader struct {
	Z      float64
	OmegaM float64
	OmegaL float64
	H100   float64
}

// HubbleFrac calculates h(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 + k (c/a)**2 = H0**2 h100**2 (OmegaR a**-4 + OmegaM a**-3 + OmegaL).
// Assumes k, r = 0.
func HubbleFrac(omegaM, omegaL, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + omegaL)
}

// (And by "Mks", I mean "Mks/h".)
func rhoCriticalMks(H0, omegaM, omegaL, z float64) float64 {
	H0Mks := (H0 * 1000) / MpcMks
	H100 := H0 / 100
	H0MksH := H0Mks / H100

	H := HubbleFrac(omegaM, omegaL, z) * H0MksH
	return 3.0 * H * H / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe at redshift z.
// This shows up (among other places) in halo definitions. The returned value
// is in Msun/h / (Mpc/h)^3.
func RhoCritical(H0, omegaM, omegaL, z float64) float64 {
	return rhoCriticalMks(H0, omegaM, omegaL, z) *
		math.Pow(MpcMks, 3) / MSunMks
}

// RhoAverage calculates the average matter density of the universe at
// redshift z. The returned value is in Msun/h / (Mpc/h)^3.
func RhoAverage(H0, omegaM, omegaL, z float64) float64 {
	return RhoCritical(H0, omegaM, omegaL, 0) * omegaM * math.Pow(1+z, 3.0)
}
