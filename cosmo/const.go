package cosmo

const (
	// MpcMks is one megaparsec in meters.
	MpcMks = 3.0856775814913673e+22
	// MSunMks is one solar mass in kilograms.
	MSunMks = 1.98892e+30
	// GMks is Newton's constant in m^3 / (kg s^2).
	GMks = 6.67408e-11

	// NewtonG is Newton's constant in the unit system used throughout this
	// library: radii in Mpc/h, masses in Msun/h, velocities in km/s. The
	// factors of h cancel.
	NewtonG = GMks * MSunMks / MpcMks / 1e6
)
