/*package io reads the configuration files and text tables consumed by the
haloprof command line driver.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/haloprof/cosmo"
)

// CosmologyConfig is the [cosmology] section of a config file.
type CosmologyConfig struct {
	// Required
	OmegaM, OmegaL, H100 float64

	// Optional
	Z       float64
	MassDef string
}

func (c *CosmologyConfig) CheckInit() error {
	if c.OmegaM <= 0 || c.OmegaM > 1 {
		return fmt.Errorf(
			"OmegaM must be in (0, 1], but is %g.", c.OmegaM,
		)
	} else if c.OmegaL < 0 || c.OmegaL > 1 {
		return fmt.Errorf(
			"OmegaL must be in [0, 1], but is %g.", c.OmegaL,
		)
	} else if c.H100 <= 0 {
		return fmt.Errorf("Need to specify a positive H100.")
	} else if c.Z < 0 {
		return fmt.Errorf("Z must be non-negative, but is %g.", c.Z)
	}

	if c.MassDef == "" {
		c.MassDef = "vir"
	}
	if _, ok := cosmo.MassDefFromString(c.MassDef); !ok {
		return fmt.Errorf("Unrecognized MassDef '%s'.", c.MassDef)
	}

	return nil
}

// Context creates the cosmology context described by the section.
// CheckInit must have succeeded first.
func (c *CosmologyConfig) Context() *cosmo.Context {
	def, _ := cosmo.MassDefFromString(c.MassDef)
	hd := &cosmo.CosmologyHeader{
		Z: c.Z, OmegaM: c.OmegaM, OmegaL: c.OmegaL, H100: c.H100,
	}
	return cosmo.NewContext(hd, def)
}

// ProfileConfig is the [profile] section of a config file.
type ProfileConfig struct {
	// Required
	Type string
	Mass float64

	// Optional
	Conc     float64
	ConcBias float64
	Bins     int
	RMinMult float64
	RMaxMult float64
}

func (p *ProfileConfig) CheckInit() error {
	switch p.Type {
	case "nfw", "biased_nfw", "trivial":
	case "":
		return fmt.Errorf(
			"Need to specify a profile Type ('nfw', 'biased_nfw', or " +
				"'trivial').",
		)
	default:
		return fmt.Errorf("Unrecognized profile Type '%s'.", p.Type)
	}

	if p.Mass <= 0 {
		return fmt.Errorf("Need to specify a positive halo Mass.")
	}
	if p.Conc < 0 {
		return fmt.Errorf("Conc must be non-negative, but is %g.", p.Conc)
	}
	if p.ConcBias < 0 {
		return fmt.Errorf(
			"ConcBias must be non-negative, but is %g.", p.ConcBias,
		)
	}

	if p.Bins == 0 {
		p.Bins = 100
	} else if p.Bins < 2 {
		return fmt.Errorf("Bins must be at least 2, but is %d.", p.Bins)
	}
	if p.RMinMult == 0 {
		p.RMinMult = 0.01
	}
	if p.RMaxMult == 0 {
		p.RMaxMult = 1
	}
	if p.RMinMult <= 0 || p.RMaxMult <= p.RMinMult {
		return fmt.Errorf(
			"Need 0 < RMinMult < RMaxMult, but RMinMult = %g and "+
				"RMaxMult = %g.", p.RMinMult, p.RMaxMult,
		)
	}

	return nil
}

// MonteCarloConfig is the [montecarlo] section of a config file.
type MonteCarloConfig struct {
	// Required
	ParticleFile string
	Draws        int

	// Optional
	RadiusColumn int
	TablePoints  int
	Seed         int
}

func (mc *MonteCarloConfig) CheckInit() error {
	if mc.ParticleFile == "" {
		return fmt.Errorf("Need to specify a ParticleFile.")
	}
	if mc.Draws <= 0 {
		return fmt.Errorf(
			"Need to specify a positive number of Draws, not %d.", mc.Draws,
		)
	}
	if mc.RadiusColumn < 0 {
		return fmt.Errorf(
			"RadiusColumn must be non-negative, but is %d.", mc.RadiusColumn,
		)
	}
	if mc.TablePoints == 0 {
		mc.TablePoints = 1000
	} else if mc.TablePoints < 2 {
		return fmt.Errorf(
			"TablePoints must be at least 2, but is %d.", mc.TablePoints,
		)
	}
	if mc.Seed < 0 {
		return fmt.Errorf("Seed must be non-negative, but is %d.", mc.Seed)
	}

	return nil
}

// Config is a full haloprof config file.
type Config struct {
	Cosmology  CosmologyConfig
	Profile    ProfileConfig
	MonteCarlo MonteCarloConfig
}

// ReadConfig reads and validates the named config file. Sections which the
// requested mode does not use may be left out of the file; their CheckInit
// is still run so that defaults are filled in, but only the sections the
// caller actually reads matter.
func ReadConfig(fname string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExampleConfig returns a template config file.
func ExampleConfig() string {
	return `[cosmology]
OmegaM = 0.27
OmegaL = 0.73
H100 = 0.70
Z = 0
MassDef = vir

[profile]
Type = nfw
Mass = 1e12
# Conc = 5      # fixed concentration; omit to use the calibrated relation
# ConcBias = 1  # only read by Type = biased_nfw
Bins = 100
RMinMult = 0.01
RMaxMult = 1

[montecarlo]
ParticleFile = radii.txt
RadiusColumn = 0
TablePoints = 1000
Draws = 10000
Seed = 0        # 0 seeds from the current time
`
}
