package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"path"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/haloprof/cosmo"
	"github.com/phil-mansfield/haloprof/io"
	"github.com/phil-mansfield/haloprof/math/sample"
	"github.com/phil-mansfield/haloprof/profile"
)

// haloProfile is the part of the profile API that every profile type
// supports with its parameters already bound.
type haloProfile interface {
	MassDensity(r, mass []float64) ([]float64, error)
	EnclosedMass(radius, mass []float64) ([]float64, error)
}

func main() {
	var (
		profileFlag, sampleFlag, plotFlag string
		exampleConfig                     bool
	)
	vars := map[string]*string{
		"Profile": &profileFlag,
		"Sample":  &sampleFlag,
		"Plot":    &plotFlag,
	}

	flag.StringVar(
		&profileFlag, "Profile", "",
		"Configuration file for [Profile] mode.",
	)
	flag.StringVar(
		&sampleFlag, "Sample", "",
		"Configuration file for [Sample] mode.",
	)
	flag.StringVar(
		&plotFlag, "Plot", "",
		"Configuration file for [Plot] mode. An optional trailing "+
			"argument gives the output directory.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleConfig())
		return
	}

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Profile":
		cfg := readConfig(profileFlag, profileSectionsInit)
		profileMain(cfg)
	case "Sample":
		cfg := readConfig(sampleFlag, sampleSectionsInit)
		sampleMain(cfg)
	case "Plot":
		cfg := readConfig(plotFlag, profileSectionsInit)
		dir := "."
		if args := flag.Args(); len(args) > 0 {
			dir = args[0]
		}
		plotMain(cfg, dir)
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but haloprof only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// readConfig parses the named config file and validates only the sections
// the selected mode reads, so config files may leave the other sections
// out entirely.
func readConfig(fname string, checkSections func(*io.Config) error) *io.Config {
	cfg, err := io.ReadConfig(fname)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := checkSections(cfg); err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

// profileSectionsInit validates the sections read by the Profile and Plot
// modes.
func profileSectionsInit(cfg *io.Config) error {
	if err := cfg.Cosmology.CheckInit(); err != nil {
		return err
	}
	return cfg.Profile.CheckInit()
}

// sampleSectionsInit validates the only section the Sample mode reads.
func sampleSectionsInit(cfg *io.Config) error {
	return cfg.MonteCarlo.CheckInit()
}

func buildProfile(ctx *cosmo.Context, p *io.ProfileConfig) haloProfile {
	var concMass profile.ConcMass
	if p.Conc > 0 {
		concMass = profile.FixedConc(p.Conc)
	}

	switch p.Type {
	case "nfw":
		return profile.NewNFWProfile(ctx, concMass)
	case "biased_nfw":
		prof := profile.NewBiasedNFWProfile(ctx, concMass)
		if p.ConcBias > 0 {
			prof.SetConcBias(p.ConcBias)
		}
		return prof
	case "trivial":
		return profile.NewTrivialProfile(ctx)
	default:
		panic("Impossible")
	}
}

// profileTable evaluates the configured profile on a log-spaced radius grid
// and returns the grid along with the density, enclosed mass, and circular
// velocity at each point.
func profileTable(cfg *io.Config) (rs, rho, menc, vc []float64) {
	ctx := cfg.Cosmology.Context()
	prof := buildProfile(ctx, &cfg.Profile)

	mass := []float64{cfg.Profile.Mass}
	rh := ctx.HaloMassToHaloRadius(mass)[0]
	rs = logSpace(
		rh*cfg.Profile.RMinMult, rh*cfg.Profile.RMaxMult, cfg.Profile.Bins,
	)

	rho, err := prof.MassDensity(rs, mass)
	if err != nil {
		log.Fatal(err.Error())
	}
	menc, err = prof.EnclosedMass(rs, mass)
	if err != nil {
		log.Fatal(err.Error())
	}

	vc = make([]float64, len(rs))
	for i := range vc {
		vc[i] = math.Sqrt(cosmo.NewtonG * menc[i] / rs[i])
	}

	return rs, rho, menc, vc
}

func profileMain(cfg *io.Config) {
	rs, rho, menc, vc := profileTable(cfg)

	fmt.Printf(
		"# %s profile, M_%s = %g Msun/h, z = %g\n",
		cfg.Profile.Type, cfg.Cosmology.MassDef, cfg.Profile.Mass,
		cfg.Cosmology.Z,
	)
	fmt.Println(
		"# r [Mpc/h]  rho [Msun/h / (Mpc/h)^3]  M(<r) [Msun/h]  " +
			"v_circ [km/s]",
	)
	for i := range rs {
		fmt.Printf(
			"%.6g %.6g %.6g %.6g\n", rs[i], rho[i], menc[i], vc[i],
		)
	}
}

func sampleMain(cfg *io.Config) {
	mc := &cfg.MonteCarlo

	rs, err := io.ReadRadii(mc.ParticleFile, mc.RadiusColumn)
	if err != nil {
		log.Fatal(err.Error())
	}

	xTable, yTable, err := sample.BuildCDFLookup(rs, mc.TablePoints)
	if err != nil {
		log.Fatal(err.Error())
	}

	draws, err := sample.MonteCarloFromCDFLookup(
		xTable, yTable,
		&sample.MCConfig{NumDraws: mc.Draws, Seed: uint64(mc.Seed)},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Printf(
		"# %d radii drawn from the empirical distribution of '%s'\n",
		mc.Draws, mc.ParticleFile,
	)
	for _, r := range draws {
		fmt.Printf("%.6g\n", r)
	}
}

func plotMain(cfg *io.Config, dir string) {
	rs, rho, menc, _ := profileTable(cfg)

	plt.Figure()
	plt.Plot(rs, rho, plt.LW(3))
	plt.Title(fmt.Sprintf(
		`%s, $M = %g$ $M_\odot/h$`, cfg.Profile.Type, cfg.Profile.Mass,
	))
	plt.XLabel(`$r$ $[{\rm Mpc}/h]$`, plt.FontSize(16))
	plt.YLabel(`$\rho$ $[M_\odot/h\ ({\rm Mpc}/h)^{-3}]$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.SaveFig(path.Join(dir, "density.png"))

	plt.Figure()
	plt.Plot(rs, menc, plt.LW(3))
	plt.Title(fmt.Sprintf(
		`%s, $M = %g$ $M_\odot/h$`, cfg.Profile.Type, cfg.Profile.Mass,
	))
	plt.XLabel(`$r$ $[{\rm Mpc}/h]$`, plt.FontSize(16))
	plt.YLabel(`$M(<r)$ $[M_\odot/h]$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.SaveFig(path.Join(dir, "enclosed_mass.png"))

	plt.Execute()
}

func logSpace(lo, hi float64, n int) []float64 {
	logLo, logHi := math.Log10(lo), math.Log10(hi)
	dx := (logHi - logLo) / float64(n-1)

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, logLo+float64(i)*dx)
	}
	out[n-1] = hi
	return out
}
