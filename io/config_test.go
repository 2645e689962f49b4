package io

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "haloprof_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := path.Join(dir, "haloprof.config")
	err = ioutil.WriteFile(fname, []byte(ExampleConfig()), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(fname)
	require.NoError(t, err)

	require.NoError(t, cfg.Cosmology.CheckInit())
	require.NoError(t, cfg.Profile.CheckInit())
	require.NoError(t, cfg.MonteCarlo.CheckInit())

	assert.Equal(t, 0.27, cfg.Cosmology.OmegaM)
	assert.Equal(t, "nfw", cfg.Profile.Type)
	assert.Equal(t, 1e12, cfg.Profile.Mass)
	assert.Equal(t, 10000, cfg.MonteCarlo.Draws)

	// Defaults filled in by CheckInit.
	assert.Equal(t, "vir", cfg.Cosmology.MassDef)
	ctx := cfg.Cosmology.Context()
	assert.True(t, ctx.DensityThreshold() > 0)
}

func TestCosmologyConfigCheckInit(t *testing.T) {
	table := []struct {
		cfg CosmologyConfig
		ok  bool
	}{
		{CosmologyConfig{OmegaM: 0.27, OmegaL: 0.73, H100: 0.7}, true},
		{CosmologyConfig{OmegaM: 0, OmegaL: 0.73, H100: 0.7}, false},
		{CosmologyConfig{OmegaM: 0.27, OmegaL: 0.73, H100: 0}, false},
		{CosmologyConfig{OmegaM: 0.27, OmegaL: 0.73, H100: 0.7,
			Z: -1}, false},
		{CosmologyConfig{OmegaM: 0.27, OmegaL: 0.73, H100: 0.7,
			MassDef: "200c"}, true},
		{CosmologyConfig{OmegaM: 0.27, OmegaL: 0.73, H100: 0.7,
			MassDef: "banana"}, false},
	}

	for i, test := range table {
		err := test.cfg.CheckInit()
		if test.ok {
			assert.NoError(t, err, "test %d", i)
		} else {
			assert.Error(t, err, "test %d", i)
		}
	}
}

func TestProfileConfigCheckInit(t *testing.T) {
	cfg := ProfileConfig{Type: "nfw", Mass: 1e12}
	require.NoError(t, cfg.CheckInit())
	assert.Equal(t, 100, cfg.Bins)
	assert.Equal(t, 0.01, cfg.RMinMult)
	assert.Equal(t, 1.0, cfg.RMaxMult)

	assert.Error(t, (&ProfileConfig{Type: "nfw"}).CheckInit())
	assert.Error(t, (&ProfileConfig{Type: "banana", Mass: 1}).CheckInit())
	assert.Error(t, (&ProfileConfig{Mass: 1}).CheckInit())
	assert.Error(t, (&ProfileConfig{
		Type: "nfw", Mass: 1, RMinMult: 2, RMaxMult: 1,
	}).CheckInit())
}

func TestReadRadii(t *testing.T) {
	dir, err := ioutil.TempDir("", "haloprof_radii_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := path.Join(dir, "radii.txt")
	body := "# r  rho\n0.1  7\n0.25 6\n0.4  5\n"
	require.NoError(t, ioutil.WriteFile(fname, []byte(body), 0644))

	rs, err := ReadRadii(fname, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.25, 0.4}, rs)
}
