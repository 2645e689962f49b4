package main

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/haloprof/io"
)

// TestSampleModeWithoutProfileSection checks that a config file containing
// only the section Sample mode reads passes that mode's validation, while
// the Profile mode's validation still rejects it.
func TestSampleModeWithoutProfileSection(t *testing.T) {
	dir, err := ioutil.TempDir("", "haloprof_main_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	body := `[montecarlo]
ParticleFile = radii.txt
Draws = 100
`
	fname := path.Join(dir, "sample.config")
	require.NoError(t, ioutil.WriteFile(fname, []byte(body), 0644))

	cfg, err := io.ReadConfig(fname)
	require.NoError(t, err)

	assert.NoError(t, sampleSectionsInit(cfg))
	assert.Error(t, profileSectionsInit(cfg))
}

func TestProfileModeSections(t *testing.T) {
	cfg := &io.Config{
		Cosmology: io.CosmologyConfig{OmegaM: 0.27, OmegaL: 0.73, H100: 0.7},
		Profile:   io.ProfileConfig{Type: "nfw", Mass: 1e12},
	}
	assert.NoError(t, profileSectionsInit(cfg))

	// A Profile-mode config does not need [montecarlo].
	assert.Error(t, sampleSectionsInit(cfg))
}
