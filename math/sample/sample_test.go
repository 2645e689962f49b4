package sample

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBuildCDFLookup(t *testing.T) {
	y := []float64{3, 1, 2, 5, 4}
	xTable, yTable, err := BuildCDFLookup(y, 100)
	require.NoError(t, err)
	require.Len(t, xTable, 100)
	require.Len(t, yTable, 100)

	for i := range xTable {
		assert.True(t, xTable[i] > 0 && xTable[i] < 1)
		if i > 0 {
			assert.True(t, xTable[i] > xTable[i-1])
			assert.True(t, yTable[i] >= yTable[i-1])
		}
	}
	assert.Equal(t, 1.0, yTable[0])
	assert.Equal(t, 5.0, yTable[len(yTable)-1])

	// The input must not be reordered.
	assert.Equal(t, []float64{3, 1, 2, 5, 4}, y)
}

func TestBuildCDFLookupRaisesTableSize(t *testing.T) {
	y := make([]float64, 50)
	for i := range y {
		y[i] = float64(i)
	}
	xTable, yTable, err := BuildCDFLookup(y, 10)
	require.NoError(t, err)
	assert.Len(t, xTable, 50)
	assert.Len(t, yTable, 50)
}

func TestBuildCDFLookupTooShort(t *testing.T) {
	_, _, err := BuildCDFLookup([]float64{1}, 100)
	assert.Error(t, err)
}

func TestMonteCarloConfigErrors(t *testing.T) {
	xTable, yTable, err := BuildCDFLookup([]float64{1, 2, 3, 4}, 10)
	require.NoError(t, err)

	_, err = MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{})
	assert.Error(t, err)

	_, err = MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{
		Input: []float64{0.5}, NumDraws: 10,
	})
	assert.Error(t, err)

	_, err = MonteCarloFromCDFLookup(xTable[:3], yTable, &MCConfig{
		NumDraws: 10,
	})
	assert.Error(t, err)
}

func TestMonteCarloSeedIdempotent(t *testing.T) {
	xTable, yTable, err := BuildCDFLookup([]float64{1, 5, 2, 8, 3}, 100)
	require.NoError(t, err)

	out1, err := MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{
		NumDraws: 1000, Seed: 42,
	})
	require.NoError(t, err)
	out2, err := MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{
		NumDraws: 1000, Seed: 42,
	})
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
}

func TestMonteCarloExplicitInput(t *testing.T) {
	y := make([]float64, 1000)
	for i := range y {
		y[i] = float64(i)
	}
	xTable, yTable, err := BuildCDFLookup(y, 1000)
	require.NoError(t, err)

	out, err := MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{
		Input: []float64{0, 0.5, 1},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	// CDF value 0 maps to the smallest value, 1 to the largest, and 0.5 to
	// the median.
	assert.Equal(t, 0.0, out[0])
	assert.InDelta(t, 499.5, out[1], 1.0)
	assert.Equal(t, 999.0, out[2])
}

func TestRankOrderPercentile(t *testing.T) {
	y := []float64{10, -4, 7, 0}
	ranks := RankOrderPercentile(y)

	assert.InDelta(t, 4.0/5.0, ranks[0], 1e-10)
	assert.InDelta(t, 1.0/5.0, ranks[1], 1e-10)
	assert.InDelta(t, 3.0/5.0, ranks[2], 1e-10)
	assert.InDelta(t, 2.0/5.0, ranks[3], 1e-10)
}

func TestRankOrderPercentilePermutes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	y := make([]float64, 500)
	for i := range y {
		y[i] = rng.NormFloat64()
	}
	ranks := RankOrderPercentile(y)

	for i := range ranks {
		assert.True(t, ranks[i] > 0 && ranks[i] < 1)
	}

	// The ranks must co-permute with the input: sorting y and the rank
	// array by y yields ascending ranks.
	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return y[idx[i]] < y[idx[j]] })
	for i := 1; i < len(idx); i++ {
		assert.True(t, ranks[idx[i]] > ranks[idx[i-1]])
	}
}

// TestRoundTrip draws a large Monte Carlo realization from a lookup table
// built on Gaussian data and checks that the realization reproduces the
// input distribution in the Kolmogorov-Smirnov sense.
func TestRoundTrip(t *testing.T) {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(3)}
	y := make([]float64, 10*1000)
	for i := range y {
		y[i] = norm.Rand()
	}

	xTable, yTable, err := BuildCDFLookup(y, 1000)
	require.NoError(t, err)
	draws, err := MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{
		NumDraws: 10 * 1000, Seed: 5,
	})
	require.NoError(t, err)

	sort.Float64s(y)
	sort.Float64s(draws)
	ks := stat.KolmogorovSmirnov(y, nil, draws, nil)
	assert.True(t, ks < 0.03, "KS distance = %g", ks)
}

// TestRankCorrelatedSampling feeds the rank-order percentiles of a
// covariate into the sampler and checks that the drawn values inherit the
// covariate's ordering.
func TestRankCorrelatedSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	y := make([]float64, 2000)
	cov := make([]float64, 200)
	for i := range y {
		y[i] = rng.ExpFloat64()
	}
	for i := range cov {
		cov[i] = rng.NormFloat64()
	}

	xTable, yTable, err := BuildCDFLookup(y, 2000)
	require.NoError(t, err)
	draws, err := MonteCarloFromCDFLookup(xTable, yTable, &MCConfig{
		Input: RankOrderPercentile(cov),
	})
	require.NoError(t, err)

	for i := range cov {
		for j := range cov {
			if cov[i] < cov[j] {
				assert.True(t, draws[i] <= draws[j])
			}
		}
	}
}

func BenchmarkMonteCarloFromCDFLookup(b *testing.B) {
	y := make([]float64, 10*1000)
	rng := rand.New(rand.NewSource(0))
	for i := range y {
		y[i] = rng.NormFloat64()
	}
	xTable, yTable, _ := BuildCDFLookup(y, 1000)
	cfg := &MCConfig{NumDraws: 1000, Seed: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MonteCarloFromCDFLookup(xTable, yTable, cfg)
	}
}
