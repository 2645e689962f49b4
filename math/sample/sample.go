/*package sample draws Monte Carlo realizations from arbitrary empirical
distributions via inverse transform sampling.

The workflow has two steps. BuildCDFLookup tabulates the empirical CDF of a
dataset as a pair of (rank, value) tables. MonteCarloFromCDFLookup then
interpolates uniform random numbers (or any caller-supplied array of CDF
values) through the inverse of that table. Passing the rank-order
percentiles of a covariate array instead of uniform randoms induces a rank
correlation between the drawn values and that covariate.
*/
package sample

import (
	"log"
	"sort"

	"github.com/phil-mansfield/haloprof"
	"github.com/phil-mansfield/haloprof/math/interpolate"
	"github.com/phil-mansfield/haloprof/math/rand"
)

// MCConfig configures a call to MonteCarloFromCDFLookup.
//
// Exactly one of Input and NumDraws may be set. If Input is non-nil its
// values are treated as CDF values in [0, 1] and mapped through the lookup
// table directly. Otherwise NumDraws uniform random values are drawn, using
// Seed if it is non-zero and the current time if it is not.
type MCConfig struct {
	Input    []float64
	NumDraws int
	Seed     uint64
}

// BuildCDFLookup tabulates the empirical CDF of the dataset y as a lookup
// table of nptsLookupTable control points. The returned xTable holds
// rank-order positions strictly inside (0, 1) and the returned yTable holds
// the corresponding values of the sampled variable, both in ascending
// order. y itself is not modified.
//
// If nptsLookupTable is smaller than len(y) it is raised to len(y), since a
// table coarser than the data it summarizes loses information.
func BuildCDFLookup(
	y []float64, nptsLookupTable int,
) (xTable, yTable []float64, err error) {
	if len(y) < 2 {
		return nil, nil, haloprof.NewConfigurationError(
			"Input ``y`` has only %d elements, but building a CDF lookup "+
				"table requires at least two.", len(y),
		)
	}

	if nptsLookupTable < len(y) {
		log.Printf(
			"BuildCDFLookup: table size %d is smaller than the dataset "+
				"size %d. Using %d points instead.",
			nptsLookupTable, len(y), len(y),
		)
		nptsLookupTable = len(y)
	}

	sortedY := make([]float64, len(y))
	copy(sortedY, y)
	sort.Float64s(sortedY)

	ranks := sortedRankOrder(len(y))
	xTable = sortedRankOrder(nptsLookupTable)

	lin := interpolate.NewLinear(ranks, sortedY)
	yTable = make([]float64, nptsLookupTable)
	for i, x := range xTable {
		// The table's end ranks sit slightly outside the data's end ranks
		// whenever the table is finer than the data, so clamp.
		yTable[i] = lin.EvalClamped(x)
	}

	return xTable, yTable, nil
}

// MonteCarloFromCDFLookup draws values from the distribution tabulated by
// (xTable, yTable), which is normally the output of BuildCDFLookup. See
// MCConfig for how the draws are specified. Given the same table and the
// same non-zero seed, the output is identical from call to call.
func MonteCarloFromCDFLookup(
	xTable, yTable []float64, cfg *MCConfig,
) ([]float64, error) {
	if len(xTable) != len(yTable) {
		return nil, haloprof.NewShapeMismatchError(
			"xTable", "yTable", len(xTable), len(yTable),
		)
	}
	if len(xTable) < 2 {
		return nil, haloprof.NewConfigurationError(
			"CDF lookup table has only %d points, but at least two are "+
				"required.", len(xTable),
		)
	}

	var input []float64
	switch {
	case cfg.Input == nil && cfg.NumDraws <= 0:
		return nil, haloprof.NewConfigurationError(
			"If ``Input`` is not given, ``NumDraws`` must be positive.",
		)
	case cfg.Input != nil && cfg.NumDraws != 0:
		return nil, haloprof.NewConfigurationError(
			"If ``Input`` is given, ``NumDraws`` must be left unspecified.",
		)
	case cfg.Input != nil:
		input = cfg.Input
	default:
		var gen *rand.Generator
		if cfg.Seed == 0 {
			gen = rand.NewTimeSeed(rand.Xorshift)
		} else {
			gen = rand.New(rand.Xorshift, cfg.Seed)
		}
		input = make([]float64, cfg.NumDraws)
		gen.UniformAt(0, 1, input)
	}

	lin := interpolate.NewLinear(xTable, yTable)
	out := make([]float64, len(input))
	for i, x := range input {
		// Uniform draws can land outside the open interval spanned by the
		// table's rank positions; those map to the table's end values.
		out[i] = lin.EvalClamped(x)
	}
	return out, nil
}

// RankOrderPercentile returns the rank-order percentile of every value of
// the input distribution y, in the same order as the input. The percentiles
// use the rank convention i/(n+1), so they lie strictly inside (0, 1).
func RankOrderPercentile(y []float64) []float64 {
	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return y[idx[i]] < y[idx[j]] })

	ranks := sortedRankOrder(len(y))
	out := make([]float64, len(y))
	for i, j := range idx {
		out[j] = ranks[i]
	}
	return out
}

// sortedRankOrder returns the array [1/(n+1), 2/(n+1), ..., n/(n+1)]:
// ascending rank positions respecting the strict inequalities 0 < x < 1.
func sortedRankOrder(npts int) []float64 {
	out := make([]float64, npts)
	for i := range out {
		out[i] = float64(i+1) / float64(npts+1)
	}
	return out
}
