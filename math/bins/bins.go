/*package bins computes grouped sums over value sequences whose bin keys are
already sorted. Because the keys are sorted, every unique key corresponds to
a contiguous run of indices, so group boundaries can be found in a single
pass and each group reduced with a slice sum.
*/
package bins

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/haloprof"
)

// FirstIdxUnique returns the index of the first occurrence of every unique
// value in a sorted-ascending array. The result is strictly increasing and
// its first element is 0.
func FirstIdxUnique(arr []int) []int {
	if len(arr) == 0 {
		return nil
	}

	out := []int{0}
	for i := 1; i < len(arr); i++ {
		if arr[i] != arr[i-1] {
			out = append(out, i)
		}
	}
	return out
}

// LastIdxUnique returns the index of the last occurrence of every unique
// value in a sorted-ascending array. The result is strictly increasing and
// its last element is len(arr) - 1.
func LastIdxUnique(arr []int) []int {
	if len(arr) == 0 {
		return nil
	}

	out := []int{}
	for i := 1; i < len(arr); i++ {
		if arr[i] != arr[i-1] {
			out = append(out, i-1)
		}
	}
	return append(out, len(arr)-1)
}

// SumInBins sums values grouped by their bin keys. values[i] belongs to the
// bin keyed by sortedBinNumbers[i], and sortedBinNumbers must already be
// sorted in ascending order. The returned slice has one sum per unique key,
// in ascending key order.
//
// SumInBins fails with a ShapeMismatchError if the two inputs have
// different lengths. If testingMode is true the sortedness precondition is
// checked explicitly and violating it fails with a ConfigurationError;
// otherwise the caller is trusted, which makes the check O(1) for hot loops
// that construct keys by binning sorted data.
func SumInBins(
	values []float64, sortedBinNumbers []int, testingMode bool,
) ([]float64, error) {
	if len(values) != len(sortedBinNumbers) {
		return nil, haloprof.NewShapeMismatchError(
			"values", "sortedBinNumbers",
			len(values), len(sortedBinNumbers),
		)
	}

	if testingMode && !sort.IntsAreSorted(sortedBinNumbers) {
		return nil, haloprof.NewConfigurationError(
			"Input ``sortedBinNumbers`` array must be sorted in " +
				"ascending order.",
		)
	}

	first := FirstIdxUnique(sortedBinNumbers)
	last := LastIdxUnique(sortedBinNumbers)

	sums := make([]float64, len(first))
	for i := range first {
		sums[i] = floats.Sum(values[first[i] : last[i]+1])
	}
	return sums, nil
}
