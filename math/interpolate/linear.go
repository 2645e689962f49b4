/*package interpolate provides 1D table interpolation.
*/
package interpolate

import (
	"fmt"
)

type searcher struct {
	xs         []float64
	x0, dx, lim float64
	n          int
	unif, incr bool
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	s.n = len(xs)
	s.unif = false
	s.incr = s.dx > 0
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	s.xs = nil
	s.x0 = x0
	s.lim = float64(n-1)*dx + x0
	s.dx = dx
	s.n = n
	s.unif = true
	s.incr = s.dx > 0
}

func (s *searcher) search(x float64) int {
	lo, hi := s.x0, s.lim
	if !s.incr {
		lo, hi = hi, lo
	}
	if x < lo || x > hi {
		panic(fmt.Sprintf(
			"Value %g out of range bounds [%g, %g]", x, lo, hi,
		))
	}

	if s.unif {
		idx := int((x - s.x0) / s.dx)
		if idx == s.n-1 {
			idx--
		}
		return idx
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.xs[0]) / s.dx)
	if guess >= 0 && guess < len(s.xs)-1 &&
		(s.xs[guess] <= x == s.incr) &&
		(s.xs[guess+1] >= x == s.incr) {

		return guess
	}

	// Binary search.
	ilo, ihi := 0, s.n-1
	for ihi-ilo > 1 {
		mid := (ilo + ihi) / 2
		if s.incr == (x >= s.xs[mid]) {
			ilo = mid
		} else {
			ihi = mid
		}
	}

	return ilo
}

func (s *searcher) val(i int) float64 {
	if s.unif {
		return float64(i)*s.dx + s.x0
	}
	return s.xs[i]
}

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing or strictly decreasing points, xs, which take on the values
// given by vals.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic("Length of input slices are not equal.")
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// NewUniformLinear creates a linear interpolator for a uniformly spaced
// sequence of x values starting at x0 and separated by dx and whose values
// are given by vals.
//
// Lookups will be O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	lin := &Linear{}
	lin.xs.unifInit(x0, dx, len(vals))
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x.
//
// Eval panics if called on a value outside the supplied range of inputs.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalClamped returns the interpolated value at x, with x clamped to the
// interpolator's range first. Out-of-range points evaluate to the value at
// the nearest end of the table.
func (lin *Linear) EvalClamped(x float64) float64 {
	lo, hi := lin.xs.x0, lin.xs.lim
	if !lin.xs.incr {
		lo, hi = hi, lo
	}
	if x < lo {
		x = lo
	} else if x > hi {
		x = hi
	}
	return lin.Eval(x)
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}
