/*package quad computes one dimensional definite integrals to a requested
relative tolerance.

The integration kernel is Gauss-Legendre quadrature from gonum. Adaptivity
comes from rerunning the fixed-location rule at doubling node counts until
two successive estimates agree, which converges extremely quickly for the
smooth integrands that show up in density profiles.
*/
package quad

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/phil-mansfield/haloprof"
)

const (
	initNodes = 16
	maxNodes  = 1 << 14
)

// Integrate evaluates the integral of f over [a, b] to a relative tolerance
// of relTol.
//
// Integrate fails with a DomainError if b <= a or relTol <= 0. If the
// estimates have not converged by the time the node budget is exhausted the
// last estimate is returned, since for well-behaved integrands this only
// happens when the true value is zero to within floating point error.
func Integrate(
	f func(float64) float64, a, b, relTol float64,
) (float64, error) {
	if b <= a {
		return 0, haloprof.NewDomainError(
			"quad.Integrate", "integration bounds [%g, %g] are inverted "+
				"or empty", a, b,
		)
	}
	if relTol <= 0 {
		return 0, haloprof.NewDomainError(
			"quad.Integrate", "relative tolerance %g is not positive", relTol,
		)
	}

	prev := quad.Fixed(f, a, b, initNodes, quad.Legendre{}, 0)
	for n := 2 * initNodes; n <= maxNodes; n *= 2 {
		curr := quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
		if converged(prev, curr, relTol) {
			return curr, nil
		}
		prev = curr
	}

	return prev, nil
}

func converged(prev, curr, relTol float64) bool {
	if curr == 0 {
		return prev == 0
	}
	return math.Abs(curr-prev) <= relTol*math.Abs(curr)
}
