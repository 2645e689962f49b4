/*package haloprof provides analytic radial mass-density profiles of dark
matter halos along with the numeric primitives needed to build Monte Carlo
realizations of empirical distributions.

The library is split into a handful of small packages. cosmo converts
between halo masses and halo radii for a given mass definition. profile
contains the profile models themselves (NFW and friends) and derives
enclosed masses, circular velocities, and cumulative mass distributions
from a model's dimensionless density shape. The math/ subpackages supply
quadrature, table interpolation, random number generation, inverse-transform
sampling, and grouped sums over binned data.

This package itself only contains the error types shared by the rest of the
library.
*/
package haloprof

import (
	"fmt"
)

// DomainError indicates that a numeric argument was outside the range on
// which an operation is defined, e.g. a non-positive radius or mass.
type DomainError struct {
	Op, Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// NewDomainError creates a DomainError for the operation op.
func NewDomainError(op, format string, args ...interface{}) *DomainError {
	return &DomainError{op, fmt.Sprintf(format, args...)}
}

// ShapeMismatchError indicates that two arguments which must have the same
// length did not. The message names both offending arguments.
type ShapeMismatchError struct {
	Name1, Name2 string
	Len1, Len2   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf(
		"Input ``%s`` and ``%s`` must have same length, but len(%s) = %d "+
			"and len(%s) = %d.",
		e.Name1, e.Name2, e.Name1, e.Len1, e.Name2, e.Len2,
	)
}

// NewShapeMismatchError creates a ShapeMismatchError for the two named
// arguments.
func NewShapeMismatchError(
	name1, name2 string, len1, len2 int,
) *ShapeMismatchError {
	return &ShapeMismatchError{name1, name2, len1, len2}
}

// ConfigurationError indicates that the caller supplied an invalid
// combination of options or data which violates a documented precondition.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(
	format string, args ...interface{},
) *ConfigurationError {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}
