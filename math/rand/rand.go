/*package rand provides seedable uniform pseudo random number generators
behind a single front end.

	// Generate a single value in [3, 7).
	gen := rand.New(rand.Xorshift, 1337)
	x := gen.Uniform(3, 7)

	// Fill a slice with values in [0, 1) (faster).
	xs := make([]float64, 100)
	gen.UniformAt(0, 1, xs)

Two backends are provided: Xorshift, which is fast, and Golang, which wraps
the standard library generator. Given the same backend and seed, a Generator
always produces the same sequence.
*/
package rand

import (
	"math"
	"time"
)

// generatorBackend supplies the raw uniform [0, 1) stream used by the
// Generator front end.
type generatorBackend interface {
	Init(seed uint64)
	Next() float64
	NextSequence(target []float64)
}

// Generator is a uniform random number generator.
type Generator struct {
	backend generatorBackend
}

// GeneratorType is a flag used to indicate the desired algorithm for a
// random number generator.
type GeneratorType uint8

const (
	Xorshift GeneratorType = iota
	Golang
)

// New returns a new random number generator with the given seed.
func New(gt GeneratorType, seed uint64) *Generator {
	var backend generatorBackend

	switch gt {
	case Xorshift:
		backend = new(xorshiftGenerator)
	case Golang:
		backend = new(golangGenerator)
	default:
		panic("Unrecognized GeneratorType")
	}

	backend.Init(seed)
	return &Generator{backend}
}

// NewTimeSeed returns a new random number generator that uses the current
// time as the seed.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

// Uniform returns a float uniformly at random within the range [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.backend.Next()
	}
	return (gen.backend.Next() * (high - low)) + low
}

// UniformAt writes floats generated uniformly at random in the range
// [low, high) to every element in a target slice. This is generally faster
// than calling Uniform the corresponding number of times.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	gen.backend.NextSequence(target)
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}

// UniformInt returns an integer uniformly at random within the range
// [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	f := gen.backend.Next()
	return int(math.Floor(float64(high-low)*f + float64(low)))
}
