package rand

import (
	"math"
	stdrand "math/rand"
)

var xorshiftMaxUint = float64(math.MaxUint32)

// The classic 128-bit xorshift generator of Marsaglia (2003).
type xorshiftGenerator struct {
	w, x, y, z uint32
}

func (gen *xorshiftGenerator) Init(seed uint64) {
	// Fold the high seed bits into the state so that all 64 bits matter.
	gen.x = 123456789 ^ uint32(seed>>32)
	gen.y = 362436069
	gen.z = 521288629
	gen.w = uint32(seed)
}

func (gen *xorshiftGenerator) Next() float64 {
	t := gen.x ^ (gen.x << 11)
	gen.x, gen.y, gen.z = gen.y, gen.z, gen.w
	gen.w = gen.w ^ (gen.w >> 19) ^ (t ^ (t >> 8))
	res := float64(math.MaxUint32-gen.w) / xorshiftMaxUint
	if res == 1.0 {
		return gen.Next()
	}
	return res
}

func (gen *xorshiftGenerator) NextSequence(target []float64) {
	for i := 0; i < len(target); i++ {
		t := gen.x ^ (gen.x << 11)
		gen.x, gen.y, gen.z = gen.y, gen.z, gen.w
		gen.w = gen.w ^ (gen.w >> 19) ^ (t ^ (t >> 8))
		target[i] = float64(math.MaxUint32-gen.w) / xorshiftMaxUint
		if target[i] == 1.0 {
			i--
		}
	}
}

type golangGenerator struct {
	r *stdrand.Rand
}

func (gen *golangGenerator) Init(seed uint64) {
	gen.r = stdrand.New(stdrand.NewSource(int64(seed)))
}

func (gen *golangGenerator) Next() float64 {
	return gen.r.Float64()
}

func (gen *golangGenerator) NextSequence(target []float64) {
	for i := range target {
		target[i] = gen.r.Float64()
	}
}
