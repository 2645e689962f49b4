package rand

import (
	"testing"
)

func testRange(gt GeneratorType, t *testing.T) {
	gen := New(gt, 42)
	xs := make([]float64, 10*1000)
	gen.UniformAt(0, 1, xs)

	for i, x := range xs {
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d = %g outside [0, 1)", i, x)
		}
	}

	for i := 0; i < 1000; i++ {
		n := gen.UniformInt(3, 7)
		if n < 3 || n >= 7 {
			t.Fatalf("UniformInt(3, 7) = %d", n)
		}
	}
}

func TestRangeXorshift(t *testing.T) { testRange(Xorshift, t) }
func TestRangeGolang(t *testing.T)   { testRange(Golang, t) }

func testSeedRepeatable(gt GeneratorType, t *testing.T) {
	gen1, gen2 := New(gt, 1337), New(gt, 1337)
	xs1, xs2 := make([]float64, 100), make([]float64, 100)
	gen1.UniformAt(0, 1, xs1)
	gen2.UniformAt(0, 1, xs2)

	for i := range xs1 {
		if xs1[i] != xs2[i] {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}

	gen3 := New(gt, 1338)
	xs3 := make([]float64, 100)
	gen3.UniformAt(0, 1, xs3)
	same := 0
	for i := range xs1 {
		if xs1[i] == xs3[i] {
			same++
		}
	}
	if same == len(xs1) {
		t.Fatalf("different seeds produced identical sequences")
	}
}

func TestSeedRepeatableXorshift(t *testing.T) { testSeedRepeatable(Xorshift, t) }
func TestSeedRepeatableGolang(t *testing.T)   { testSeedRepeatable(Golang, t) }

// TestXorshiftHighSeedBits checks that seeds differing only in their high
// 32 bits produce different streams.
func TestXorshiftHighSeedBits(t *testing.T) {
	gen1 := New(Xorshift, 7)
	gen2 := New(Xorshift, 7|(1<<40))
	xs1, xs2 := make([]float64, 100), make([]float64, 100)
	gen1.UniformAt(0, 1, xs1)
	gen2.UniformAt(0, 1, xs2)

	same := 0
	for i := range xs1 {
		if xs1[i] == xs2[i] {
			same++
		}
	}
	if same == len(xs1) {
		t.Fatalf("seeds differing in their high bits produced identical " +
			"sequences")
	}
}

func benchmarkUniformAt(gt GeneratorType, tLen int, b *testing.B) {
	gen := NewTimeSeed(gt)
	b.ResetTimer()

	target := make([]float64, tLen)

	n := 0
	for n < b.N {
		if n+tLen > b.N {
			target = target[0 : b.N-n]
		}
		gen.UniformAt(0, 1, target)
		n += tLen
	}
}

func BenchmarkUniformAtXorshift(b *testing.B) { benchmarkUniformAt(Xorshift, 1024, b) }
func BenchmarkUniformAtGolang(b *testing.B)   { benchmarkUniformAt(Golang, 1024, b) }
