package randstat

import (
	"math/rand"
	"testing"

	rng "github.com/leesper/go_rng"
)

var sink float64

func BenchmarkUniformGenerator(b *testing.B) {
	g, _ := New(ClockSeed())
	for n := 0; n < b.N; n++ {
		sink = g.Float64()
	}
}

func BenchmarkUniformMathRand(b *testing.B) {
	r := rand.New(rand.NewSource(int64(RuntimeSeed())))
	for n := 0; n < b.N; n++ {
		sink = r.Float64()
	}
}

func BenchmarkUniformGoRNG(b *testing.B) {
	u := rng.NewUniformGenerator(int64(RuntimeSeed()))
	for n := 0; n < b.N; n++ {
		sink = u.Float64()
	}
}

func BenchmarkRangeInt(b *testing.B) {
	g, _ := New(ClockSeed())
	var k int
	for n := 0; n < b.N; n++ {
		k = Range(g, 0, 1)
	}
	_ = k
}

func BenchmarkNormalGenerator(b *testing.B) {
	g, _ := New(ClockSeed())
	normal := NewNormal(g)
	for n := 0; n < b.N; n++ {
		sink = normal.Float64()
	}
}

func BenchmarkNormalMathRand(b *testing.B) {
	r := rand.New(rand.NewSource(int64(RuntimeSeed())))
	for n := 0; n < b.N; n++ {
		sink = r.NormFloat64()
	}
}

func BenchmarkNormalGoRNG(b *testing.B) {
	g := rng.NewGaussianGenerator(int64(RuntimeSeed()))
	for n := 0; n < b.N; n++ {
		sink = g.Gaussian(0, 1)
	}
}

func BenchmarkNormalArray(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, _ = NormalArrayFrom[float64](uint32(n), 1000, 0, 1, IrwinHallTerms)
	}
}

func BenchmarkHistogram(b *testing.B) {
	g, _ := New(Seed(1))
	normal := NewNormal(g)
	data := make([]float64, 100000)
	for i := range data {
		data[i] = normal.Float64()
	}
	hist := make([]float64, 100)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		hist, _ = Histogram(data, -5.0, 5.0, hist, 0)
	}
}
