package randstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoldenValues(t *testing.T) {
	t.Parallel()

	g, err := New(Seed(0x12345))
	require.NoError(t, err)

	registers := []uint32{0xb75088f4, 0xd971d3e7, 0x2bcf7f0e}
	for i, want := range registers {
		if got := g.Next(); got != want {
			t.Errorf("Register after %d steps: got %#08x, wanted %#08x", i+1, got, want)
		}
	}

	g.Reseed(0x12345)
	for i, want := range []uint32{28321, 13027, 22430} {
		got := g.Float64()
		if got != float64(want)/32767.0 {
			t.Errorf("Draw %d: got %v, wanted %d/32767", i+1, got, want)
		}
	}
}

func TestReseedRoundTrip(t *testing.T) {
	t.Parallel()

	g, _ := New()

	g.Reseed(1234)
	v1 := g.Float64()
	g.Reseed(1234)
	v2 := g.Float64()

	require.Equal(t, v1, v2)
	require.Equal(t, 8136/32767.0, v1)
}

func TestReseedDoesNotAdvance(t *testing.T) {
	t.Parallel()

	g, _ := New()
	g.Reseed(77)

	require.Equal(t, uint32(77), g.State())
}

func TestReseedZeroTakesEffect(t *testing.T) {
	t.Parallel()

	g, _ := New()
	g.Float64()
	g.Reseed(0)

	require.Equal(t, uint32(0), g.State())
	require.Equal(t, lcgIncrement, g.Next())

	g2, err := New(Seed(0))
	require.NoError(t, err)
	require.Equal(t, uint32(0), g2.State())
}

func TestDeterministicStreams(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint32{1, 42, 0xDEADBEEF, math.MaxUint32} {
		a, _ := New(Seed(seed))
		b, _ := New(Seed(seed))

		for i := 0; i < 1000; i++ {
			if x, y := a.Float64(), b.Float64(); x != y {
				t.Fatalf("Streams with seed %d diverged at draw %d: %v != %v", seed, i, x, y)
			}
		}
	}
}

func TestUniformDistribution(t *testing.T) {
	t.Parallel()

	g, _ := New(Seed(0xDEADBEEF))

	const n = 1000000
	sum := 0.0
	for i := 0; i < n; i++ {
		u := g.Float64()
		if u < 0 || u > 1 {
			t.Fatalf("Float64() out of [0, 1]: %v", u)
		}
		sum += u
	}

	mean := sum / n
	if math.Abs(mean-0.5) > 0.005 {
		t.Errorf("Mean of %d uniform draws should be close to 0.5. Got %.5f", n, mean)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	g, _ := New(Seed(1))

	for i := 0; i < 100000; i++ {
		x := Range(g, 6, 10)
		if x < 6 || x > 10 {
			t.Fatalf("Range(6, 10) out of limits: %d", x)
		}

		f := Range(g, -2.5, 2.5)
		if f < -2.5 || f > 2.5 {
			t.Fatalf("Range(-2.5, 2.5) out of limits: %v", f)
		}

		u := Range[uint8](g, 10, 200)
		if u < 10 || u > 200 {
			t.Fatalf("Range[uint8](10, 200) out of limits: %d", u)
		}
	}
}

func TestRangeEndpoints(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3.0, Range[float64](fixedSource(0), 3, 5))
	require.Equal(t, 5.0, Range[float64](fixedSource(1), 3, 5))
	require.Equal(t, 4, Range(fixedSource(0.5), 3, 5))
}

func TestGeneratorString(t *testing.T) {
	g, _ := New(Seed(0x12345))
	require.Equal(t, "LCG<register=0x12345>", g.String())
}

type fixedSource float64

func (f fixedSource) Float64() float64 {
	return float64(f)
}
