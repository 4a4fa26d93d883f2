package randstat

import "math"

// epsilon is the float64 machine epsilon. Polar pairs with a squared
// radius below it are rejected so log(s)/s stays finite.
const epsilon = 2.220446049250313e-16

// Normal draws standard normal samples from a uniform Source using the
// Marsaglia polar method. Each accepted pair yields two samples; the
// second is cached and returned by the next call.
//
// A Normal is not safe for concurrent use.
type Normal struct {
	src     Source
	z1      float64
	pending bool
}

// NewNormal returns a Normal reading uniforms from src.
func NewNormal(src Source) *Normal {
	return &Normal{src: src}
}

// Reset drops a cached sample, if any.
func (n *Normal) Reset() {
	n.z1 = 0
	n.pending = false
}

// Float64 returns a sample with mean 0 and standard deviation 1.
func (n *Normal) Float64() float64 {
	if n.pending {
		n.pending = false
		return n.z1
	}

	var x, y, s float64
	for {
		x = n.src.Float64()*2 - 1
		y = n.src.Float64()*2 - 1
		s = x*x + y*y
		if s <= 1 && s >= epsilon {
			break
		}
	}

	factor := math.Sqrt(-2 * math.Log(s) / s)
	n.z1 = y * factor
	n.pending = true
	return x * factor
}

// Gaussian scales a standard normal sample from n by sigma, shifts it by
// mean and converts it to T.
func Gaussian[T Number](n *Normal, mean, sigma float64) T {
	return T(n.Float64()*sigma + mean)
}
