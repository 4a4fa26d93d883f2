package randstat

import (
	"math"

	"github.com/pkg/errors"
)

// Build-time engine constants. The period is short (at most 714025) which
// is plenty for a single table generated once per build.
const (
	ConstMultiplier uint32 = 4096
	ConstIncrement  uint32 = 150889
	ConstModulus    uint32 = 714025

	// IrwinHallTerms is the default number of uniforms summed per normal
	// sample. With 12 terms the sum already has variance 1.
	IrwinHallTerms = 12
)

// ConstDraw returns the state following state. The result lies in
// [0, ConstModulus).
func ConstDraw(state uint32) uint32 {
	// 4096 * 714024 + 150889 fits comfortably in 64 bits.
	return uint32((uint64(ConstMultiplier)*uint64(state) + uint64(ConstIncrement)) % uint64(ConstModulus))
}

// ConstDrawNormalized advances state and returns the new state together
// with a uniform sample in [0, 1).
func ConstDrawNormalized(state uint32) (uint32, float64) {
	state = ConstDraw(state)
	return state, float64(state) / float64(ConstModulus)
}

// UniformArray returns n uniform samples in [min, max] generated by the
// build-time engine seeded from BuildSeed. The result only depends on
// BuildTime, so every call within a build yields the same values.
func UniformArray[T Number](n int, min, max T) []T {
	return UniformArrayFrom(BuildSeed(), n, min, max)
}

// UniformArrayFrom is UniformArray with an explicit seed.
func UniformArrayFrom[T Number](seed uint32, n int, min, max T) []T {
	out := make([]T, n)
	state := seed
	span := float64(max) - float64(min)

	var u float64
	for i := range out {
		state, u = ConstDrawNormalized(state)
		out[i] = T(u*span + float64(min))
	}

	return out
}

// NormalArray returns n approximately normal samples with the given mean
// and sigma, generated by the build-time engine seeded from BuildSeed.
//
// Each sample is an Irwin-Hall sum of k uniforms, recentred by k/2 and
// divided by sqrt(k/12) so it has unit variance for every k.
func NormalArray[T Number](n int, mean, sigma float64, k int) ([]T, error) {
	return NormalArrayFrom[T](BuildSeed(), n, mean, sigma, k)
}

// NormalArrayFrom is NormalArray with an explicit seed.
func NormalArrayFrom[T Number](seed uint32, n int, mean, sigma float64, k int) ([]T, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrDegenerateTerms, "k=%d", k)
	}

	out := make([]T, n)
	state := seed
	center := float64(k) / 2
	scale := math.Sqrt(float64(k) / 12)

	var u float64
	for i := range out {
		sum := 0.0
		for j := 0; j < k; j++ {
			state, u = ConstDrawNormalized(state)
			sum += u
		}
		out[i] = T((sum-center)/scale*sigma + mean)
	}

	return out, nil
}
