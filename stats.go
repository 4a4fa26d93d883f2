package randstat

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Mean returns the arithmetic average of samples.
func Mean[T Number](samples []T) (float64, error) {
	if len(samples) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "mean")
	}

	sum := 0.0
	for _, x := range samples {
		sum += float64(x)
	}
	return sum / float64(len(samples)), nil
}

// Variance returns the unbiased sample variance of samples using the
// single pass form (Σx² - (Σx)²/n) / (n-1). It loses precision for data
// far from zero relative to its spread. A single sample has variance 0.
func Variance[T Number](samples []T) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "variance")
	}
	if n < 2 {
		return 0, nil
	}

	var q, s float64
	for _, v := range samples {
		x := float64(v)
		q += x * x
		s += x
	}
	return (q - s*s/float64(n)) / float64(n-1), nil
}

// Sigma returns the square root of Variance.
func Sigma[T Number](samples []T) (float64, error) {
	v, err := Variance(samples)
	if err != nil {
		return 0, err
	}
	// the single pass form can dip just below zero for constant data
	return math.Sqrt(math.Max(v, 0)), nil
}

// Summary bundles the descriptive statistics of a sample set.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64
	Sigma    float64
	Min      float64
	Max      float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.6f var=%.6f sigma=%.6f min=%.6f max=%.6f",
		s.Count, s.Mean, s.Variance, s.Sigma, s.Min, s.Max)
}

// Summarize computes a Summary of samples.
func Summarize[T Number](samples []T) (Summary, error) {
	mean, err := Mean(samples)
	if err != nil {
		return Summary{}, err
	}
	variance, err := Variance(samples)
	if err != nil {
		return Summary{}, err
	}

	xs := make([]float64, len(samples))
	for i, x := range samples {
		xs[i] = float64(x)
	}

	return Summary{
		Count:    len(samples),
		Mean:     mean,
		Variance: variance,
		Sigma:    math.Sqrt(math.Max(variance, 0)),
		Min:      floats.Min(xs),
		Max:      floats.Max(xs),
	}, nil
}
