package randstat

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/yourbasic/fenwick"
	"gonum.org/v1/gonum/floats"
)

// Bins counts samples falling into equally spaced bins over [min, max].
// The first bin starts at min and the last one is centred on max, so a
// sample equal to max lands in the last bin.
//
// Bins is not safe for concurrent use.
type Bins struct {
	min, max float64
	scale    float64
	counts   *fenwick.List
	total    uint64
}

// NewBins creates resolution bins over [min, max].
func NewBins(min, max float64, resolution int) (*Bins, error) {
	if resolution < 2 {
		return nil, errors.Wrapf(ErrDegenerateResolution, "resolution=%d", resolution)
	}
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, errors.Wrapf(ErrInvalidRange, "[%g, %g]", min, max)
	}

	return &Bins{
		min:    min,
		max:    max,
		scale:  float64(resolution-1) / (max - min),
		counts: fenwick.New(make([]int64, resolution)...),
	}, nil
}

// Len returns the number of bins.
func (b *Bins) Len() int {
	return b.counts.Len()
}

// Observe adds x to its bin. Samples outside [min, max] (and NaN) are
// dropped and Observe returns false.
func (b *Bins) Observe(x float64) bool {
	if !(x >= b.min && x <= b.max) {
		return false
	}

	idx := int((x - b.min) * b.scale)
	if idx >= b.counts.Len() {
		idx = b.counts.Len() - 1
	}

	b.counts.Add(idx, 1)
	b.total++
	return true
}

// Count returns the number of samples in bin i.
func (b *Bins) Count(i int) uint64 {
	return uint64(b.counts.Get(i))
}

// Total returns the number of samples observed inside the range.
func (b *Bins) Total() uint64 {
	return b.total
}

// CumulativeFraction returns the fraction of in-range samples that fell
// into bins 0..i. It is 0 while no sample has been observed.
func (b *Bins) CumulativeFraction(i int) float64 {
	if b.total == 0 {
		return 0
	}
	return float64(b.counts.Sum(i+1)) / float64(b.total)
}

// Reset forgets every observed sample.
func (b *Bins) Reset() {
	b.counts = fenwick.New(make([]int64, b.counts.Len())...)
	b.total = 0
}

// Normalize writes the bin counts divided by the largest count into dst,
// growing it if needed, and returns it. With no samples observed the bins
// are written as zeros and ErrDegenerateHistogram is returned.
func (b *Bins) Normalize(dst []float64) ([]float64, error) {
	n := b.counts.Len()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	for i := range dst {
		dst[i] = float64(b.counts.Get(i))
	}

	if b.total == 0 {
		return dst, errors.Wrapf(ErrDegenerateHistogram, "[%g, %g]", b.min, b.max)
	}

	// divide rather than scale by the reciprocal so the peak is exactly 1
	peak := floats.Max(dst)
	for i := range dst {
		dst[i] /= peak
	}
	return dst, nil
}

func (b Bins) String() string {
	return fmt.Sprintf("Bins<range=[%g, %g], bins=%d, total=%d>", b.min, b.max, b.counts.Len(), b.total)
}

// Histogram bins samples over [min, max] into hist and normalizes it so
// its largest bin equals 1.
//
// A positive resolution resizes hist to that many zeroed bins. A zero
// resolution keeps hist as it is: its length is the resolution and the
// new counts are added on top of the values already there. The returned
// slice must be used in place of hist, as with append.
//
// When every bin is zero the buffer is returned unnormalized together
// with ErrDegenerateHistogram.
func Histogram[T Number](samples []T, min, max T, hist []float64, resolution int) ([]float64, error) {
	if resolution < 0 {
		return hist, errors.Wrapf(ErrDegenerateResolution, "resolution=%d", resolution)
	}
	if resolution > 0 {
		if cap(hist) < resolution {
			hist = make([]float64, resolution)
		}
		hist = hist[:resolution]
		for i := range hist {
			hist[i] = 0
		}
	}

	bins, err := NewBins(float64(min), float64(max), len(hist))
	if err != nil {
		return hist, err
	}

	for _, x := range samples {
		bins.Observe(float64(x))
	}

	for i := range hist {
		hist[i] += float64(bins.Count(i))
	}

	// divide rather than scale by the reciprocal so the peak is exactly 1
	peak := floats.Max(hist)
	if !(peak > 0) {
		return hist, errors.Wrapf(ErrDegenerateHistogram, "[%v, %v]", min, max)
	}
	for i := range hist {
		hist[i] /= peak
	}
	return hist, nil
}
