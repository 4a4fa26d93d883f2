package randstat

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when a statistic needs at least one sample.
	ErrEmptyInput = errors.New("empty sample set")

	// ErrDegenerateResolution is returned for histograms with fewer than
	// two bins.
	ErrDegenerateResolution = errors.New("histogram resolution must be >= 2")

	// ErrDegenerateHistogram is returned when no sample fell inside the
	// histogram range. The bins are left at zero.
	ErrDegenerateHistogram = errors.New("no samples inside histogram range")

	// ErrInvalidRange is returned when a histogram range has max <= min.
	ErrInvalidRange = errors.New("histogram range must satisfy min < max")

	// ErrDegenerateTerms is returned when an Irwin-Hall sum is asked to
	// add up fewer than one uniform.
	ErrDegenerateTerms = errors.New("irwin-hall terms must be >= 1")

	// ErrMalformedClock is returned by ParseClock for anything that is
	// not a valid HH:MM:SS stamp.
	ErrMalformedClock = errors.New("malformed HH:MM:SS clock")

	// ErrUnsupportedEncoding is returned when decoding a generator state
	// produced by an unknown encoding version.
	ErrUnsupportedEncoding = errors.New("unsupported encoding version")
)
