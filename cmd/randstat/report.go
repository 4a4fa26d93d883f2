package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	randstat "github.com/caio/go-randstat"
)

// report prints the summary of samples followed by a bar per histogram
// bin, the tallest bar being width characters long.
func report(w io.Writer, title string, samples []float64, cfg Config) error {
	summary, err := randstat.Summarize(samples)
	if err != nil {
		return errors.Wrap(err, title)
	}

	hist, err := randstat.Histogram(samples, cfg.Min, cfg.Max, nil, cfg.Bins)
	if err != nil && !errors.Is(err, randstat.ErrDegenerateHistogram) {
		return errors.Wrap(err, title)
	}

	fmt.Fprintf(w, "%s: %s\n", title, summary)
	if err != nil {
		fmt.Fprintf(w, "no samples in [%g, %g]\n", cfg.Min, cfg.Max)
		return nil
	}

	binWidth := (cfg.Max - cfg.Min) / float64(cfg.Bins-1)
	for i, h := range hist {
		fmt.Fprintf(w, "%9.3f |%s\n", cfg.Min+float64(i)*binWidth, strings.Repeat("#", int(h*float64(cfg.Width)+0.5)))
	}
	return nil
}
