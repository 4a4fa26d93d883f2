package main

import (
	"math/rand"
	"time"

	rng "github.com/leesper/go_rng"
	log "github.com/sirupsen/logrus"

	randstat "github.com/caio/go-randstat"
)

// contender is one generator timed by the bench command.
type contender struct {
	name string
	draw func() float64
}

// contenders pits the runtime engines against math/rand and go_rng, all
// seeded from the same value.
func contenders(seed uint32) ([]contender, error) {
	g, err := randstat.New(randstat.Seed(seed))
	if err != nil {
		return nil, err
	}
	ng, err := randstat.New(randstat.Seed(seed))
	if err != nil {
		return nil, err
	}
	lcgNormal := randstat.NewNormal(ng)

	std := rand.New(rand.NewSource(int64(seed)))
	stdNormal := rand.New(rand.NewSource(int64(seed)))

	uniform := rng.NewUniformGenerator(int64(seed))
	gauss := rng.NewGaussianGenerator(int64(seed))

	return []contender{
		{"uniform/randstat", g.Float64},
		{"uniform/math-rand", std.Float64},
		{"uniform/go_rng", uniform.Float64},
		{"normal/randstat", lcgNormal.Float64},
		{"normal/math-rand", stdNormal.NormFloat64},
		{"normal/go_rng", func() float64 { return gauss.Gaussian(0, 1) }},
	}, nil
}

// benchResult is the outcome of timing one contender.
type benchResult struct {
	Name    string
	Draws   int
	Elapsed time.Duration
	Summary randstat.Summary
}

// PerDraw returns the average time per draw.
func (r benchResult) PerDraw() time.Duration {
	return r.Elapsed / time.Duration(r.Draws)
}

// runBench times draws calls of every contender and summarizes what they
// produced.
func runBench(seed uint32, draws int) ([]benchResult, error) {
	all, err := contenders(seed)
	if err != nil {
		return nil, err
	}

	results := make([]benchResult, 0, len(all))
	samples := make([]float64, draws)

	for _, c := range all {
		start := time.Now()
		for i := range samples {
			samples[i] = c.draw()
		}
		elapsed := time.Since(start)

		summary, err := randstat.Summarize(samples)
		if err != nil {
			return nil, err
		}

		r := benchResult{Name: c.name, Draws: draws, Elapsed: elapsed, Summary: summary}
		log.WithFields(log.Fields{
			"contender": r.Name,
			"draws":     r.Draws,
			"per_draw":  r.PerDraw(),
			"mean":      summary.Mean,
			"sigma":     summary.Sigma,
		}).Debug("bench finished")

		results = append(results, r)
	}

	return results, nil
}
