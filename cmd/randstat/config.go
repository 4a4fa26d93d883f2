package main

import (
	"io/ioutil"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	randstat "github.com/caio/go-randstat"
)

// Config controls how samples are drawn and reported.
type Config struct {
	// Samples is the number of values drawn per run.
	Samples int `yaml:"samples"`
	// Seed is the runtime generator seed. Nil seeds from the clock.
	Seed *uint32 `yaml:"seed"`
	// Bins, Min and Max describe the histogram.
	Bins int     `yaml:"bins"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	// Mean and Sigma shape the normal samples.
	Mean  float64 `yaml:"mean"`
	Sigma float64 `yaml:"sigma"`
	// Terms is the Irwin-Hall term count of the build-time normal array.
	Terms int `yaml:"terms"`
	// Width is the column width of the rendered histogram.
	Width int `yaml:"width"`
}

// ConfigFile is the on-disk layout of a configuration file.
type ConfigFile struct {
	Randstat Config `yaml:"randstat"`
}

// DefaultConfig mirrors the demo setup: 100000 samples into 100 bins
// over [-5, 5].
func DefaultConfig() Config {
	return Config{
		Samples: 100000,
		Bins:    100,
		Min:     -5,
		Max:     5,
		Mean:    0,
		Sigma:   1,
		Terms:   randstat.IrwinHallTerms,
		Width:   60,
	}
}

// Validate reports the first setting that cannot produce a report.
func (cfg Config) Validate() error {
	switch {
	case cfg.Samples < 1:
		return errors.Errorf("samples must be >= 1, got %d", cfg.Samples)
	case cfg.Bins < 2:
		return errors.Wrapf(randstat.ErrDegenerateResolution, "bins=%d", cfg.Bins)
	case !(cfg.Min < cfg.Max), math.IsInf(cfg.Min, 0), math.IsInf(cfg.Max, 0):
		return errors.Wrapf(randstat.ErrInvalidRange, "[%g, %g]", cfg.Min, cfg.Max)
	case cfg.Terms < 1:
		return errors.Wrapf(randstat.ErrDegenerateTerms, "terms=%d", cfg.Terms)
	case cfg.Width < 1:
		return errors.Errorf("width must be >= 1, got %d", cfg.Width)
	}
	return nil
}

// ParseConfigFile reads a YAML configuration on top of DefaultConfig.
//
// It supports relative and absolute paths and environment variables. An
// empty path returns the defaults.
func ParseConfigFile(path string) (*ConfigFile, error) {
	cfgFile := ConfigFile{Randstat: DefaultConfig()}
	if path == "" {
		return &cfgFile, nil
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contents, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(contents, &cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "parsing "+path)
	}

	return &cfgFile, nil
}
