package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	randstat "github.com/caio/go-randstat"
)

// loadConfig reads the configuration file and applies the flags the user
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfgFile, err := ParseConfigFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	cfg := cfgFile.Randstat

	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint32("seed")
		cfg.Seed = &seed
	}
	if flags.Changed("bins") {
		cfg.Bins, _ = flags.GetInt("bins")
	}
	if flags.Changed("min") {
		cfg.Min, _ = flags.GetFloat64("min")
	}
	if flags.Changed("max") {
		cfg.Max, _ = flags.GetFloat64("max")
	}
	if flags.Changed("mean") {
		cfg.Mean, _ = flags.GetFloat64("mean")
	}
	if flags.Changed("sigma") {
		cfg.Sigma, _ = flags.GetFloat64("sigma")
	}
	if flags.Changed("terms") {
		cfg.Terms, _ = flags.GetInt("terms")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}

	return cfg, cfg.Validate()
}

// newGenerator builds the runtime generator, seeding from the clock when
// no seed was configured.
func newGenerator(cfg Config) (*randstat.Generator, error) {
	if cfg.Seed == nil {
		seed := randstat.RuntimeSeed()
		log.WithField("seed", seed).Debug("seeded from clock")
		return randstat.New(randstat.Seed(seed))
	}
	return randstat.New(randstat.Seed(*cfg.Seed))
}

func drawUniform(cfg Config) ([]float64, error) {
	g, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, cfg.Samples)
	for i := range samples {
		samples[i] = randstat.Range(g, cfg.Min, cfg.Max)
	}
	return samples, nil
}

func drawNormal(cfg Config) ([]float64, error) {
	g, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}

	normal := randstat.NewNormal(g)
	samples := make([]float64, cfg.Samples)
	for i := range samples {
		samples[i] = randstat.Gaussian[float64](normal, cfg.Mean, cfg.Sigma)
	}
	return samples, nil
}

func drawConst(kind string, cfg Config) ([]float64, error) {
	switch kind {
	case "uniform":
		return randstat.UniformArray(cfg.Samples, cfg.Min, cfg.Max), nil
	case "normal":
		return randstat.NormalArray[float64](cfg.Samples, cfg.Mean, cfg.Sigma, cfg.Terms)
	}
	return nil, errors.Errorf("unknown build-time array %q, want uniform or normal", kind)
}

func printBench(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTENDER\tDRAWS\tNS/DRAW\tMEAN\tSIGMA")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.5f\t%.5f\n", r.Name, r.Draws, r.PerDraw().Nanoseconds(), r.Summary.Mean, r.Summary.Sigma)
	}
	return tw.Flush()
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "randstat",
		Short:         "LCG random numbers and sample statistics",
		Long:          "Draws uniform and normal samples from the runtime and build-time LCG engines and reports their statistics and histogram",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				log.SetLevel(log.DebugLevel)
				log.Debugln("debug logging enabled")
			}
			jsonLog, _ := cmd.Flags().GetBool("json")
			if jsonLog {
				log.SetFormatter(&log.JSONFormatter{})
			}
			return nil
		},
	}

	defaults := DefaultConfig()
	pflags := rootCmd.PersistentFlags()
	pflags.String("config", "", "location of a YAML configuration file")
	pflags.Bool("debug", false, "enable debug logging")
	pflags.Bool("json", false, "log as JSON")
	pflags.Int("samples", defaults.Samples, "number of samples to draw")
	pflags.Uint32("seed", 0, "runtime generator seed (clock when unset)")
	pflags.Int("bins", defaults.Bins, "histogram resolution")
	pflags.Float64("min", defaults.Min, "histogram and uniform range minimum")
	pflags.Float64("max", defaults.Max, "histogram and uniform range maximum")
	pflags.Float64("mean", defaults.Mean, "normal mean")
	pflags.Float64("sigma", defaults.Sigma, "normal standard deviation")
	pflags.Int("terms", defaults.Terms, "Irwin-Hall terms per build-time normal sample")
	pflags.Int("width", defaults.Width, "histogram bar width")

	sampleCmd := func(use, short string, draw func(Config) ([]float64, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				samples, err := draw(cfg)
				if err != nil {
					return err
				}
				log.WithFields(log.Fields{"samples": len(samples), "engine": use}).Info("drew samples")
				return report(out, use, samples, cfg)
			},
		}
	}

	constCmd := &cobra.Command{
		Use:       "const uniform|normal",
		Short:     "Report on the build-time arrays",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"uniform", "normal"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"build_time": randstat.BuildTime, "seed": randstat.BuildSeed()}).Debug("build-time engine")
			samples, err := drawConst(args[0], cfg)
			if err != nil {
				return err
			}
			return report(out, "const "+args[0], samples, cfg)
		},
	}

	var tablePackage, tableName, tableClock string
	tableCmd := &cobra.Command{
		Use:       "table uniform|normal",
		Short:     "Emit Go source holding a precomputed build-time array",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"uniform", "normal"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if tableClock == "" {
				tableClock = randstat.BuildTime
			}
			return writeTable(out, tablePackage, tableName, args[0], tableClock, cfg)
		},
	}
	tableCmd.Flags().StringVar(&tablePackage, "package", "main", "package clause of the generated file")
	tableCmd.Flags().StringVar(&tableName, "name", "table", "variable name of the generated array")
	tableCmd.Flags().StringVar(&tableClock, "clock", "", "HH:MM:SS stamp to seed from (defaults to the build time)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the runtime engines against math/rand and go_rng",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			seed := randstat.RuntimeSeed()
			if cfg.Seed != nil {
				seed = *cfg.Seed
			}
			results, err := runBench(seed, cfg.Samples)
			if err != nil {
				return err
			}
			return printBench(out, results)
		},
	}

	rootCmd.AddCommand(
		sampleCmd("uniform", "Report on runtime uniform samples over [min, max]", drawUniform),
		sampleCmd("normal", "Report on runtime normal samples", drawNormal),
		constCmd,
		tableCmd,
		benchCmd,
	)

	return rootCmd
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}
