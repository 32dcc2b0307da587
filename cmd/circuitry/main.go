// Command circuitry joins 3D points into circuits shortest-edge first and
// prints two numbers: the product of the three largest circuit sizes after
// the bounded phase, and the X-coordinate product of the pair that finally
// joins everything into one circuit.
//
// Usage:
//
//	circuitry [-config file.yaml] [-input points.txt | -sample] [-limit n] [-log-level lvl] [-metrics]
//
// Without -input (or an input key in the config) the embedded 20-point sample
// is used with limit 10; file input defaults to limit 1000.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/katalvlaran/circuitry/config"
	"github.com/katalvlaran/circuitry/core"
	"github.com/katalvlaran/circuitry/dataset"
	"github.com/katalvlaran/circuitry/merge"
	"github.com/katalvlaran/circuitry/metrics"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "circuitry:", err)
		}
		os.Exit(1)
	}
}

// run parses args, executes both phases and writes the two results to
// stdout. Logs and the optional metrics dump go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("circuitry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	input := fs.String("input", "", "point file, one x,y,z per line")
	sample := fs.Bool("sample", false, "use the embedded sample even if an input is configured")
	limit := fs.Int("limit", config.AutoLimit, "edges consumed in the bounded phase (-1: 10 for the sample, 1000 for files)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	dumpMetrics := fs.Bool("metrics", false, "write Prometheus metrics to stderr after the run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	// Flags given explicitly win over the file.
	limitSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "limit":
			cfg.Limit = *limit
			limitSet = true
		case "log-level":
			cfg.LogLevel = *logLevel
		case "metrics":
			cfg.Metrics = *dumpMetrics
		}
	})
	if *sample {
		// A configured limit belongs to the configured input.
		cfg.Input = ""
		if !limitSet {
			cfg.Limit = config.AutoLimit
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})).
		With(slog.String("run", uuid.NewString()))

	points, source, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	limitN := cfg.EffectiveLimit()
	logger.Info("starting", slog.String("source", source), slog.Int("points", len(points)), slog.Int("limit", limitN))

	opts := []merge.Option{merge.WithLogger(logger)}
	var rec *metrics.Recorder
	if cfg.Metrics {
		rec = metrics.NewRecorder()
		opts = append(opts, merge.WithObserver(rec))
	}

	res, err := merge.Run(points, limitN, opts...)
	if err != nil {
		return err
	}

	if rec != nil {
		if err := rec.WriteText(stderr); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(stdout, "%d\n%d\n", res.SizeProduct, res.Final.Product)

	return err
}

func loadPoints(cfg config.Config) ([]core.Point, string, error) {
	if cfg.UseSample() {
		return dataset.Sample(), "sample", nil
	}
	points, err := dataset.Load(cfg.Input)

	return points, cfg.Input, err
}
