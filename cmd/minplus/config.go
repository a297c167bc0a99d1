// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Environment fallbacks, consulted when the matching flag is not given.
const (
	envWorkers   = "MINPLUS_WORKERS"
	envLogFormat = "MINPLUS_LOG_FORMAT"
)

var (
	errBadConfig = errors.New("minplus: invalid configuration")
)

// Config is the harness configuration after flags and environment are merged.
type Config struct {
	N         int
	Density   float64
	Seed      int64
	Workers   int // 0 = GOMAXPROCS
	Rounds    int
	Verify    bool
	APSP      bool
	In        string
	Out       string
	Compress  int // zstd level for -out; 0 = raw
	LogFormat string
	LogLevel  slog.Level
}

// parseConfig reads args (without the program name) into a Config.
// getenv is os.Getenv in production and a map lookup in tests.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	var (
		cfg      Config
		logLevel string
	)
	fs := flag.NewFlagSet("minplus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.N, "n", 512, "matrix order of the generated input")
	fs.Float64Var(&cfg.Density, "density", 0.5, "edge probability of the generated input")
	fs.Int64Var(&cfg.Seed, "seed", 1, "generator seed")
	fs.IntVar(&cfg.Workers, "workers", 0, "kernel workers (0 = GOMAXPROCS, env "+envWorkers+")")
	fs.IntVar(&cfg.Rounds, "rounds", 5, "timed kernel invocations")
	fs.BoolVar(&cfg.Verify, "verify", false, "compare the kernel output with the float64 reference")
	fs.BoolVar(&cfg.APSP, "apsp", false, "also run the repeated-squaring all-pairs closure")
	fs.StringVar(&cfg.In, "in", "", "read the input matrix from this distio file instead of generating it")
	fs.StringVar(&cfg.Out, "out", "", "write the kernel output (or closure with -apsp) to this distio file")
	fs.IntVar(&cfg.Compress, "compress", 0, "zstd level for -out (0 = uncompressed)")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "log format: text or json (env "+envLogFormat+")")
	fs.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", errBadConfig, fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["workers"] {
		if v := getenv(envWorkers); v != "" {
			w, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%w: %s=%q: %v", errBadConfig, envWorkers, v, err)
			}
			cfg.Workers = w
		}
	}
	if !set["log-format"] {
		if v := getenv(envLogFormat); v != "" {
			cfg.LogFormat = v
		}
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("%w: -log-level: %v", errBadConfig, err)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, cfg.Validate()
}

// Validate rejects values the harness cannot run with.
func (c Config) Validate() error {
	switch {
	case c.In == "" && c.N < 0:
		return fmt.Errorf("%w: -n=%d must be >= 0", errBadConfig, c.N)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: -density=%g must be in [0,1]", errBadConfig, c.Density)
	case c.Workers < 0:
		return fmt.Errorf("%w: -workers=%d must be >= 0", errBadConfig, c.Workers)
	case c.Rounds < 1:
		return fmt.Errorf("%w: -rounds=%d must be >= 1", errBadConfig, c.Rounds)
	case c.Compress < 0 || c.Compress > 22:
		return fmt.Errorf("%w: -compress=%d must be in [0,22]", errBadConfig, c.Compress)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: -log-format=%q must be text or json", errBadConfig, c.LogFormat)
	}

	return nil
}

// newLogger builds the harness logger on w.
func newLogger(c Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
