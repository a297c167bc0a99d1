// SPDX-License-Identifier: MIT

// Command minplus times the min-plus squaring kernel on a generated or loaded
// distance matrix, optionally checks it against the float64 reference, runs the
// all-pairs closure and dumps the result.
//
// Usage:
//
//	minplus -n 1024 -density 0.3 -rounds 10 -verify
//	minplus -in graph.trmx -apsp -out closure.trmx -compress 3
//	MINPLUS_LOG_FORMAT=json minplus -n 256 -workers 4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tropical/apsp"
	"github.com/katalvlaran/tropical/distio"
	"github.com/katalvlaran/tropical/gen"
	"github.com/katalvlaran/tropical/internal/cpuinfo"
	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/minplus"
	"github.com/katalvlaran/tropical/verify"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log := newLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error("run failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// timing summarizes the timed kernel invocations.
type timing struct {
	Min, Median time.Duration
}

// run executes one harness session described by cfg.
func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	d, err := loadInput(cfg)
	if err != nil {
		return err
	}
	n := d.N()
	log.Info("input ready", "n", n, "source", inputSource(cfg), "cpu", cpuinfo.Detect())

	var kopts []minplus.Option
	if cfg.Workers > 0 {
		kopts = append(kopts, minplus.WithWorkers(cfg.Workers))
	}
	k := minplus.NewKernel(kopts...)
	defer k.Close()

	r, err := matrix.NewDense(n)
	if err != nil {
		return err
	}
	t, err := timeKernel(ctx, k, r, d, cfg.Rounds)
	if err != nil {
		return err
	}
	log.Info("kernel timed",
		"n", n, "workers", k.Workers(), "rounds", cfg.Rounds,
		"min", t.Min, "median", t.Median, "gflops", gflops(n, t.Min))

	var closure *matrix.Dense
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Verify {
		g.Go(func() error { return verifyStep(gctx, log, d, r) })
	}
	if cfg.APSP {
		g.Go(func() error {
			c, st, cerr := apsp.Closure(gctx, d, apsp.WithKernel(k), apsp.WithLogger(log))
			if cerr != nil {
				return cerr
			}
			log.Info("closure done", "rounds", st.Rounds, "converged", st.Converged, "elapsed", st.Elapsed)
			closure = c

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	if cfg.Out == "" {
		return nil
	}
	out := r
	if closure != nil {
		out = closure
	}

	return dump(cfg, out, log)
}

func inputSource(cfg Config) string {
	if cfg.In != "" {
		return cfg.In
	}

	return "generated"
}

func loadInput(cfg Config) (*matrix.Dense, error) {
	if cfg.In == "" {
		return gen.Random(cfg.N, gen.WithSeed(cfg.Seed), gen.WithDensity(cfg.Density))
	}
	f, err := os.Open(cfg.In)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return distio.Read(f)
}

// timeKernel runs the kernel rounds times, checking ctx between invocations.
func timeKernel(ctx context.Context, k *minplus.Kernel, r, d *matrix.Dense, rounds int) (timing, error) {
	samples := make([]time.Duration, 0, rounds)
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return timing{}, err
		}
		start := time.Now()
		if err := k.StepMatrix(r, d); err != nil {
			return timing{}, err
		}
		samples = append(samples, time.Since(start))
	}

	return summarize(samples), nil
}

// summarize returns the minimum and median of samples (lower median for even counts).
func summarize(samples []time.Duration) timing {
	if len(samples) == 0 {
		return timing{}
	}
	s := slices.Clone(samples)
	slices.Sort(s)

	return timing{Min: s[0], Median: s[(len(s)-1)/2]}
}

// gflops counts one add and one min per inner iteration.
func gflops(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	ops := 2 * float64(n) * float64(n) * float64(n)

	return ops / d.Seconds() / 1e9
}

func verifyStep(ctx context.Context, log *slog.Logger, d, got *matrix.Dense) error {
	n := d.N()
	want := make([]float32, n*n)
	verify.Reference(want, d.Data(), n)
	rep, err := verify.Compare(ctx, want, got.Data(), n)
	if err != nil {
		if errors.Is(err, verify.ErrMismatch) {
			log.Error("verification failed", "report", rep.String())
		}
		return err
	}
	log.Info("verification passed", "cells", rep.Cells)

	return nil
}

func dump(cfg Config, m *matrix.Dense, log *slog.Logger) error {
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	var opts []distio.Option
	if cfg.Compress > 0 {
		opts = append(opts, distio.WithCompression(cfg.Compress))
	}
	if err = distio.Write(f, m, opts...); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	log.Info("matrix written", "path", cfg.Out, "n", m.N(), "zstd", cfg.Compress)

	return nil
}
