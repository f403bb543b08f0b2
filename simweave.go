// Package simweave provides a high-level façade over the engine and registry
// packages for building agent-based simulations. Most applications interact
// with this package by:
//  1. Creating a Simulation via New() (optionally overriding the start year,
//     random seed, logger or report sinks)
//  2. Adding agents and assets (Add)
//  3. Running the step loop (Run) and reading back the collected reports
//
// The façade delegates orchestration to engine.Environment while keeping
// setup concise. All defaults are safe for local development and testing;
// longer experiments typically supply a durable report sink and a structured
// logger.
package simweave

import (
	"context"
	"math/rand"

	"github.com/simweave/simweave/core"
	"github.com/simweave/simweave/engine"
	"github.com/simweave/simweave/logging"
	"github.com/simweave/simweave/report"
)

// Options configures the Simulation instance.
type Options struct {
	// Year is the simulated calendar year at step zero.
	Year int

	// Seed initializes the shared random source. Two simulations with the
	// same seed and the same population replay identically.
	Seed int64

	// Sinks receive every snapshot in addition to the in-memory history.
	Sinks []report.Sink

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Simulation is the high-level façade aggregating the environment and its
// report history.
type Simulation struct {
	opts Options
	env  *engine.Environment
}

// New creates a new Simulation with optional overrides.
func New(optFns ...func(o *Options)) *Simulation {
	opts := Options{
		Year:   engine.DefaultConfig().Year,
		Seed:   engine.DefaultConfig().Seed,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	env := engine.New(func(o *engine.Options) {
		o.Year = opts.Year
		o.Rand = rand.New(rand.NewSource(opts.Seed))
		o.Logger = opts.Logger
		o.Sinks = opts.Sinks
	})

	return &Simulation{opts: opts, env: env}
}

// FromConfig creates a Simulation from an engine configuration, typically
// loaded from a YAML file.
func FromConfig(cfg engine.Config, optFns ...func(o *Options)) *Simulation {
	base := func(o *Options) {
		o.Year = cfg.Year
		o.Seed = cfg.Seed
		o.Logger = logging.NewSimLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, false)
	}
	return New(append([]func(o *Options){base}, optFns...)...)
}

// Environment exposes the underlying environment for agents that need direct
// access, e.g. to seed asset populations before the first step.
func (s *Simulation) Environment() *engine.Environment { return s.env }

// Add registers objects with the environment. Slices are flattened and the
// whole batch is rejected if any object is invalid.
func (s *Simulation) Add(objects ...any) error { return s.env.Add(objects...) }

// Run advances the simulation by the given number of steps.
func (s *Simulation) Run(ctx context.Context, steps int) error {
	return s.env.Run(ctx, steps)
}

// Step advances the simulation by a single step.
func (s *Simulation) Step(ctx context.Context) error { return s.env.Step(ctx) }

// Reports returns all collected snapshots keyed by qualified object id.
func (s *Simulation) Reports() map[string][]core.Snapshot { return s.env.Reports() }

// History returns the in-memory report history.
func (s *Simulation) History() *report.History { return s.env.History() }
