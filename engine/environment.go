package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/simweave/simweave/core"
	"github.com/simweave/simweave/logging"
	"github.com/simweave/simweave/registry"
	"github.com/simweave/simweave/report"
)

// Options holds dependency and configuration overrides passed to New().
type Options struct {
	// Year is the initial clock value of the simulation.
	Year int
	// Rand is the random source agents draw from. Supplying a fixed-seed
	// source makes runs reproducible.
	Rand *rand.Rand
	// Logger receives structured engine logs. Defaults to NoOp.
	Logger logging.Logger
	// Sinks are additional report sinks beyond the built-in in-memory
	// history (for example a sqlite sink).
	Sinks []report.Sink
}

// Environment is the orchestrator owning one registry, the simulation clock,
// and the report history. All mutation and query traffic from application
// code goes through its pass-through surface; the registry is never exposed
// directly.
type Environment struct {
	runID string
	year  int

	registry *registry.Registry
	history  *report.History
	sinks    []report.Sink

	logger logging.Logger
	rng    *rand.Rand
}

// New constructs an Environment with optional overrides.
func New(optFns ...func(o *Options)) *Environment {
	opts := Options{
		Year:   2020,
		Rand:   rand.New(rand.NewSource(1)),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	history := report.NewHistory()
	return &Environment{
		runID:    uuid.NewString(),
		year:     opts.Year,
		registry: registry.New(),
		history:  history,
		sinks:    append([]report.Sink{history}, opts.Sinks...),
		logger:   opts.Logger,
		rng:      opts.Rand,
	}
}

// RunID identifies this environment instance in logs and persisted reports.
func (e *Environment) RunID() string { return e.runID }

// Year returns the current clock value.
func (e *Environment) Year() int { return e.year }

// Rand returns the environment's random source.
func (e *Environment) Rand() *rand.Rand { return e.rng }

// Add registers entities, accepting single entities or arbitrarily nested
// sequences. Validation and the all-or-nothing batch contract live in the
// registry.
func (e *Environment) Add(objects ...any) error {
	if err := e.registry.Add(objects...); err != nil {
		return err
	}
	e.logger.Debug("objects registered", "total", e.registry.Len())
	return nil
}

// Delete removes entities from the registry. Deleting a non-member is a
// no-op.
func (e *Environment) Delete(objects ...any) error {
	return e.registry.Delete(objects...)
}

// Get performs an exact lookup by namespaced identity.
func (e *Environment) Get(id core.Ident) (core.Registrable, error) {
	return e.registry.Get(id)
}

// List returns active entities in insertion order, optionally filtered to one
// concrete kind.
func (e *Environment) List(kind string) []core.Registrable {
	return e.registry.List(kind)
}

// Contains is a membership test accepting an entity, an Ident, or a
// qualified id string.
func (e *Environment) Contains(ref any) bool {
	return e.registry.Contains(ref)
}

// Agents returns every registered agent in insertion order.
func (e *Environment) Agents() []core.Agent {
	var agents []core.Agent
	for _, obj := range e.registry.List("") {
		if a, ok := obj.(core.Agent); ok {
			agents = append(agents, a)
		}
	}
	return agents
}

// Assets returns every registered non-agent entity in insertion order.
func (e *Environment) Assets() []core.Registrable {
	var assets []core.Registrable
	for _, obj := range e.registry.List("") {
		if _, ok := obj.(core.Agent); !ok {
			assets = append(assets, obj)
		}
	}
	return assets
}

// Step advances the simulation by one unit: every agent registered at step
// start acts in insertion order, then reports are collected, then the clock
// advances. The ordering is load-bearing: reports describe post-action,
// pre-advance state for the step just completed.
//
// A failing agent cycle aborts the step and propagates; skipping the agent
// silently would leave the step's report set incomplete.
func (e *Environment) Step(ctx context.Context) error {
	start := time.Now()
	agents := e.Agents()

	for _, agent := range agents {
		if err := ctx.Err(); err != nil {
			return err
		}
		cycleStart := time.Now()
		err := core.Act(agent, e)
		e.logger.Debug("agent cycle finished",
			"agent_id", agent.Ident().String(),
			"duration", time.Since(cycleStart),
			"success", err == nil,
		)
		if err != nil {
			return fmt.Errorf("step %d: agent '%s': %w", e.year, agent.Ident(), err)
		}
	}

	if err := e.Report(); err != nil {
		return fmt.Errorf("step %d: %w", e.year, err)
	}

	e.year++
	e.logger.Info("step completed",
		"year", e.year-1,
		"agent_count", len(agents),
		"duration", time.Since(start),
	)
	return nil
}

// Run advances the simulation by steps units, stopping early on the first
// failure or context cancellation.
func (e *Environment) Run(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Report collects one snapshot from every reporting-enabled entity and
// forwards it, stamped with the current clock value, to the history and any
// attached sinks. Step calls it after all agents have acted; it can also be
// invoked directly to snapshot the initial state.
func (e *Environment) Report() error {
	count := 0
	for _, obj := range e.registry.List("") {
		if !obj.Reporting() {
			continue
		}
		// Stamp a copy so a snapshot the entity retains is never aliased.
		snapshot := obj.Report().Clone()
		for _, fields := range snapshot {
			fields["year"] = e.year
		}
		for _, sink := range e.sinks {
			if err := sink.Record(e.runID, e.year, obj.Ident(), snapshot); err != nil {
				return fmt.Errorf("record report for '%s': %w", obj.Ident(), err)
			}
		}
		count++
	}
	e.logger.Debug("reports collected", "year", e.year, "snapshot_count", count)
	return nil
}

// History returns the in-memory report history.
func (e *Environment) History() *report.History { return e.history }

// Reports returns a copy of the full report history keyed by qualified id.
func (e *Environment) Reports() map[string][]core.Snapshot { return e.history.All() }

var _ core.Environment = (*Environment)(nil)
