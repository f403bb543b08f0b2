// Package engine provides the Environment, the aggregate root of a
// simulation: it owns one registry, the simulation clock, and the report
// history, and drives the per-step agent decision cycle in registry insertion
// order.
//
// Execution is strictly single-threaded and cooperative. One agent's full
// four-phase cycle runs to completion before the next agent's begins, and
// each acting agent observes the cumulative effect of every prior agent's
// mutations from the same step. There is no snapshotting or isolation; this
// makes outcomes sensitive to insertion order, which is the documented
// behavior and what makes runs reproducible under a fixed order and seed.
package engine
