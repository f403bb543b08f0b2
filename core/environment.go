package core

import "math/rand"

// Environment is the orchestrator surface visible to agents, perceptions and
// choice sets during a decision cycle. The concrete implementation lives in
// the engine package; declaring the interface here keeps the contracts free
// of an import cycle, mirroring how stores are declared by their consumers.
//
// Perception extraction must treat the environment as read-only; only the
// choose phase of an agent cycle may call Add, Delete or mutate entities
// obtained through Get and List.
type Environment interface {
	// Year returns the current clock value of the simulation.
	Year() int
	// Get performs an exact lookup by namespaced identity. Absent ids are
	// reported with ErrNotFound.
	Get(id Ident) (Registrable, error)
	// List returns all active entities in registry insertion order,
	// optionally filtered to one concrete kind. An empty kind selects all.
	List(kind string) []Registrable
	// Contains is a membership test accepting a Registrable, an Ident, or a
	// qualified id string.
	Contains(ref any) bool
	// Add registers entities; accepts single entities or arbitrarily nested
	// sequences.
	Add(objects ...any) error
	// Delete removes entities; deleting a non-member is a no-op.
	Delete(objects ...any) error
	// Rand returns the environment's random source. Agents requiring
	// randomness must draw from it so runs stay reproducible under a fixed
	// seed.
	Rand() *rand.Rand
}
