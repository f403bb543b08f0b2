// Package report holds per-step snapshot histories and the Sink interface
// for forwarding snapshots to external backends. The in-memory History is the
// default store an environment writes to; additional sinks (for example the
// sqlite subpackage) can be attached for persistence.
package report

import "github.com/simweave/simweave/core"

// Sink receives one snapshot per reporting entity per step. Implementations
// must not mutate the snapshot.
type Sink interface {
	Record(runID string, year int, id core.Ident, snapshot core.Snapshot) error
}

// History maps qualified object ids to their ordered snapshot sequences. It
// is append-only from the engine's perspective: one entry per reporting step
// in which the object was active, never overwritten, never pruned.
type History struct {
	entries map[string][]core.Snapshot
	order   []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: map[string][]core.Snapshot{}}
}

// Record implements Sink by appending a deep copy of the snapshot, so later
// entity mutations cannot rewrite recorded history.
func (h *History) Record(_ string, _ int, id core.Ident, snapshot core.Snapshot) error {
	key := id.String()
	if _, seen := h.entries[key]; !seen {
		h.order = append(h.order, key)
	}
	h.entries[key] = append(h.entries[key], snapshot.Clone())
	return nil
}

// Get returns the snapshot sequence recorded for a qualified id, oldest
// first. The returned slice is a copy.
func (h *History) Get(id string) []core.Snapshot {
	src := h.entries[id]
	out := make([]core.Snapshot, len(src))
	copy(out, src)
	return out
}

// Len returns the number of snapshots recorded for a qualified id.
func (h *History) Len(id string) int { return len(h.entries[id]) }

// IDs returns the recorded object ids in first-report order.
func (h *History) IDs() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// All returns a copy of the full history keyed by qualified id.
func (h *History) All() map[string][]core.Snapshot {
	out := make(map[string][]core.Snapshot, len(h.entries))
	for id, snaps := range h.entries {
		cp := make([]core.Snapshot, len(snaps))
		copy(cp, snaps)
		out[id] = cp
	}
	return out
}

var _ Sink = (*History)(nil)
