package core

// Fields maps field names to their current values within one snapshot.
type Fields map[string]any

// Snapshot is one per-step report record: a mapping from an entity's concrete
// kind to its reportable fields. Snapshots are produced fresh by Report each
// step and are never mutated by the engine after collection; the clock stamp
// is added to a copy at collection time.
type Snapshot map[string]Fields

// Extend merges fields into the inner mapping for kind, creating it if
// absent. Existing base fields are preserved unless explicitly overwritten by
// the caller. It returns the snapshot for chaining.
func (s Snapshot) Extend(kind string, fields Fields) Snapshot {
	inner, ok := s[kind]
	if !ok {
		inner = Fields{}
		s[kind] = inner
	}
	for k, v := range fields {
		inner[k] = v
	}
	return s
}

// Clone returns a deep copy so stored history cannot be mutated through
// retained references.
func (s Snapshot) Clone() Snapshot {
	cp := make(Snapshot, len(s))
	for kind, fields := range s {
		inner := make(Fields, len(fields))
		for k, v := range fields {
			inner[k] = v
		}
		cp[kind] = inner
	}
	return cp
}
