package core

// Registrable is the base capability of any entity that can live in a
// registry: a stable namespaced identity, an activity flag maintained by the
// registry, a reporting flag, declared references to other entities, and a
// report-producing operation.
//
// Concrete entities embed Entity, which supplies everything except domain
// fields. Types with dependencies override References; types with reportable
// domain fields override Report following the report-then-extend contract
// (call the embedded base first, then Extend the result).
type Registrable interface {
	// Ident returns the entity's namespaced identity.
	Ident() Ident
	// Active reports registry membership. It is false before registration
	// and after destruction.
	Active() bool
	// Reporting reports whether the entity participates in per-step reports.
	Reporting() bool
	// SetReporting toggles report participation.
	SetReporting(bool)
	// References returns the identities of entities this entity depends on.
	// All references must be active in the registry at insertion time.
	References() []Ident
	// Report produces a snapshot of the entity's reportable fields keyed by
	// its kind.
	Report() Snapshot
	// SetActive flags registry membership. It is called by the registry on
	// add and delete; application code should not call it directly.
	SetActive(bool)
}

// Entity is the embeddable base implementation of Registrable. The zero value
// is not usable; construct with NewEntity so the identity is validated.
type Entity struct {
	ident     Ident
	active    bool
	reporting bool
}

// NewEntity validates the kind and raw id and returns an unregistered entity
// with reporting enabled.
func NewEntity(kind, raw string) (Entity, error) {
	id, err := NewIdent(kind, raw)
	if err != nil {
		return Entity{}, err
	}
	return Entity{ident: id, reporting: true}, nil
}

// Ident returns the entity's namespaced identity.
func (e *Entity) Ident() Ident { return e.ident }

// Kind returns the entity's concrete kind name.
func (e *Entity) Kind() string { return e.ident.Kind }

// Active reports registry membership.
func (e *Entity) Active() bool { return e.active }

// SetActive flags registry membership. Managed by the registry.
func (e *Entity) SetActive(active bool) { e.active = active }

// Reporting reports whether the entity participates in per-step reports.
func (e *Entity) Reporting() bool { return e.reporting }

// SetReporting toggles report participation.
func (e *Entity) SetReporting(reporting bool) { e.reporting = reporting }

// References returns no dependencies. Types with dependencies override this.
func (e *Entity) References() []Ident { return nil }

// Report returns the base snapshot containing the qualified id. Overrides
// must call this first and extend the returned snapshot rather than replace
// it, so base fields survive augmentation.
func (e *Entity) Report() Snapshot {
	return Snapshot{e.ident.Kind: Fields{"id": e.ident.String()}}
}
