// Package registry provides the insertion-ordered identity store backing an
// environment. It is the sole owner of object lifetime bookkeeping: identity
// uniqueness, dependency integrity at insertion time, and the activity flag
// of every registered entity.
//
// The id namespace is scoped to one Registry instance, so multiple
// independent simulations never collide. Execution is single-threaded by
// design (one agent cycle runs to completion before the next); the store is
// therefore unsynchronized.
package registry

import (
	"fmt"

	"github.com/simweave/simweave/core"
)

// Registry is an indexed store of Registrables keyed by qualified id, with an
// auxiliary index by concrete kind for type-scoped queries. Iteration order
// is registry insertion order, which is stable and deterministic; reproducible
// simulations depend on it.
type Registry struct {
	objects map[string]core.Registrable
	byKind  map[string]map[string]core.Registrable
	order   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		objects: map[string]core.Registrable{},
		byKind:  map[string]map[string]core.Registrable{},
	}
}

// Add registers one or more entities, flattening arbitrarily nested input.
// For each entity it validates, in order: the value is a Registrable (type
// mismatch otherwise), its qualified id is not already active (duplicate
// identity), and every declared reference resolves to an active entry
// (missing dependency). References may point at earlier entities of the same
// batch. On any failure the whole batch is rolled back; Add commits all of a
// call's insertions or none of them.
func (r *Registry) Add(objects ...any) error {
	batch, err := core.Flatten(objects...)
	if err != nil {
		return err
	}

	var inserted []core.Registrable
	rollback := func() {
		for _, obj := range inserted {
			r.remove(obj)
		}
	}

	for _, obj := range batch {
		key := obj.Ident().String()
		if _, dup := r.objects[key]; dup {
			rollback()
			return &core.DuplicateIdentError{Ident: obj.Ident()}
		}
		for _, ref := range obj.References() {
			if !r.Contains(ref) {
				rollback()
				return &core.MissingDependencyError{Owner: obj.Ident(), Reference: ref}
			}
		}

		r.objects[key] = obj
		kind := obj.Ident().Kind
		if r.byKind[kind] == nil {
			r.byKind[kind] = map[string]core.Registrable{}
		}
		r.byKind[kind][key] = obj
		r.order = append(r.order, key)
		obj.SetActive(true)
		inserted = append(inserted, obj)
	}

	return nil
}

// Delete removes entities from both indices, marks them inactive, and frees
// their ids for reuse. Deleting a non-member is a no-op so teardown stays
// idempotent. Input flattening matches Add; a type mismatch is still rejected
// before any removal.
func (r *Registry) Delete(objects ...any) error {
	batch, err := core.Flatten(objects...)
	if err != nil {
		return err
	}
	for _, obj := range batch {
		r.remove(obj)
	}
	return nil
}

func (r *Registry) remove(obj core.Registrable) {
	key := obj.Ident().String()
	if _, ok := r.objects[key]; !ok {
		return
	}
	delete(r.objects, key)
	kind := obj.Ident().Kind
	delete(r.byKind[kind], key)
	if len(r.byKind[kind]) == 0 {
		delete(r.byKind, kind)
	}
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	obj.SetActive(false)
}

// Get performs an exact lookup by namespaced identity. Absence is signaled
// with core.ErrNotFound, distinctly from the rejecting error kinds.
func (r *Registry) Get(id core.Ident) (core.Registrable, error) {
	obj, ok := r.objects[id.String()]
	if !ok {
		return nil, fmt.Errorf("object '%s': %w", id, core.ErrNotFound)
	}
	return obj, nil
}

// List returns all active entities in insertion order, optionally filtered to
// one concrete kind. An empty kind selects everything.
func (r *Registry) List(kind string) []core.Registrable {
	out := make([]core.Registrable, 0, len(r.order))
	for _, key := range r.order {
		obj := r.objects[key]
		if kind == "" || obj.Ident().Kind == kind {
			out = append(out, obj)
		}
	}
	return out
}

// Contains is a membership test accepting a Registrable, a core.Ident, or a
// qualified id string. Unparseable or unknown references report false.
func (r *Registry) Contains(ref any) bool {
	key, ok := refKey(ref)
	if !ok {
		return false
	}
	obj, found := r.objects[key]
	return found && obj.Active()
}

// Len returns the number of active entities.
func (r *Registry) Len() int { return len(r.order) }

func refKey(ref any) (string, bool) {
	switch v := ref.(type) {
	case core.Registrable:
		return v.Ident().String(), true
	case core.Ident:
		return v.String(), true
	case string:
		id, err := core.ParseIdent(v)
		if err != nil {
			return "", false
		}
		return id.String(), true
	default:
		return "", false
	}
}
