package core

import (
	"fmt"
	"strings"
)

// Ident is a namespaced identity: the concrete kind of an entity plus the raw
// id supplied by the caller. Two entities of different kinds never collide
// even when they share a raw id, while entities of the same kind must supply
// distinct raw ids. The qualified form used as a registry key is "Kind.raw".
type Ident struct {
	Kind string
	Raw  string
}

// NewIdent builds an Ident from a kind and a raw id. The kind must be a
// non-empty token without a dot; the raw id must be non-empty. Raw ids may
// themselves contain dots.
func NewIdent(kind, raw string) (Ident, error) {
	if strings.TrimSpace(kind) == "" {
		return Ident{}, &ValidationError{Field: "kind", Value: kind, Message: "must be a non-empty string"}
	}
	if strings.Contains(kind, ".") {
		return Ident{}, &ValidationError{Field: "kind", Value: kind, Message: "must not contain '.'"}
	}
	if strings.TrimSpace(raw) == "" {
		return Ident{}, &ValidationError{Field: "id", Value: raw, Message: "must be a non-empty string"}
	}
	return Ident{Kind: kind, Raw: raw}, nil
}

// MustIdent is like NewIdent but panics on invalid input. Intended for
// package-level fixtures and examples where the input is a literal.
func MustIdent(kind, raw string) Ident {
	id, err := NewIdent(kind, raw)
	if err != nil {
		panic(fmt.Sprintf("core: invalid ident %q/%q: %v", kind, raw, err))
	}
	return id
}

// ParseIdent splits a qualified id of the form "Kind.raw" back into an Ident.
func ParseIdent(s string) (Ident, error) {
	kind, raw, ok := strings.Cut(s, ".")
	if !ok {
		return Ident{}, &ValidationError{Field: "id", Value: s, Message: "must be a qualified id of the form 'Kind.raw'"}
	}
	return NewIdent(kind, raw)
}

// String returns the qualified id "Kind.raw".
func (i Ident) String() string { return i.Kind + "." + i.Raw }

// IsZero reports whether the ident is the zero value.
func (i Ident) IsZero() bool { return i.Kind == "" && i.Raw == "" }
