package core

import (
	"errors"
	"testing"
)

func TestNewIdent_Qualifies(t *testing.T) {
	id, err := NewIdent("House", "h1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "House.h1" {
		t.Fatalf("expected qualified id 'House.h1', got %q", id.String())
	}
}

func TestNewIdent_Invalid(t *testing.T) {
	cases := []struct{ kind, raw string }{
		{"", "h1"},
		{"  ", "h1"},
		{"House", ""},
		{"House", "   "},
		{"My.House", "h1"},
	}
	for _, c := range cases {
		if _, err := NewIdent(c.kind, c.raw); err == nil {
			t.Fatalf("expected error for kind=%q raw=%q", c.kind, c.raw)
		} else {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
		}
	}
}

func TestParseIdent_RoundTrip(t *testing.T) {
	id, err := ParseIdent("HeatingSystem.hs.central.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Kind != "HeatingSystem" || id.Raw != "hs.central.1" {
		t.Fatalf("unexpected split: %#v", id)
	}
	if _, err := ParseIdent("unqualified"); err == nil {
		t.Fatal("expected error for unqualified id")
	}
}

func TestIdent_IsZero(t *testing.T) {
	var zero Ident
	if !zero.IsZero() {
		t.Fatal("zero ident should report IsZero")
	}
	if MustIdent("A", "1").IsZero() {
		t.Fatal("non-zero ident reported IsZero")
	}
}
