package core

import (
	"errors"
	"testing"
)

func mkEntity(t *testing.T, kind, raw string) *Entity {
	t.Helper()
	e, err := NewEntity(kind, raw)
	if err != nil {
		t.Fatalf("NewEntity(%q, %q): %v", kind, raw, err)
	}
	return &e
}

func TestFlatten_SingleAndNested(t *testing.T) {
	a := mkEntity(t, "thing", "a")
	b := mkEntity(t, "thing", "b")
	c := mkEntity(t, "thing", "c")
	d := mkEntity(t, "thing", "d")

	out, err := Flatten(a, []Registrable{b}, []any{[]any{c, d}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 entities, got %d", len(out))
	}
	want := []string{"thing.a", "thing.b", "thing.c", "thing.d"}
	for i, r := range out {
		if r.Ident().String() != want[i] {
			t.Fatalf("order not preserved: %v", out)
		}
	}
}

func TestFlatten_TypeMismatch(t *testing.T) {
	a := mkEntity(t, "thing", "a")
	for _, bad := range []any{42, "thing.a", nil, []any{a, 42}} {
		_, err := Flatten(bad)
		if err == nil {
			t.Fatalf("expected type mismatch for %#v", bad)
		}
		var tm *TypeMismatchError
		if !errors.As(err, &tm) {
			t.Fatalf("expected TypeMismatchError, got %T", err)
		}
	}
}

func TestFlatten_Empty(t *testing.T) {
	out, err := Flatten()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}
