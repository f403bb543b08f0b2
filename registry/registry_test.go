package registry

import (
	"errors"
	"testing"

	"github.com/simweave/simweave/core"
	"github.com/simweave/simweave/internal/testutil"
)

func TestAdd_DuplicateRawIDSameKind(t *testing.T) {
	r := New()
	if err := r.Add(testutil.NewStubAsset("obj1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Add(testutil.NewStubAsset("obj1"))
	var dup *core.DuplicateIdentError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIdentError, got %v", err)
	}
}

func TestAdd_SameRawIDDifferentKind(t *testing.T) {
	r := New()
	asset := testutil.NewStubAsset("shared")
	agent := testutil.NewFuncAgent("shared")
	if err := r.Add(asset, agent); err != nil {
		t.Fatalf("different kinds with one raw id must not collide: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Len())
	}
}

func TestAdd_MissingDependency(t *testing.T) {
	r := New()
	dependent := testutil.NewStubAsset("house1", core.MustIdent("StubAsset", "heating1"))

	err := r.Add(dependent)
	var missing *core.MissingDependencyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingDependencyError, got %v", err)
	}
	if r.Contains(dependent) {
		t.Fatal("failed add must not leave the dependent registered")
	}

	// Referenced object first, then the dependent.
	if err := r.Add(testutil.NewStubAsset("heating1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(dependent); err != nil {
		t.Fatalf("dependency satisfied, add should succeed: %v", err)
	}
}

func TestAdd_IntraBatchDependency(t *testing.T) {
	r := New()
	heating := testutil.NewStubAsset("heating1")
	house := testutil.NewStubAsset("house1", heating.Ident())
	if err := r.Add([]any{heating, house}); err != nil {
		t.Fatalf("reference satisfied earlier in the same batch must pass: %v", err)
	}
}

func TestAdd_BatchAtomicity(t *testing.T) {
	r := New()
	good := testutil.NewStubAsset("good")
	bad := testutil.NewStubAsset("bad", core.MustIdent("StubAsset", "nowhere"))

	if err := r.Add(good, bad); err == nil {
		t.Fatal("expected batch failure")
	}
	if r.Contains(good) {
		t.Fatal("batch must be all-or-nothing; earlier insert leaked")
	}
	if good.Active() {
		t.Fatal("rolled back entity still flagged active")
	}
	if r.Len() != 0 {
		t.Fatalf("registry not empty after rollback: %d", r.Len())
	}
}

func TestAdd_TypeMismatch(t *testing.T) {
	r := New()
	err := r.Add("not an entity")
	var tm *core.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestDelete_FreesIDForReuse(t *testing.T) {
	r := New()
	first := testutil.NewStubAsset("obj1")
	if err := r.Add(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reuse before destruction fails.
	if err := r.Add(testutil.NewStubAsset("obj1")); err == nil {
		t.Fatal("id reuse before destruction must fail")
	}

	if err := r.Delete(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Active() {
		t.Fatal("deleted entity still active")
	}

	// Recycled id is usable by a fresh entity of the same kind.
	if err := r.Add(testutil.NewStubAsset("obj1")); err != nil {
		t.Fatalf("recycled id must be reusable: %v", err)
	}
}

func TestDelete_NonMemberIsNoOp(t *testing.T) {
	r := New()
	if err := r.Delete(testutil.NewStubAsset("ghost")); err != nil {
		t.Fatalf("deleting a non-member must be a no-op, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := New()
	_, err := r.Get(core.MustIdent("StubAsset", "absent"))
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	r := New()
	a := testutil.NewStubAsset("a")
	b := testutil.NewFuncAgent("b")
	c := testutil.NewStubAsset("c")
	if err := r.Add(a, b, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := r.List("")
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	want := []string{"StubAsset.a", "FuncAgent.b", "StubAsset.c"}
	for i, obj := range all {
		if obj.Ident().String() != want[i] {
			t.Fatalf("insertion order broken: got %v at %d", obj.Ident(), i)
		}
	}

	assets := r.List("StubAsset")
	if len(assets) != 2 || assets[0] != core.Registrable(a) || assets[1] != core.Registrable(c) {
		t.Fatalf("kind filter broken: %v", assets)
	}

	// Order survives deletion of a middle element.
	if err := r.Delete(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all = r.List("")
	if len(all) != 2 || all[0].Ident().Raw != "a" || all[1].Ident().Raw != "c" {
		t.Fatalf("order after delete broken: %v", all)
	}
}

func TestContains_BothForms(t *testing.T) {
	r := New()
	a := testutil.NewStubAsset("a")
	if err := r.Add(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(a) {
		t.Fatal("Contains(object) failed")
	}
	if !r.Contains(a.Ident()) {
		t.Fatal("Contains(ident) failed")
	}
	if !r.Contains("StubAsset.a") {
		t.Fatal("Contains(qualified string) failed")
	}
	if r.Contains("unqualified") {
		t.Fatal("unqualified string must not match")
	}
	if r.Contains(42) {
		t.Fatal("unsupported reference type must report false")
	}
}
