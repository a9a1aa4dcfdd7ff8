package jon_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/jonfmt/jon"
)

func TestAccessorsTypeMismatchPanics(t *testing.T) {
	v := jon.NewInt(3)
	mtest.MustPanic(t, func() { v.Bool() })
}

func TestTryAccessorsReturnError(t *testing.T) {
	v := jon.NewString("x")
	if _, err := v.TryInt(); err == nil {
		t.Fatal("TryInt: expected an error for a String value")
	}
	s, err := v.TryString()
	if err != nil || s != "x" {
		t.Fatalf("TryString: got (%q, %v), want (%q, nil)", s, err, "x")
	}
}

func TestObjectSetAndAt(t *testing.T) {
	var v jon.Value
	v.Set("a", jon.NewInt(1))
	v.Set("b", jon.NewInt(2))
	got, err := v.At("a")
	if err != nil || got.Int() != 1 {
		t.Fatalf("At(a): got (%v, %v), want (1, nil)", got, err)
	}
	if _, err := v.At("missing"); err == nil {
		t.Fatal("At(missing): expected *jon.OutOfRange")
	}
}

func TestArrayPushAndAtIndex(t *testing.T) {
	var v jon.Value
	if err := v.Push(jon.NewInt(1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := v.Push(jon.NewInt(2)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	got, err := v.AtIndex(1)
	if err != nil || got.Int() != 2 {
		t.Fatalf("AtIndex(1): got (%v, %v), want (2, nil)", got, err)
	}
	if _, err := v.AtIndex(5); err == nil {
		t.Fatal("AtIndex(5): expected *jon.OutOfRange")
	}
}

func TestObjectIndexedByPosition(t *testing.T) {
	obj := jon.NewObject(jon.Pair{Key: "0", Value: jon.NewString("first")})
	got, err := obj.AtIndex(0)
	if err != nil || got.String() != "first" {
		t.Fatalf("AtIndex(0) on Object: got (%v, %v), want (first, nil)", got, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := jon.NewObject(jon.Pair{Key: "k", Value: jon.NewInt(1)})
	clone := orig.Clone()
	clone.Set("k", jon.NewInt(2))
	v, _ := orig.At("k")
	if v.Int() != 1 {
		t.Errorf("mutating a clone affected the original: got %d, want 1", v.Int())
	}
}

func TestEqualFloatEpsilon(t *testing.T) {
	a := jon.NewFloat(1.0)
	b := jon.NewFloat(1.0 + 1e-18)
	if !a.Equal(b) {
		t.Error("Equal: expected floats within epsilon to compare equal")
	}
	c := jon.NewFloat(1.1)
	if a.Equal(c) {
		t.Error("Equal: expected distinguishable floats to compare unequal")
	}
}

func TestEqualObjectOrderIndependent(t *testing.T) {
	a := jon.NewObject(jon.Pair{Key: "x", Value: jon.NewInt(1)}, jon.Pair{Key: "y", Value: jon.NewInt(2)})
	b := jon.NewObject(jon.Pair{Key: "y", Value: jon.NewInt(2)}, jon.Pair{Key: "x", Value: jon.NewInt(1)})
	if !a.Equal(b) {
		t.Error("Equal: object equality should not depend on member order")
	}
}

func TestNewInitializerListHeuristic(t *testing.T) {
	v := jon.New([]any{
		[]any{"a", 1},
		[]any{"b", 2},
	})
	if v.Type() != jon.KindObject {
		t.Fatalf("New: got Type()=%s, want object", v.Type())
	}
	bv, err := v.At("b")
	if err != nil || bv.Int() != 2 {
		t.Fatalf("At(b): got (%v, %v), want (2, nil)", bv, err)
	}

	arr := jon.New([]any{1, 2, 3})
	if arr.Type() != jon.KindArray {
		t.Fatalf("New: got Type()=%s, want array", arr.Type())
	}
}

func TestSizeAndEmpty(t *testing.T) {
	if !jon.Null.Empty() {
		t.Error("Null.Empty(): want true")
	}
	s := jon.NewString("hello")
	if s.Size() != 5 {
		t.Errorf("String.Size(): got %d, want 5", s.Size())
	}
	if jon.NewInt(0).Size() != 1 {
		t.Error("Int.Size(): want 1 for any scalar")
	}
}
