package core

import "testing"

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be replaced with a non-zero state")
	}
}

func TestRandRange(t *testing.T) {
	r := NewSimpleRNG(7)
	seen := make(map[int]bool)

	for i := 0; i < 500; i++ {
		v := RandRange(r, 2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("RandRange(2, 4) = %d, out of range", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 4; v++ {
		if !seen[v] {
			t.Errorf("RandRange(2, 4) never produced %d", v)
		}
	}

	if got := RandRange(r, 5, 5); got != 5 {
		t.Errorf("RandRange(5, 5) = %d, expected 5", got)
	}
	if got := RandRange(r, 9, 3); got != 9 {
		t.Errorf("RandRange on empty range = %d, expected lo", got)
	}
}

func TestRandUniform(t *testing.T) {
	r := NewSimpleRNG(99)
	for i := 0; i < 500; i++ {
		v := RandUniform(r, -20, 20)
		if v < -20 || v >= 20 {
			t.Fatalf("RandUniform(-20, 20) = %f, out of range", v)
		}
	}
}

func TestInputFrameEdgesAndHolds(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionLeft)

	if !f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Has should only report edges")
	}
	if !f.IsHeld(ActionLeft) || f.IsHeld(ActionJump) {
		t.Error("IsHeld should only report held keys")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionJump) || f.IsHeld(ActionLeft) {
		t.Error("Clear should drop edges and holds")
	}
	if !c.Has(ActionJump) || !c.IsHeld(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionJump) || zero.IsHeld(ActionJump) {
		t.Error("zero frame should report nothing")
	}
}

func TestActionNotes(t *testing.T) {
	for i := 0; i < 7; i++ {
		a := NoteAction(i)
		n, ok := a.Note()
		if !ok || n != i {
			t.Errorf("NoteAction(%d).Note() = (%d, %v)", i, n, ok)
		}
	}
	if _, ok := ActionJump.Note(); ok {
		t.Error("Jump is not a note")
	}
	if ActionNote3.String() != "Note3" {
		t.Errorf("ActionNote3.String() = %q", ActionNote3.String())
	}
}
