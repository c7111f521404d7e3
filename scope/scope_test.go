package scope

import "testing"

func TestTrackerEnterLeave(t *testing.T) {
	tr := New([]string{"foo"})
	if !tr.Has("foo") {
		t.Fatalf("expected base identifier in scope")
	}
	if tr.Has("bar") {
		t.Fatalf("bar should not be in scope yet")
	}

	tr.Enter("bar", "baz")
	if !tr.Has("bar") || !tr.Has("baz") {
		t.Fatalf("expected block params in scope after Enter")
	}

	tr.Leave()
	if tr.Has("bar") {
		t.Fatalf("bar should fall out of scope after Leave")
	}
	if !tr.Has("foo") {
		t.Fatalf("base identifiers must survive Leave")
	}
}

func TestTrackerLeaveNeverDropsBase(t *testing.T) {
	tr := New([]string{"foo"})
	tr.Leave()
	tr.Leave()
	if !tr.Has("foo") {
		t.Fatalf("excess Leave calls must not remove the base frame")
	}
	if tr.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", tr.Depth())
	}
}

func TestTrackerNestedFrames(t *testing.T) {
	tr := New(nil)
	tr.Enter("a")
	tr.Enter("b")
	if !tr.Has("a") || !tr.Has("b") {
		t.Fatalf("expected both nested frames visible")
	}
	tr.Leave()
	if tr.Has("b") {
		t.Fatalf("b should no longer be in scope")
	}
	if !tr.Has("a") {
		t.Fatalf("a should still be in scope")
	}
}
