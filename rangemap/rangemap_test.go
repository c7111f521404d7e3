package rangemap

import (
	"testing"

	"github.com/abiiranathan/hbs2ts/hbsast"
	"github.com/google/go-cmp/cmp"
)

func TestBuilderRoundTrip(t *testing.T) {
	b := New()
	b.Emit("const x = ")
	b.EmitMapped("foo", hbsast.Loc{Start: 2, End: 5})
	b.Emit(";\n")
	code, rm := b.Finish()

	const want = "const x = foo;\n"
	if code != want {
		t.Fatalf("code = %q, want %q", code, want)
	}

	emit, ok := rm.OriginalToEmitted(3)
	if !ok || emit != 11 {
		t.Fatalf("OriginalToEmitted(3) = (%d, %v), want (11, true)", emit, ok)
	}
	orig, ok := rm.EmittedToOriginal(12)
	if !ok || orig != 4 {
		t.Fatalf("EmittedToOriginal(12) = (%d, %v), want (4, true)", orig, ok)
	}

	if _, ok := rm.OriginalToEmitted(0); ok {
		t.Fatalf("OriginalToEmitted(0) should fall in a gap")
	}
}

func TestRangeMapEntriesSortedByOrigin(t *testing.T) {
	b := New()
	b.EmitMapped("b", hbsast.Loc{Start: 5, End: 6})
	b.EmitMapped("a", hbsast.Loc{Start: 1, End: 2})
	_, rm := b.Finish()

	got := rm.Entries()
	want := []Correspondence{
		{Orig: hbsast.Loc{Start: 1, End: 2}, Emit: hbsast.Loc{Start: 1, End: 2}},
		{Orig: hbsast.Loc{Start: 5, End: 6}, Emit: hbsast.Loc{Start: 0, End: 1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitIndented(t *testing.T) {
	b := New()
	b.PushIndent()
	b.EmitIndented("a\nb")
	b.PopIndent()
	got := b.String()
	want := "  a\n  b"
	if got != want {
		t.Fatalf("EmitIndented = %q, want %q", got, want)
	}
}
