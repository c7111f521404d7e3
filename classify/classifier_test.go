package classify

import (
	"testing"

	"github.com/abiiranathan/hbs2ts/hbsast"
	"github.com/abiiranathan/hbs2ts/scope"
)

func path(head string, tail ...string) *hbsast.PathExpression {
	return &hbsast.PathExpression{Head: head, Tail: tail}
}

func TestClassifyThis(t *testing.T) {
	r := Classify(path("this", "foo"), scope.New(nil))
	if r.Kind != KindThis || r.Expr != "Γ.this?.foo" {
		t.Fatalf("got %+v", r)
	}
}

func TestClassifyNamedArg(t *testing.T) {
	r := Classify(path("@foo"), scope.New(nil))
	if r.Kind != KindNamedArg || r.Expr != "Γ.args.foo" {
		t.Fatalf("got %+v", r)
	}
}

func TestClassifyLocalWithHyphenatedTail(t *testing.T) {
	tr := scope.New([]string{"obj"})
	r := Classify(path("obj", "foo-bar", "baz"), tr)
	want := `obj?.["foo-bar"]?.baz`
	if r.Kind != KindLocal || r.Expr != want {
		t.Fatalf("got %+v, want Expr=%q", r, want)
	}
}

func TestClassifyBuiltinFallback(t *testing.T) {
	r := Classify(path("unknownThing"), scope.New(nil))
	if r.Kind != KindBuiltinFallback {
		t.Fatalf("got %+v", r)
	}
	wantExpr := `χ.BuiltIns["unknownThing"]`
	if r.Expr != wantExpr {
		t.Fatalf("Expr = %q, want %q", r.Expr, wantExpr)
	}
	if r.BareReference != wantExpr+";" {
		t.Fatalf("BareReference = %q, want %q", r.BareReference, wantExpr+";")
	}
}
