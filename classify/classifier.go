// Package classify implements the path classifier (§4.C): resolving a
// dotted template path to one of {context-this, named-arg, local-in-scope,
// built-in-fallback} and producing the emitted expression text plus the
// origin span to attach a range-map entry to.
//
// Grounded on the teacher's action_parser.go variable classification
// (extractVariablesFromAction/emitVar, which sorts "."-prefixed vs
// "$"-prefixed vs plain tokens) and ast/render_resolver.go's dotted-path
// resolution against a known field map.
package classify

import (
	"strings"
	"unicode"

	"github.com/abiiranathan/hbs2ts/hbsast"
	"github.com/abiiranathan/hbs2ts/scope"
)

// Kind identifies which of §4.C's four cases a path resolved to.
type Kind int

const (
	KindThis Kind = iota
	KindNamedArg
	KindLocal
	KindBuiltinFallback
)

// Result is the classifier's output: the emitted expression text for the
// full path, the origin span of the head segment (for range mapping), and
// which case matched.
type Result struct {
	Kind Kind
	// Expr is the emitted expression, e.g. "Γ.this?.foo" or
	// `χ.BuiltIns["bar"]?.baz`.
	Expr string
	// HeadLoc is the origin span of the path's head segment.
	HeadLoc hbsast.Loc
	// BareReference is non-empty only for KindBuiltinFallback: the second,
	// statement-level reference (§4.C case 4) that forces the host type
	// checker to report the unknown identifier exactly once.
	BareReference string
}

// Classify resolves path against the scope tracker, per §4.C's four cases
// in order.
func Classify(path *hbsast.PathExpression, tracker *scope.Tracker) Result {
	switch {
	case path.Head == "this":
		return Result{
			Kind:    KindThis,
			Expr:    "Γ.this" + tail(path.Tail),
			HeadLoc: path.HeadLoc,
		}
	case strings.HasPrefix(path.Head, "@"):
		name := strings.TrimPrefix(path.Head, "@")
		return Result{
			Kind:    KindNamedArg,
			Expr:    "Γ.args." + name + tail(path.Tail),
			HeadLoc: path.HeadLoc,
		}
	case tracker.Has(path.Head):
		return Result{
			Kind:    KindLocal,
			Expr:    path.Head + tail(path.Tail),
			HeadLoc: path.HeadLoc,
		}
	default:
		expr := builtinLookup(path.Head) + tail(path.Tail)
		return Result{
			Kind:          KindBuiltinFallback,
			Expr:          expr,
			HeadLoc:       path.HeadLoc,
			BareReference: builtinLookup(path.Head) + ";",
		}
	}
}

// ForceBuiltinFallback classifies path as case 4 unconditionally, bypassing
// the scope lookup in case 3. Grounded on §9 open question (a): "{{else
// name as |p|}}"'s callee resolution routes through built-in fallback
// regardless of whether name is an in-scope block param; this is the
// dedicated entry point for that one call site, so the ordinary Classify
// never needs a bypass flag threaded through its normal callers.
func ForceBuiltinFallback(path *hbsast.PathExpression) Result {
	return Result{
		Kind:          KindBuiltinFallback,
		Expr:          builtinLookup(path.Head) + tail(path.Tail),
		HeadLoc:       path.HeadLoc,
		BareReference: builtinLookup(path.Head) + ";",
	}
}

func builtinLookup(name string) string {
	return `χ.BuiltIns["` + name + `"]`
}

// tail emits the optional-chained tail segments. The head itself is never
// chained (§9: "a missing first segment should be a hard error"); every
// segment after it is template-path-null-safe by convention, so each one
// gets an optional-chain access.
func tail(segs []string) string {
	var b strings.Builder
	for _, s := range segs {
		if isValidIdentifier(s) {
			b.WriteString("?.")
			b.WriteString(s)
		} else {
			b.WriteString(`?.["`)
			b.WriteString(s)
			b.WriteString(`"]`)
		}
	}
	return b.String()
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' && r != '$' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}
