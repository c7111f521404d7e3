package transform

import (
	"sort"

	"github.com/abiiranathan/hbs2ts/emit"
	"github.com/abiiranathan/hbs2ts/hbsast"
)

// Location is an absolute byte-offset span, mirroring hbsast.Loc in the
// module's public result types so callers of Transform don't need to
// import the parser-oracle package just to read an error's span.
type Location struct {
	Start int
	End   int
}

// Directive is one entry of §3's RangeMap made concrete for the result
// record: an emitted-code span plus the kind of token it covers. Every
// entry in the current implementation covers an identifier or literal
// token (§8 property 4); Kind is carried for forward compatibility with a
// host type checker that might someday want to distinguish token kinds,
// but is always "token" today.
type Directive struct {
	Start int
	End   int
	Kind  string
}

const directiveKindToken = "token"

// Result is §3's TransformResult.result field.
type Result struct {
	Code       string
	Directives []Directive
	rangeMap   rangeMapAccessor
}

// OriginalToEmitted and EmittedToOriginal expose the underlying range map's
// bidirectional query without forcing callers to hold onto the rangemap
// package's own type.
func (r *Result) OriginalToEmitted(offset int) (int, bool) { return r.rangeMap.OriginalToEmitted(offset) }
func (r *Result) EmittedToOriginal(offset int) (int, bool) { return r.rangeMap.EmittedToOriginal(offset) }

type rangeMapAccessor interface {
	OriginalToEmitted(int) (int, bool)
	EmittedToOriginal(int) (int, bool)
}

// ResultError is one entry of §3's TransformResult.errors.
type ResultError struct {
	Message  string
	Location Location
	Severity string
}

// TransformResult is §3's TransformResult: Result is present iff no fatal
// (non-local) error occurred; Errors is always populated when there were
// any, ordered by Location.Start ascending (§8 property 2).
type TransformResult struct {
	Result *Result
	Errors []ResultError
}

// Transform is templateToTypescript(source, options) (§6): it parses
// source through the hbsast oracle, then drives the framer (which in turn
// drives the statement/expression emitters and invariant checker) to
// produce a TransformResult.
func Transform(source string, opts TransformOptions) TransformResult {
	norm, err := opts.normalize()
	if err != nil {
		return TransformResult{Errors: []ResultError{{
			Message:  err.Error(),
			Location: Location{0, 0},
			Severity: "error",
		}}}
	}

	tmpl, err := hbsast.Parse(source)
	if err != nil {
		// A parse failure from the AST oracle is not a template-semantic
		// diagnostic with a useful span; §3 allows omitting result when the
		// transform "cannot produce a syntactically valid emission" — true
		// here since there is no tree to walk at all.
		return TransformResult{Errors: []ResultError{{
			Message:  err.Error(),
			Location: Location{0, len(source)},
			Severity: "error",
		}}}
	}

	frameOpts := emit.FrameOptions{
		TypeParams:  norm.TypeParams,
		ContextType: norm.ContextType,
		Preamble:    norm.Preamble,
	}
	code, rm, diags := emit.Frame(tmpl, norm.IdentifiersInScope, frameOpts)

	errs := make([]ResultError, len(diags))
	for i, d := range diags {
		errs[i] = ResultError{
			Message:  d.Message,
			Location: Location{d.Location.Start, d.Location.End},
			Severity: d.Severity,
		}
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Location.Start < errs[j].Location.Start })

	entries := rm.Entries()
	directives := make([]Directive, 0, len(entries))
	for _, c := range entries {
		directives = append(directives, Directive{Start: c.Emit.Start, End: c.Emit.End, Kind: directiveKindToken})
	}

	return TransformResult{
		Result: &Result{Code: code, Directives: directives, rangeMap: rm},
		Errors: errs,
	}
}
