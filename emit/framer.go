package emit

import (
	"github.com/abiiranathan/hbs2ts/hbsast"
	"github.com/abiiranathan/hbs2ts/rangemap"
)

// defaultContextType is substituted for TransformOptions.contextType when
// the caller doesn't supply one (§4.F).
const defaultContextType = "unknown"

// FrameOptions carries the substitutions the fixed boilerplate (§4.F)
// takes: TransformOptions' typeParams/contextType/preamble fields, plus the
// runtime module specifier (a fixed constant of the transform, but kept
// overridable here so tests can point it at a fixture module without
// importing the real one).
type FrameOptions struct {
	TypeParams    string
	ContextType   string
	Preamble      []string
	RuntimeModule string
}

// Frame is the template framer (§4.F) and the transform's top-level entry
// point (§2: "F is the top-level entry"): it drives the statement emitter
// over tmpl.Body inside the fixed self-invoking-function boilerplate and
// returns the finished code, its range map, and every diagnostic collected
// along the way.
func Frame(tmpl *hbsast.Template, scopeBase []string, opts FrameOptions) (string, *rangemap.RangeMap, []Diagnostic) {
	ctx := NewContext(scopeBase)
	b := ctx.B

	runtimeModule := opts.RuntimeModule
	if runtimeModule == "" {
		runtimeModule = RuntimeModule
	}
	contextType := opts.ContextType
	if contextType == "" {
		contextType = defaultContextType
	}

	b.Emit("(() => {\n")
	b.PushIndent()
	for _, line := range opts.Preamble {
		b.BeginLine()
		b.Emit(line)
		b.Emit("\n")
	}
	b.BeginLine()
	b.Emit(`let χ!: typeof import("` + runtimeModule + `");` + "\n")
	b.BeginLine()
	b.Emit("return χ.template(function*")
	if opts.TypeParams != "" {
		b.Emit(opts.TypeParams)
	}
	b.Emit(`(Γ: import("` + runtimeModule + `").ResolveContext<` + contextType + ">) {\n")
	b.PushIndent()
	b.BeginLine()
	b.Emit("Γ;\n")
	ctx.EmitStatements(tmpl.Body)
	b.PopIndent()
	b.BeginLine()
	b.Emit("});\n")
	b.PopIndent()
	b.BeginLine()
	b.Emit("})()")

	code, rm := b.Finish()
	return code, rm, ctx.Diagnostics()
}
