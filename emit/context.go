package emit

import (
	"sort"

	"github.com/abiiranathan/hbs2ts/rangemap"
	"github.com/abiiranathan/hbs2ts/scope"
)

// RuntimeModule is the fixed ambient runtime surface's module specifier
// (§4.F, §6): the transform never parameterizes this, it is a published
// constant of the toolchain.
const RuntimeModule = "@component-runtime/resolve"

// Context threads the range-mapped text builder, scope tracker, and
// collected diagnostics through the statement/expression emitters
// (Components D, E, F) and the invariant checker (Component G), which is
// "invoked inline by D and E" per §2 rather than run as a separate pass.
type Context struct {
	B     *rangemap.Builder
	Scope *scope.Tracker

	diagnostics     []Diagnostic
	pendingBareRefs []string
}

// NewContext returns a Context with a fresh Builder and a Scope seeded with
// base (TransformOptions.identifiersInScope).
func NewContext(base []string) *Context {
	return &Context{
		B:     rangemap.New(),
		Scope: scope.New(base),
	}
}

func (ctx *Context) addDiagnostic(d Diagnostic) {
	ctx.diagnostics = append(ctx.diagnostics, d)
}

// Diagnostics returns every diagnostic collected so far, ordered by
// location.start ascending (§3, testable property 2).
func (ctx *Context) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(ctx.diagnostics))
	copy(out, ctx.diagnostics)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Location.Start < out[j].Location.Start })
	return out
}

// queueBareRef records a built-in-fallback bare reference (§4.C case 4) to
// be flushed once the enclosing statement finishes emitting.
func (ctx *Context) queueBareRef(ref string) {
	ctx.pendingBareRefs = append(ctx.pendingBareRefs, ref)
}

// flushBareRefs emits every pending bare reference, one per line, and
// clears the queue. Each statement emitter calls it once its statement is
// complete; EmitStatements holds back references queued by an enclosing
// statement so nested statements do not flush them.
func (ctx *Context) flushBareRefs() {
	for _, ref := range ctx.pendingBareRefs {
		ctx.B.BeginLine()
		ctx.B.Emit(ref)
		ctx.B.Emit("\n")
	}
	ctx.pendingBareRefs = nil
}
