package emit

import (
	"strings"

	"github.com/abiiranathan/hbs2ts/classify"
	"github.com/abiiranathan/hbs2ts/hbsast"
)

// Special form names recognized by name (§4.D); these never route through
// resolve/resolveOrReturn.
const (
	formIf    = "if"
	formArray = "array"
	formHash  = "hash"
)

// IsSpecialForm reports whether head names one of §4.D's special forms.
func IsSpecialForm(head string) bool {
	switch head {
	case formIf, formArray, formHash:
		return true
	default:
		return false
	}
}

// emitLiteral emits one of §3's five literal kinds verbatim; literals map
// one-to-one with no classifier involvement.
func emitLiteral(expr hbsast.Expression) string {
	switch n := expr.(type) {
	case *hbsast.StringLiteral:
		return `"` + strings.ReplaceAll(n.Value, `"`, `\"`) + `"`
	case *hbsast.NumberLiteral:
		return n.Value
	case *hbsast.BooleanLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *hbsast.NullLiteral:
		return "null"
	case *hbsast.UndefinedLiteral:
		return "undefined"
	default:
		return ""
	}
}

func isLiteral(expr hbsast.Expression) bool {
	switch expr.(type) {
	case *hbsast.StringLiteral, *hbsast.NumberLiteral, *hbsast.BooleanLiteral, *hbsast.NullLiteral, *hbsast.UndefinedLiteral:
		return true
	default:
		return false
	}
}

// emitPathExpr runs path through the classifier and writes its emitted form
// mapped to the head's origin span, queuing a bare reference for built-in
// fallbacks (§4.C case 4).
func (ctx *Context) emitPathExpr(path *hbsast.PathExpression) {
	res := classify.Classify(path, ctx.Scope)
	ctx.B.EmitMapped(res.Expr, res.HeadLoc)
	if res.Kind == classify.KindBuiltinFallback {
		ctx.queueBareRef(res.BareReference)
	}
}

// classifyPathExpr runs path through the classifier without writing
// anything, for callers (e.g. component/element tag heads) that need to
// inspect or defer the result.
func (ctx *Context) classifyPathExpr(path *hbsast.PathExpression) classify.Result {
	return classify.Classify(path, ctx.Scope)
}

// emitExpression emits any expression node in value position: a literal, a
// path, or a nested subexpression.
func (ctx *Context) emitExpression(expr hbsast.Expression) {
	switch n := expr.(type) {
	case *hbsast.PathExpression:
		ctx.emitPathExpr(n)
	case *hbsast.SubExpression:
		ctx.emitSubExpression(n)
	default:
		if isLiteral(expr) {
			ctx.B.EmitMapped(emitLiteral(expr), expr.Location())
		}
	}
}

// emitHashObject emits `{ k: v, ... }` in hash-pair source order, always
// emitting the braces even when empty (§4.D: "always emitted, even when
// empty").
func (ctx *Context) emitHashObject(hash []hbsast.HashPair) {
	if len(hash) == 0 {
		ctx.B.Emit("{}")
		return
	}
	ctx.B.Emit("{ ")
	for _, hp := range hash {
		ctx.B.Emit(hp.Key + ": ")
		ctx.emitExpression(hp.Value)
		ctx.B.Emit(", ")
	}
	ctx.B.Emit("}")
}

// emitArgPack emits `(CALLEE)( {named...}, pos0, pos1, ... )`'s argument
// list — everything after the resolved callee — per §4.D's argument
// packing convention.
func (ctx *Context) emitArgPack(params []hbsast.Expression, hash []hbsast.HashPair) {
	ctx.B.Emit("(")
	ctx.emitHashObject(hash)
	for _, p := range params {
		ctx.B.Emit(", ")
		ctx.emitExpression(p)
	}
	ctx.B.Emit(")")
}

// emitSubExpression emits a `(path args... hash...)` subexpression, always
// via resolve, never resolveOrReturn (§4.D).
func (ctx *Context) emitSubExpression(sub *hbsast.SubExpression) {
	if IsSpecialForm(sub.Path.Head) {
		ctx.emitSpecialForm(sub.Path, sub.Params, sub.Hash, sub.Loc)
		return
	}
	ctx.B.Emit("resolve(")
	ctx.emitPathExpr(sub.Path)
	ctx.B.Emit(")")
	ctx.emitArgPack(sub.Params, sub.Hash)
}

// emitSpecialForm emits one of §4.D's three special forms, recording the
// invariant diagnostics their constraints call for. loc is the enclosing
// mustache/subexpression's span, used for diagnostics that aren't better
// anchored to a single param.
func (ctx *Context) emitSpecialForm(path *hbsast.PathExpression, params []hbsast.Expression, hash []hbsast.HashPair, loc hbsast.Loc) {
	switch path.Head {
	case formIf:
		ctx.emitIfExpr(params, loc)
	case formArray:
		if len(hash) > 0 {
			ctx.addDiagnostic(diag(loc, msgArrayNamed))
		}
		ctx.B.Emit("[")
		for i, p := range params {
			if i > 0 {
				ctx.B.Emit(", ")
			}
			ctx.emitExpression(p)
		}
		ctx.B.Emit("]")
	case formHash:
		if len(params) > 0 {
			ctx.addDiagnostic(diag(loc, msgHashPos))
		}
		ctx.B.Emit("(")
		ctx.emitHashObject(hash)
		ctx.B.Emit(")")
	}
}

// emitIfExpr emits `(cond) ? (then) : (else)` for the inline/subexpression
// `if` form (§4.D). Block `if` (§4.E's {{#if}}) is handled separately by
// emitIfBlock since it has a different param-count constraint (E-IF-FEW
// applies here; E-IF-BLOCK-COND applies there).
func (ctx *Context) emitIfExpr(params []hbsast.Expression, loc hbsast.Loc) {
	if len(params) < 2 {
		ctx.addDiagnostic(diag(loc, msgIfFew))
	}
	ctx.B.Emit("(")
	if len(params) > 0 {
		ctx.emitExpression(params[0])
	}
	ctx.B.Emit(") ? (")
	if len(params) > 1 {
		ctx.emitExpression(params[1])
	}
	ctx.B.Emit(") : (")
	if len(params) > 2 {
		ctx.emitExpression(params[2])
	} else {
		ctx.B.Emit("undefined")
	}
	ctx.B.Emit(")")
}

// emitResolvedCall emits `resolve(CALLEE)(args)` or, for a zero-argument
// inline mustache, `resolveOrReturn(CALLEE)(args)` (§4.D: "so it could be a
// plain value"). Special-form callees bypass resolve entirely and are
// handled by the caller before emitResolvedCall is reached.
func (ctx *Context) emitResolvedCall(path *hbsast.PathExpression, params []hbsast.Expression, hash []hbsast.HashPair, inline bool) {
	fn := "resolve"
	if inline && len(params) == 0 && len(hash) == 0 {
		fn = "resolveOrReturn"
	}
	ctx.B.Emit(fn + "(")
	ctx.emitPathExpr(path)
	ctx.B.Emit(")")
	ctx.emitArgPack(params, hash)
}

// EmitMustacheExpr emits an inline mustache's value expression. Special
// forms (§4.D) are emitted raw, bypassing resolve/invokeInline entirely
// (§8 scenarios 1 and 4 show `{{if ...}}`/`{{hash ...}}` with no
// invokeInline wrapper); every other callee is wrapped in invokeInline(...).
// It does not write the trailing `;` or newline — callers in the statement
// emitter own statement framing.
func (ctx *Context) EmitMustacheExpr(m *hbsast.MustacheStatement) {
	if IsSpecialForm(m.Path.Head) {
		ctx.emitSpecialForm(m.Path, m.Params, m.Hash, m.Loc)
		return
	}
	ctx.B.Emit("invokeInline(")
	ctx.emitResolvedCall(m.Path, m.Params, m.Hash, true)
	ctx.B.Emit(")")
}
