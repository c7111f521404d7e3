package emit

import (
	"strings"

	"github.com/abiiranathan/hbs2ts/classify"
	"github.com/abiiranathan/hbs2ts/hbsast"
)

// EmitStatements is the statement emitter's top-level entry point (§4.E):
// it walks stmts in source order, writing each one's emission (if any) and
// flushing any built-in-fallback bare references queued along the way.
func (ctx *Context) EmitStatements(stmts []hbsast.Statement) {
	// References already queued belong to the statement enclosing this
	// body; hold them back so they are flushed after that statement rather
	// than by the first statement nested inside it.
	outer := ctx.pendingBareRefs
	ctx.pendingBareRefs = nil
	for _, s := range stmts {
		ctx.emitStatement(s)
	}
	ctx.pendingBareRefs = append(outer, ctx.pendingBareRefs...)
}

func (ctx *Context) emitStatement(s hbsast.Statement) {
	switch n := s.(type) {
	case *hbsast.TextNode:
		// Literal template text carries nothing to type-check.
	case *hbsast.MustacheStatement:
		if n.Path.Head == "yield" {
			ctx.emitYieldStatement(n)
			return
		}
		ctx.B.BeginLine()
		ctx.EmitMustacheExpr(n)
		ctx.B.Emit(";\n")
		ctx.flushBareRefs()
	case *hbsast.BlockStatement:
		if n.Path.Head == formIf {
			ctx.emitIfBlock(n)
		} else {
			ctx.emitInvokeBlock(n, false)
		}
	case *hbsast.Element:
		if strings.HasPrefix(n.Tag, ":") {
			// A named block with no enclosing component: the whole
			// surrounding body is "other content" relative to it.
			ctx.addDiagnostic(diag(n.Loc, msgMix))
			return
		}
		if n.IsComponent {
			ctx.emitComponent(n)
		} else {
			ctx.emitPlainElement(n)
		}
	}
}

// emitYieldStatement emits §4.E's {{yield}} forms. to= must be a string
// literal (E-YIELD-DYN); its absence defaults the block name to "default".
func (ctx *Context) emitYieldStatement(m *hbsast.MustacheStatement) {
	blockName := "default"
	for _, hp := range m.Hash {
		if hp.Key != "to" {
			continue
		}
		if lit, ok := hp.Value.(*hbsast.StringLiteral); ok {
			blockName = lit.Value
		} else {
			ctx.addDiagnostic(diag(hp.Value.Location(), msgYieldDyn))
		}
	}
	ctx.B.BeginLine()
	ctx.B.Emit(`yield toBlock("` + blockName + `"`)
	for _, p := range m.Params {
		ctx.B.Emit(", ")
		ctx.emitExpression(p)
	}
	ctx.B.Emit(");\n")
	ctx.flushBareRefs()
}

// emitYieldInExpressionPosition records E-YIELD-POS for a {{yield}} found
// somewhere other than top-level statement position (currently: an
// attribute value), per §4.E ("in expression position triggers
// E-YIELD-POS").
func (ctx *Context) emitYieldInExpressionPosition(m *hbsast.MustacheStatement) {
	ctx.addDiagnostic(diag(m.Loc, msgYieldPos))
}

// --- if/else chains ---

// emitIfBlock emits the block form of {{#if}} (§4.E), distinct from the
// inline/subexpression ternary form (§4.D emitIfExpr): a block if has a
// body on each branch, so it is emitted as a real if/else statement rather
// than a ternary expression.
func (ctx *Context) emitIfBlock(blk *hbsast.BlockStatement) {
	ctx.B.BeginLine()
	ctx.emitIfChain(blk)
	ctx.B.Emit("\n")
	ctx.flushBareRefs()
}

func (ctx *Context) emitIfChain(blk *hbsast.BlockStatement) {
	if len(blk.Params) != 1 {
		ctx.addDiagnostic(diag(blk.Loc, msgIfBlockCond))
	}
	ctx.B.Emit("if (")
	if len(blk.Params) > 0 {
		ctx.emitExpression(blk.Params[0])
	}
	ctx.B.Emit(") {\n")
	ctx.B.PushIndent()
	ctx.EmitStatements(blk.Program.Body)
	ctx.B.PopIndent()
	ctx.B.BeginLine()
	ctx.B.Emit("}")

	switch {
	case blk.Inverse != nil:
		ctx.B.Emit(" else {\n")
		ctx.B.PushIndent()
		ctx.EmitStatements(blk.Inverse.Body)
		ctx.B.PopIndent()
		ctx.B.BeginLine()
		ctx.B.Emit("}")
	case blk.InverseChain != nil && blk.InverseChain.Path.Head == formIf:
		ctx.B.Emit(" else ")
		ctx.emitIfChain(blk.InverseChain)
	case blk.InverseChain != nil:
		// "{{else name as |p|}}": the inverse is a block invocation of
		// name, forced through built-in fallback per §9 open question (a).
		ctx.B.Emit(" else {\n")
		ctx.B.PushIndent()
		ctx.emitInvokeBlock(blk.InverseChain, true)
		ctx.B.PopIndent()
		ctx.B.BeginLine()
		ctx.B.Emit("}")
	}
}

// --- generic block invocation ({{#helper as |a b|}}...{{/helper}}) ---

// emitInvokeBlock emits a block statement's invocation, analogous to the
// component form (§4.E). forceFallback is true only when this call is
// itself the re-nested invocation of a "{{else name as |p|}}" inverse.
func (ctx *Context) emitInvokeBlock(blk *hbsast.BlockStatement, forceFallback bool) {
	ctx.B.BeginLine()
	ctx.B.Emit("yield invokeBlock(resolve(")
	ctx.emitCalleePathExpr(blk.Path, forceFallback)
	ctx.B.Emit(")")
	ctx.emitArgPack(blk.Params, blk.Hash)
	ctx.B.Emit(", {\n")
	ctx.B.PushIndent()

	blockNames := []string{"default"}
	ctx.emitGeneratorBlock("default", blk.Program.Params, blk.Program.Body, blk.Program.Loc)

	if blk.Inverse != nil || blk.InverseChain != nil {
		blockNames = append(blockNames, "inverse")
		ctx.B.BeginLine()
		ctx.B.Emit("*inverse() {\n")
		ctx.B.PushIndent()
		switch {
		case blk.Inverse != nil:
			ctx.EmitStatements(blk.Inverse.Body)
		case blk.InverseChain.Path.Head == formIf:
			ctx.B.BeginLine()
			ctx.emitIfChain(blk.InverseChain)
			ctx.B.Emit("\n")
		default:
			ctx.emitInvokeBlock(blk.InverseChain, true)
		}
		ctx.B.PopIndent()
		ctx.B.BeginLine()
		ctx.B.Emit("},\n")
	}

	ctx.B.PopIndent()
	ctx.B.BeginLine()
	ctx.B.Emit("}")
	for _, n := range blockNames {
		ctx.B.Emit(`, "` + n + `"`)
	}
	ctx.B.Emit(");\n")
	ctx.flushBareRefs()
}

// emitCalleePathExpr emits a block/component callee, routing it through
// ordinary classification unless forceFallback requests the §9 open
// question (a) bypass.
func (ctx *Context) emitCalleePathExpr(path *hbsast.PathExpression, forceFallback bool) {
	if !forceFallback {
		ctx.emitPathExpr(path)
		return
	}
	res := classify.ForceBuiltinFallback(path)
	ctx.B.EmitMapped(res.Expr, res.HeadLoc)
	ctx.queueBareRef(res.BareReference)
}

// emitGeneratorBlock emits one `*name(...[params]) { body }` generator
// method used by both component and block-statement invocations, binding
// params into scope for body and popping the frame again before returning.
func (ctx *Context) emitGeneratorBlock(name string, params []string, body []hbsast.Statement, loc hbsast.Loc) {
	bound := ctx.enterBlockParams(params, loc)
	ctx.B.BeginLine()
	ctx.B.Emit("*" + name + "(")
	if len(bound) > 0 {
		ctx.B.Emit("...[" + strings.Join(bound, ", ") + "]")
	}
	ctx.B.Emit(") {\n")
	ctx.B.PushIndent()
	ctx.EmitStatements(body)
	ctx.B.PopIndent()
	ctx.B.BeginLine()
	ctx.B.Emit("},\n")
	ctx.Scope.Leave()
}

// --- elements / components ---

// emitComponent emits §4.E's component invocation shape. A component's
// attributes become its named-args object; its children become either one
// "default" block or, when they are all named blocks, one generator per
// named block.
func (ctx *Context) emitComponent(el *hbsast.Element) {
	ctx.B.BeginLine()
	ctx.B.Emit("yield invokeBlock(resolve(")
	ctx.emitPathExpr(hbsast.ParseTagPath(el.Tag, tagNameLoc(el)))
	ctx.B.Emit(")(")
	ctx.emitComponentPropsObject(el.Attributes)
	ctx.B.Emit(")")
	ctx.B.Emit(", {\n")
	ctx.B.PushIndent()

	var names []string
	if len(el.NamedBlocks) > 0 {
		ctx.checkNamedBlockDuplicates(el.NamedBlocks)
		for _, nb := range el.NamedBlocks {
			ctx.emitGeneratorBlock(nb.Name, nb.Params, nb.Body, nb.Loc)
			names = append(names, nb.Name)
		}
	} else {
		if hasNamedBlockChild(el.Children) {
			ctx.checkMixedNamedBlocks(el.Children)
		}
		names = []string{"default"}
		ctx.emitGeneratorBlock("default", el.BlockParams, stripNamedBlockNodes(el.Children), el.Loc)
	}

	ctx.B.PopIndent()
	ctx.B.BeginLine()
	ctx.B.Emit("}")
	for _, n := range names {
		ctx.B.Emit(`, "` + n + `"`)
	}
	ctx.B.Emit(");\n")
	ctx.flushBareRefs()
}

func tagNameLoc(el *hbsast.Element) hbsast.Loc {
	start := el.Loc.Start + 1 // past "<"
	return hbsast.Loc{Start: start, End: start + len(el.Tag)}
}

// hasNamedBlockChild reports whether any child is a named-block-shaped
// element, the precondition checkMixedNamedBlocks assumes. A component
// with no named-block children at all is ordinary default-slot content —
// mustaches, block statements, and plain elements are all unremarkable
// there and never an E-MIX violation.
func hasNamedBlockChild(children []hbsast.Statement) bool {
	for _, c := range children {
		if el, ok := c.(*hbsast.Element); ok && strings.HasPrefix(el.Tag, ":") {
			return true
		}
	}
	return false
}

func stripNamedBlockNodes(stmts []hbsast.Statement) []hbsast.Statement {
	out := make([]hbsast.Statement, 0, len(stmts))
	for _, s := range stmts {
		if el, ok := s.(*hbsast.Element); ok && strings.HasPrefix(el.Tag, ":") {
			continue
		}
		out = append(out, s)
	}
	return out
}

// emitComponentPropsObject emits a component's attribute list as the named
// props object passed to resolve(CALLEE)(...). Unlike emitHashObject, attr
// values aren't hbsast.Expression nodes (they're AttrValue: TextNode,
// MustacheStatement, or ConcatStatement), so this builds the object
// directly rather than through HashPair/emitExpression.
func (ctx *Context) emitComponentPropsObject(attrs []*hbsast.AttrNode) {
	if len(attrs) == 0 {
		ctx.B.Emit("{}")
		return
	}
	ctx.B.Emit("{ ")
	for _, a := range attrs {
		ctx.B.Emit(a.Name + ": ")
		ctx.emitAttrValueExpr(a.Value)
		ctx.B.Emit(", ")
	}
	ctx.B.Emit("}")
}

// emitAttrValueExpr emits a single attribute's value as a value expression
// for a component prop; a ConcatStatement value is handed to
// emitTemplateLiteral.
func (ctx *Context) emitAttrValueExpr(val hbsast.AttrValue) {
	switch v := val.(type) {
	case *hbsast.TextNode:
		ctx.B.EmitMapped(`"`+escapeStringLiteral(v.Chars)+`"`, v.Loc)
	case *hbsast.MustacheStatement:
		if v.Path.Head == "yield" {
			ctx.emitYieldInExpressionPosition(v)
			ctx.B.Emit("undefined")
			return
		}
		if IsSpecialForm(v.Path.Head) {
			ctx.emitSpecialForm(v.Path, v.Params, v.Hash, v.Loc)
			return
		}
		ctx.emitResolvedCall(v.Path, v.Params, v.Hash, true)
	case *hbsast.ConcatStatement:
		ctx.emitTemplateLiteral(v.Parts)
	}
}

func escapeStringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func escapeTemplateLiteralText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

// emitTemplateLiteral emits a ConcatStatement's parts as a single
// `` `${...}${...}` `` template literal (§4.E: "interpolated attribute
// values ... emit a template-literal-style string coercion").
func (ctx *Context) emitTemplateLiteral(parts []hbsast.Node) {
	ctx.B.Emit("`")
	for _, part := range parts {
		switch p := part.(type) {
		case *hbsast.TextNode:
			ctx.B.Emit(escapeTemplateLiteralText(p.Chars))
		case *hbsast.MustacheStatement:
			ctx.B.Emit("${")
			if p.Path.Head == "yield" {
				ctx.emitYieldInExpressionPosition(p)
				ctx.B.Emit("undefined")
			} else {
				ctx.EmitMustacheExpr(p)
			}
			ctx.B.Emit("}")
		}
	}
	ctx.B.Emit("`")
}

// emitPlainElement recurses into a non-component element's attributes,
// modifiers, and children in that order (§4.E: "plain elements emit no
// call for the element itself").
func (ctx *Context) emitPlainElement(el *hbsast.Element) {
	for _, attr := range el.Attributes {
		ctx.emitAttrStatement(attr.Value)
	}
	for _, mod := range el.Modifiers {
		ctx.emitModifierStatement(mod)
	}
	ctx.EmitStatements(el.Children)
}

// emitAttrStatement emits an attribute value that needs type-checking as
// its own statement: a bare TextNode value needs none.
func (ctx *Context) emitAttrStatement(val hbsast.AttrValue) {
	switch v := val.(type) {
	case *hbsast.TextNode:
		// Static attribute text; nothing to check.
	case *hbsast.MustacheStatement:
		if v.Path.Head == "yield" {
			ctx.emitYieldInExpressionPosition(v)
			return
		}
		ctx.B.BeginLine()
		ctx.EmitMustacheExpr(v)
		ctx.B.Emit(";\n")
		ctx.flushBareRefs()
	case *hbsast.ConcatStatement:
		ctx.B.BeginLine()
		ctx.emitTemplateLiteral(v.Parts)
		ctx.B.Emit(";\n")
		ctx.flushBareRefs()
	}
}

func (ctx *Context) emitModifierStatement(mod *hbsast.ElementModifierStatement) {
	ctx.B.BeginLine()
	ctx.B.Emit("invokeModifier(resolve(")
	ctx.emitPathExpr(mod.Path)
	ctx.B.Emit(")")
	ctx.emitArgPack(mod.Params, mod.Hash)
	ctx.B.Emit(");\n")
	ctx.flushBareRefs()
}
