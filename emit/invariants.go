package emit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/abiiranathan/hbs2ts/hbsast"
)

// Reserved identifiers that an emitted program must never let author-chosen
// names collide with (§3, §6).
const (
	reservedContext = "Γ"
	reservedRuntime = "χ"
)

// checkBlockParamNames validates each block-param name against §7's
// E-BP-NAME and the reserved-identifier shadowing check added in
// SPEC_FULL.md §12. It appends diagnostics to ctx and returns the subset of
// names that are safe to actually bind in scope (invalid/reserved names are
// dropped rather than bound, so a later "unknown identifier" cascade doesn't
// pile on top of the real error).
func (ctx *Context) checkBlockParamNames(names []string, loc hbsast.Loc) []string {
	var ok []string
	for _, n := range names {
		if !isIdentifierName(n) {
			ctx.addDiagnostic(diag(loc, msgBlockParamName))
			continue
		}
		if n == reservedContext || n == reservedRuntime {
			ctx.addDiagnostic(diag(loc, fmt.Sprintf(msgReservedShadowFmt, n)))
			continue
		}
		ok = append(ok, n)
	}
	return ok
}

// enterBlockParams validates names via checkBlockParamNames and pushes the
// surviving subset onto the scope tracker in one step, so every statement
// emitter that opens a block-param frame does so through a single call that
// can't validate without binding or bind without validating.
func (ctx *Context) enterBlockParams(names []string, loc hbsast.Loc) []string {
	ok := ctx.checkBlockParamNames(names, loc)
	ctx.Scope.Enter(ok...)
	return ok
}

func isIdentifierName(s string) bool {
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

// checkNamedBlockDuplicates implements SPEC_FULL.md §12's E-DUP-BLOCK,
// grounded on the teacher's NamedBlockDuplicateError/detectDuplicateBlocks.
func (ctx *Context) checkNamedBlockDuplicates(blocks []*hbsast.NamedBlock) {
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if seen[b.Name] {
			ctx.addDiagnostic(diag(b.Loc, fmt.Sprintf(msgDupBlockFmt, b.Name)))
			continue
		}
		seen[b.Name] = true
	}
}

// checkMixedNamedBlocks implements §4.E's named-block exclusivity rule: a
// component's children are either all named blocks (blank text permitted
// between them) or contain none. children here is already known to contain
// at least one named block (emitComponent only calls this when
// hasNamedBlockChild holds for a child list the parser did not accept as
// all named blocks); every non-whitespace,
// non-named-block sibling is a separate E-MIX violation at its own span.
func (ctx *Context) checkMixedNamedBlocks(children []hbsast.Statement) {
	for _, c := range children {
		if el, ok := c.(*hbsast.Element); ok && strings.HasPrefix(el.Tag, ":") {
			continue
		}
		if tx, ok := c.(*hbsast.TextNode); ok && strings.TrimSpace(tx.Chars) == "" {
			continue
		}
		ctx.addDiagnostic(diag(c.Location(), msgMix))
	}
}
