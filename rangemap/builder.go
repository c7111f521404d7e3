// Package rangemap implements the range-mapped text builder (§4.A) and the
// finalized bidirectional range map (§3's RangeMap) the transform uses to
// project host-type-checker diagnostics back onto template source offsets.
package rangemap

import (
	"strings"

	"github.com/abiiranathan/hbs2ts/hbsast"
)

const indentWidth = 2

// Correspondence is one entry linking an original template span to the span
// of emitted program text that represents it.
type Correspondence struct {
	Orig hbsast.Loc
	Emit hbsast.Loc
}

// Builder accumulates emitted text while recording origin↔emission
// correspondences in emission order. It is not re-entrant: one Builder per
// transform call, matching §5's single-threaded, per-call-immutable model.
type Builder struct {
	buf    strings.Builder
	indent int
	corrs  []Correspondence
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Emit appends text with no origin mapping (synthesized scaffolding).
func (b *Builder) Emit(text string) {
	b.buf.WriteString(text)
}

// EmitMapped appends text and records a correspondence from orig to the span
// just emitted. Correspondences are recorded in the order Emit/EmitMapped is
// called, which is also increasing order by Emit.Start since the builder is
// append-only.
func (b *Builder) EmitMapped(text string, orig hbsast.Loc) {
	start := b.buf.Len()
	b.buf.WriteString(text)
	b.corrs = append(b.corrs, Correspondence{
		Orig: orig,
		Emit: hbsast.Loc{Start: start, End: b.buf.Len()},
	})
}

// EmitIndented appends text, prefixing every non-empty line with the
// builder's current indent level.
func (b *Builder) EmitIndented(text string) {
	prefix := strings.Repeat(" ", b.indent*indentWidth)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			if i < len(lines)-1 {
				b.buf.WriteString("\n")
			}
			continue
		}
		b.buf.WriteString(prefix)
		b.buf.WriteString(line)
		if i < len(lines)-1 {
			b.buf.WriteString("\n")
		}
	}
}

// BeginLine writes the current indent's leading whitespace. Callers that
// build up one logical line out of several Emit/EmitMapped calls (mixing
// literal text with classifier-resolved identifiers) call this once before
// the first piece of that line, instead of composing the whole line as one
// string for EmitIndented.
func (b *Builder) BeginLine() {
	b.buf.WriteString(strings.Repeat(" ", b.indent*indentWidth))
}

// PushIndent increases the indent level used by EmitIndented.
func (b *Builder) PushIndent() { b.indent++ }

// PopIndent decreases the indent level used by EmitIndented.
func (b *Builder) PopIndent() {
	if b.indent > 0 {
		b.indent--
	}
}

// Len returns the number of bytes emitted so far.
func (b *Builder) Len() int { return b.buf.Len() }

// String returns the emitted text so far.
func (b *Builder) String() string { return b.buf.String() }

// Finish returns the emitted code and a finalized, queryable RangeMap.
func (b *Builder) Finish() (string, *RangeMap) {
	code := b.buf.String()
	return code, newRangeMap(b.corrs)
}
