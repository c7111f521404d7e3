package rangemap

import (
	"sort"

	"github.com/abiiranathan/hbs2ts/hbsast"
)

// RangeMap is the finalized, queryable bidirectional map between original
// template offsets and emitted program offsets (§3, §6). It is built once
// from a Builder's recorded correspondences and answers both directions in
// O(log n), via two parallel sorted-by-offset indexes — the representation
// §9's design notes call out as the natural fit for a map richer than a
// line/column source map.
type RangeMap struct {
	byOrig []Correspondence // sorted by Orig.Start
	byEmit []Correspondence // sorted by Emit.Start
}

func newRangeMap(corrs []Correspondence) *RangeMap {
	byOrig := make([]Correspondence, len(corrs))
	copy(byOrig, corrs)
	sort.Slice(byOrig, func(i, j int) bool { return byOrig[i].Orig.Start < byOrig[j].Orig.Start })

	byEmit := make([]Correspondence, len(corrs))
	copy(byEmit, corrs)
	sort.Slice(byEmit, func(i, j int) bool { return byEmit[i].Emit.Start < byEmit[j].Emit.Start })

	return &RangeMap{byOrig: byOrig, byEmit: byEmit}
}

// Entries returns every correspondence, in original-offset order.
func (m *RangeMap) Entries() []Correspondence {
	out := make([]Correspondence, len(m.byOrig))
	copy(out, m.byOrig)
	return out
}

// OriginalToEmitted returns the emitted offset corresponding to an original
// template offset falling within some recorded span, or false if offset
// falls in a gap (synthesized scaffolding, per §3's invariant on gaps).
func (m *RangeMap) OriginalToEmitted(offset int) (int, bool) {
	c, ok := find(m.byOrig, offset, func(c Correspondence) hbsast.Loc { return c.Orig })
	if !ok {
		return 0, false
	}
	delta := offset - c.Orig.Start
	return c.Emit.Start + delta, true
}

// EmittedToOriginal returns the original template offset corresponding to
// an emitted program offset, or false if offset falls in a gap.
func (m *RangeMap) EmittedToOriginal(offset int) (int, bool) {
	c, ok := find(m.byEmit, offset, func(c Correspondence) hbsast.Loc { return c.Emit })
	if !ok {
		return 0, false
	}
	delta := offset - c.Emit.Start
	return c.Orig.Start + delta, true
}

// find binary-searches a slice sorted by the span key's Start for the
// correspondence whose span contains offset.
func find(sorted []Correspondence, offset int, key func(Correspondence) hbsast.Loc) (Correspondence, bool) {
	i := sort.Search(len(sorted), func(i int) bool { return key(sorted[i]).Start > offset })
	if i == 0 {
		return Correspondence{}, false
	}
	c := sorted[i-1]
	span := key(c)
	if offset < span.Start || offset >= span.End {
		return Correspondence{}, false
	}
	return c, true
}
