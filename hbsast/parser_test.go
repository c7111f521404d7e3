package hbsast

import (
	"testing"
)

func TestParseTextNode(t *testing.T) {
	tmpl, err := Parse("hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tmpl.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(tmpl.Body))
	}
	tx, ok := tmpl.Body[0].(*TextNode)
	if !ok {
		t.Fatalf("got %T, want *TextNode", tmpl.Body[0])
	}
	if tx.Chars != "hello world" {
		t.Fatalf("Chars = %q", tx.Chars)
	}
}

func TestParseMustachePath(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		wantHead string
		wantTail []string
	}{
		{"plain", "{{foo}}", "foo", nil},
		{"dotted", "{{foo.bar.baz}}", "foo", []string{"bar", "baz"}},
		{"this", "{{this.foo}}", "this", []string{"foo"}},
		{"named-arg", "{{@foo}}", "@foo", nil},
		{"hyphenated tail", "{{obj.foo-bar}}", "obj", []string{"foo-bar"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tmpl.Body) != 1 {
				t.Fatalf("got %d statements, want 1", len(tmpl.Body))
			}
			m, ok := tmpl.Body[0].(*MustacheStatement)
			if !ok {
				t.Fatalf("got %T, want *MustacheStatement", tmpl.Body[0])
			}
			if m.Path.Head != tc.wantHead {
				t.Errorf("Head = %q, want %q", m.Path.Head, tc.wantHead)
			}
			if !stringsEqual(m.Path.Tail, tc.wantTail) {
				t.Errorf("Tail = %v, want %v", m.Path.Tail, tc.wantTail)
			}
		})
	}
}

func TestParseMustacheArgsAndHash(t *testing.T) {
	tmpl, err := Parse(`{{helper 1 "two" a=3 b="four"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := tmpl.Body[0].(*MustacheStatement)
	if len(m.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(m.Params))
	}
	if _, ok := m.Params[0].(*NumberLiteral); !ok {
		t.Errorf("Params[0] = %T, want *NumberLiteral", m.Params[0])
	}
	if _, ok := m.Params[1].(*StringLiteral); !ok {
		t.Errorf("Params[1] = %T, want *StringLiteral", m.Params[1])
	}
	if len(m.Hash) != 2 || m.Hash[0].Key != "a" || m.Hash[1].Key != "b" {
		t.Fatalf("got Hash = %+v", m.Hash)
	}
}

func TestParseBlockStatementWithElseIf(t *testing.T) {
	src := `{{#if a}}one{{else if b}}two{{else}}three{{/if}}`
	tmpl, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blk, ok := tmpl.Body[0].(*BlockStatement)
	if !ok {
		t.Fatalf("got %T, want *BlockStatement", tmpl.Body[0])
	}
	if blk.Path.Head != "if" {
		t.Fatalf("Path.Head = %q", blk.Path.Head)
	}
	if blk.InverseChain == nil || blk.InverseChain.Path.Head != "if" {
		t.Fatalf("expected InverseChain to be a nested if, got %+v", blk.InverseChain)
	}
	if blk.InverseChain.Inverse == nil {
		t.Fatalf("expected the nested if's own else branch to be present")
	}
}

func TestParseBlockParams(t *testing.T) {
	tmpl, err := Parse(`{{#each items as |item idx|}}{{item}}{{/each}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blk := tmpl.Body[0].(*BlockStatement)
	if len(blk.Program.Params) != 2 || blk.Program.Params[0] != "item" || blk.Program.Params[1] != "idx" {
		t.Fatalf("got Program.Params = %v", blk.Program.Params)
	}
}

func TestParseComponentTagShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"uppercase tag", `<Foo></Foo>`, true},
		{"lowercase tag", `<div></div>`, false},
		{"dotted tag", `<this.Foo></this.Foo>`, true},
		{"named-arg tag", `<@foo></@foo>`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			el, ok := tmpl.Body[0].(*Element)
			if !ok {
				t.Fatalf("got %T, want *Element", tmpl.Body[0])
			}
			if el.IsComponent != tc.want {
				t.Errorf("IsComponent = %v, want %v", el.IsComponent, tc.want)
			}
		})
	}
}

func TestParseSelfClosingElement(t *testing.T) {
	tmpl, err := Parse(`<Foo bar="baz" />`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := tmpl.Body[0].(*Element)
	if len(el.Children) != 0 {
		t.Fatalf("got %d children, want 0", len(el.Children))
	}
	if len(el.Attributes) != 1 || el.Attributes[0].Name != "bar" {
		t.Fatalf("got Attributes = %+v", el.Attributes)
	}
}

func TestParseUnquotedMustacheAttr(t *testing.T) {
	tmpl, err := Parse(`<Foo bar={{baz}}></Foo>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := tmpl.Body[0].(*Element)
	if _, ok := el.Attributes[0].Value.(*MustacheStatement); !ok {
		t.Fatalf("got %T, want *MustacheStatement", el.Attributes[0].Value)
	}
}

func TestParseConcatAttrValue(t *testing.T) {
	tmpl, err := Parse(`<div class="a {{b}} c"></div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := tmpl.Body[0].(*Element)
	cat, ok := el.Attributes[0].Value.(*ConcatStatement)
	if !ok {
		t.Fatalf("got %T, want *ConcatStatement", el.Attributes[0].Value)
	}
	if len(cat.Parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(cat.Parts))
	}
}

func TestParseNamedBlocks(t *testing.T) {
	src := `<Foo><:one>a</:one><:two as |x|>b</:two></Foo>`
	tmpl, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := tmpl.Body[0].(*Element)
	if len(el.NamedBlocks) != 2 {
		t.Fatalf("got %d named blocks, want 2", len(el.NamedBlocks))
	}
	if el.NamedBlocks[0].Name != "one" || el.NamedBlocks[1].Name != "two" {
		t.Fatalf("got names %q, %q", el.NamedBlocks[0].Name, el.NamedBlocks[1].Name)
	}
	if len(el.NamedBlocks[1].Params) != 1 || el.NamedBlocks[1].Params[0] != "x" {
		t.Fatalf("got Params = %v", el.NamedBlocks[1].Params)
	}
}

func TestParseYieldStatement(t *testing.T) {
	tmpl, err := Parse(`{{yield a to="body"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := tmpl.Body[0].(*MustacheStatement)
	if !ok || m.Path.Head != "yield" {
		t.Fatalf("got %+v", tmpl.Body[0])
	}
	if len(m.Hash) != 1 || m.Hash[0].Key != "to" {
		t.Fatalf("got Hash = %+v", m.Hash)
	}
}

func TestParseSubExpression(t *testing.T) {
	tmpl, err := Parse(`{{outer (inner @x) 1}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := tmpl.Body[0].(*MustacheStatement)
	if len(m.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(m.Params))
	}
	sub, ok := m.Params[0].(*SubExpression)
	if !ok {
		t.Fatalf("got %T, want *SubExpression", m.Params[0])
	}
	if sub.Path.Head != "inner" {
		t.Fatalf("got Path.Head = %q", sub.Path.Head)
	}
}

// Regression test for a scanning bug where byte-at-a-time identifier
// scanning would stop mid-character on a multi-byte rune, corrupting the
// rest of the parse. Both reserved identifiers (Γ, χ) are themselves
// multi-byte, so this matters for anything exercising them.
func TestParseMultiByteIdentifiers(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		wantHead string
	}{
		{"block param reference", `{{#each items as |χ|}}{{χ}}{{/each}}`, "χ"},
		{"path head", `{{café}}`, "café"},
		{"tag name", `<Ωmega></Ωmega>`, "Ωmega"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	tmpl, err := Parse(`{{#each items as |χ|}}{{χ}}{{/each}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blk := tmpl.Body[0].(*BlockStatement)
	inner := blk.Program.Body[0].(*MustacheStatement)
	if inner.Path.Head != "χ" {
		t.Fatalf("Path.Head = %q, want %q", inner.Path.Head, "χ")
	}
}

func TestParseUnterminatedMustacheIsError(t *testing.T) {
	if _, err := Parse(`{{foo`); err == nil {
		t.Fatalf("expected an error for unterminated mustache")
	}
}

func TestParseUnclosedBlockIsError(t *testing.T) {
	if _, err := Parse(`{{#if a}}body`); err == nil {
		t.Fatalf("expected an error for a block with no matching {{/if}}")
	}
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
