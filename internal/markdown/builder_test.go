// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "headings and paragraph",
			doc:  "# this is an h1\n\nthis is paragraph text\n\n## this is an h2",
			want: "<div><h1>this is an h1</h1><p>this is paragraph text</p><h2>this is an h2</h2></div>",
		},
		{
			name: "paragraphs",
			doc: `
This is **bolded** paragraph
text in a p
tag here

This is another paragraph with *italic* text and ` + "`code`" + ` here

`,
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p>" +
				"<p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name: "unordered list",
			doc:  "- a\n- b\n- and *c*",
			want: "<div><ul><li>a</li><li>b</li><li>and <i>c</i></li></ul></div>",
		},
		{
			name: "lists",
			doc: `
- This is a list
- with items
- and *more* items

1. This is an ` + "`ordered`" + ` list
2. with items
3. and more items

`,
			want: "<div><ul><li>This is a list</li><li>with items</li><li>and <i>more</i> items</li></ul>" +
				"<ol><li>This is an <code>ordered</code> list</li><li>with items</li><li>and more items</li></ol></div>",
		},
		{
			name: "blockquote",
			doc:  "> This is a\n> blockquote block\n\nthis is paragraph text\n\n",
			want: "<div><blockquote>This is a blockquote block</blockquote><p>this is paragraph text</p></div>",
		},
		{
			name: "quote with a bare line falls through to paragraph",
			doc:  "> quoted\nnot quoted",
			want: "<div><p>> quoted not quoted</p></div>",
		},
		{
			name: "code block",
			doc:  "```\nfunc main() {}\n```",
			want: "<div><pre><code>func main() {}\n</code></pre></div>",
		},
		{
			name: "code block with info string",
			doc:  "```go\nx := 1\n```",
			want: "<div><pre><code class='language-go'>x := 1\n</code></pre></div>",
		},
		{
			name: "code block content is tokenized inline",
			doc:  "```\na *b* c\n```",
			want: "<div><pre><code>a <i>b</i> c\n</code></pre></div>",
		},
		{
			name: "image and link",
			doc:  "![logo](/logo.png) by [me](https://example.com)",
			want: "<div><p><img src='/logo.png' alt='logo'> by <a href='https://example.com'>me</a></p></div>",
		},
		{
			name: "unclosed link target stays literal",
			doc:  "# Notes\n\nsee f(x) [docs](http://x for details",
			want: "<div><h1>Notes</h1><p>see f(x) [docs](http://x for details</p></div>",
		},
		{
			name: "heading keeps inline markup",
			doc:  "### a **loud** title",
			want: "<div><h3>a <b>loud</b> title</h3></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParagraphRoundTrip(t *testing.T) {
	lines := []string{"first line", "second line", "third"}
	got, err := ToHTML(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "<div><p>"+strings.Join(lines, " ")+"</p></div>", got)
}

func TestOrderedListPastNine(t *testing.T) {
	var lines, items []string
	for i := 1; i <= 11; i++ {
		lines = append(lines, orderedMarker(i)+"item")
		items = append(items, "<li>item</li>")
	}
	got, err := ToHTML(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "<div><ol>"+strings.Join(items, "")+"</ol></div>", got)
}

func TestConvertStructure(t *testing.T) {
	root, err := Convert("# Title\n\n```\ncode\n```")
	require.NoError(t, err)

	assert.Equal(t, "div", root.Tag)
	require.Len(t, root.Children, 2)

	pre, ok := root.Children[1].(*Branch)
	require.True(t, ok)
	assert.Equal(t, "pre", pre.Tag)
	require.Len(t, pre.Children, 1)
	code, ok := pre.Children[0].(*Branch)
	require.True(t, ok)
	assert.Equal(t, "code", code.Tag)
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"unterminated bold", "# Title\n\nsome **bold", ErrUnterminatedDelimiter},
		{"code block without closing fence suffix", "```\ncode\n```trailing", ErrInvalidCodeBlock},
		{"unterminated italic in list", "- a\n- *b", ErrUnterminatedDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Convert(tt.doc)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, root)
		})
	}
}

func TestBuilderPreconditions(t *testing.T) {
	_, err := headingToNode("#")
	assert.ErrorIs(t, err, ErrInvalidHeading)

	_, err = headingToNode("## ")
	assert.ErrorIs(t, err, ErrInvalidHeading)

	_, err = codeToNode("no fence")
	assert.ErrorIs(t, err, ErrInvalidCodeBlock)

	_, err = quoteToNode("> fine\nbroken")
	assert.ErrorIs(t, err, ErrInvalidQuote)
}

func TestEmptyBlocksFailToRender(t *testing.T) {
	root, err := Convert("```\n```")
	require.NoError(t, err)
	_, err = Render(root)
	assert.ErrorIs(t, err, ErrEmptyChildren)

	root, err = Convert("")
	require.NoError(t, err)
	_, err = Render(root)
	assert.ErrorIs(t, err, ErrEmptyChildren)

	root, err = Convert("[](/x)")
	require.NoError(t, err)
	_, err = Render(root)
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr error
	}{
		{name: "first line", doc: "# Hello\n\ntext", want: "Hello"},
		{name: "later line", doc: "intro\n## sub\n# Real Title\n# Second", want: "Real Title"},
		{name: "crlf", doc: "# Windows\r\nbody", want: "Windows"},
		{name: "only subheadings", doc: "## sub\n\ntext", wantErr: ErrMissingTitle},
		{name: "hash without space", doc: "#notitle", wantErr: ErrMissingTitle},
		{name: "empty", doc: "", wantErr: ErrMissingTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTitle(tt.doc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
