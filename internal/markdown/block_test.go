// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	doc := `
This is **bolded** paragraph

This is another paragraph with *italic* text and ` + "`code`" + ` here
This is the same paragraph on a new line

* This is a list
* with items

`
	want := []string{
		"This is **bolded** paragraph",
		"This is another paragraph with *italic* text and `code` here\nThis is the same paragraph on a new line",
		"* This is a list\n* with items",
	}
	assert.Equal(t, want, Segment(doc))
}

func TestSegmentProperties(t *testing.T) {
	docs := []string{
		"",
		"\n\n\n\n",
		"   \n\n  \t\n\n",
		"one",
		"one\n\n\n\ntwo\n\n\n\n\nthree",
		"a\r\n\r\nb\r\n\r\n",
		"  leading\n\ntrailing  \n\n \n\n",
	}

	for _, doc := range docs {
		blocks := Segment(doc)
		last := -1
		for _, b := range blocks {
			assert.NotEmpty(t, b, "doc %q", doc)
			assert.Equal(t, strings.TrimSpace(b), b, "doc %q", doc)
			// Blocks appear in document order.
			idx := strings.Index(doc[last+1:], b)
			assert.GreaterOrEqual(t, idx, 0, "block %q out of order in %q", b, doc)
			last += idx + len(b)
		}
	}

	assert.Equal(t, []string{"one", "two", "three"}, Segment("one\n\n\n\ntwo\n\n\n\n\nthree"))
	assert.Equal(t, []string{"a", "b"}, Segment("a\r\n\r\nb\r\n\r\n"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		block string
		want  BlockKind
	}{
		{"# heading", Heading},
		{"###### six", Heading},
		{"####### seven", Paragraph},
		{"#nospace", Paragraph},
		{"```\ncode\n```", CodeBlock},
		{"```go\nx := 1\n```", CodeBlock},
		{"```\nunclosed", Paragraph},
		{"```single line```", Paragraph},
		{"> quote\n> more quote", Quote},
		{">tight", Quote},
		{"> quote\nnot quoted", Paragraph},
		{"* list\n* items", UnorderedList},
		{"- list\n- items", UnorderedList},
		{"- list\nplain", Paragraph},
		{"* list\n- mixed", Paragraph},
		{"1. list\n2. items", OrderedList},
		{"1. one\n3. three", Paragraph},
		{"2. starts late", Paragraph},
		{"paragraph", Paragraph},
		{"", Paragraph},
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.block))
		})
	}
}

func TestClassifyOrderedListPastNine(t *testing.T) {
	var lines []string
	for i := 1; i <= 12; i++ {
		lines = append(lines, orderedMarker(i)+"item")
	}
	assert.Equal(t, OrderedList, Classify(strings.Join(lines, "\n")))
}
