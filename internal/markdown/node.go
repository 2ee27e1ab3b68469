// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown converts a restricted Markdown dialect into a tree of HTML
// nodes and renders that tree to a markup string.
//
// The pipeline is Segment -> Classify -> build (Tokenize for inline content)
// -> Render. Every stage is pure: nothing here performs I/O or keeps state
// between calls, so independent documents may be converted concurrently.
package markdown

import (
	"fmt"
	"strings"
)

// Node is a rendered-output unit: either a *Leaf or a *Branch.
type Node interface {
	node()
}

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an insertion-ordered attribute list with unique keys.
type Attributes []Attr

// Set adds key=value, replacing the value in place if key is already present.
func (a *Attributes) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Leaf holds literal content: plain text when Tag is empty, otherwise a
// single element wrapping Value.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes
}

// Branch is a structural container owning its children.
type Branch struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

func (*Leaf) node()   {}
func (*Branch) node() {}

// NewLeaf returns a leaf with the given tag, value and attributes.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	l := &Leaf{Tag: tag, Value: value}
	for _, attr := range attrs {
		l.Attrs.Set(attr.Key, attr.Value)
	}
	return l
}

// NewBranch returns a branch with the given tag and children.
func NewBranch(tag string, children ...Node) *Branch {
	return &Branch{Tag: tag, Children: children}
}

// voidElements render without a closing tag and need no value.
var voidElements = map[string]bool{
	"img": true,
}

// Render serializes n to markup. Text is emitted verbatim; nothing is
// HTML-escaped.
func Render(n Node) (string, error) {
	var b strings.Builder
	if err := render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		return renderLeaf(b, n)
	case *Branch:
		return renderBranch(b, n)
	default:
		return fmt.Errorf("rendering node: unsupported node type %T", n)
	}
}

func renderLeaf(b *strings.Builder, l *Leaf) error {
	if voidElements[l.Tag] {
		b.WriteString("<" + l.Tag)
		writeAttrs(b, l.Attrs)
		b.WriteString(">")
		return nil
	}
	if l.Value == "" {
		return fmt.Errorf("rendering leaf %q: %w", l.Tag, ErrEmptyValue)
	}
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}
	b.WriteString("<" + l.Tag)
	writeAttrs(b, l.Attrs)
	b.WriteString(">")
	b.WriteString(l.Value)
	b.WriteString("</" + l.Tag + ">")
	return nil
}

func renderBranch(b *strings.Builder, br *Branch) error {
	if br.Tag == "" {
		return fmt.Errorf("rendering branch: %w", ErrMissingTag)
	}
	if len(br.Children) == 0 {
		return fmt.Errorf("rendering <%s> branch: %w", br.Tag, ErrEmptyChildren)
	}
	b.WriteString("<" + br.Tag)
	writeAttrs(b, br.Attrs)
	b.WriteString(">")
	for _, child := range br.Children {
		if err := render(b, child); err != nil {
			return err
		}
	}
	b.WriteString("</" + br.Tag + ">")
	return nil
}

func writeAttrs(b *strings.Builder, attrs Attributes) {
	for _, attr := range attrs {
		b.WriteString(" " + attr.Key + "='" + attr.Value + "'")
	}
}
