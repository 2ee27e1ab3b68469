// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"strings"
)

// documentTag wraps the top-level blocks of a converted document.
const documentTag = "div"

// Convert builds the node tree for a whole document: a "div" branch with one
// child per block. Any error aborts the conversion and no tree is returned.
func Convert(doc string) (*Branch, error) {
	blocks := Segment(doc)
	children := make([]Node, 0, len(blocks))
	for i, block := range blocks {
		n, err := BlockToNode(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		children = append(children, n)
	}
	return NewBranch(documentTag, children...), nil
}

// ToHTML converts doc and renders the resulting tree.
func ToHTML(doc string) (string, error) {
	root, err := Convert(doc)
	if err != nil {
		return "", err
	}
	return Render(root)
}

// BlockToNode classifies a single block and builds its subtree.
func BlockToNode(block string) (*Branch, error) {
	switch kind := Classify(block); kind {
	case Paragraph:
		return paragraphToNode(block)
	case Heading:
		return headingToNode(block)
	case CodeBlock:
		return codeToNode(block)
	case OrderedList:
		return listToNode(block, "ol", stripOrderedMarker)
	case UnorderedList:
		return listToNode(block, "ul", stripUnorderedMarker)
	case Quote:
		return quoteToNode(block)
	default:
		panic(fmt.Sprintf("markdown: unhandled block kind %v", kind))
	}
}

func paragraphToNode(block string) (*Branch, error) {
	text := strings.Join(strings.Split(block, "\n"), " ")
	children, err := textToChildren(text)
	if err != nil {
		return nil, err
	}
	return NewBranch("p", children...), nil
}

func headingToNode(block string) (*Branch, error) {
	level := 0
	for level < len(block) && block[level] == '#' {
		level++
	}
	if level+1 >= len(block) {
		return nil, fmt.Errorf("heading level %d has no text: %w", level, ErrInvalidHeading)
	}
	children, err := textToChildren(block[level+1:])
	if err != nil {
		return nil, err
	}
	return NewBranch(fmt.Sprintf("h%d", level), children...), nil
}

// codeToNode strips the opening fence line and the closing fence. Text after
// the opening fence is the info string and becomes a language class.
func codeToNode(block string) (*Branch, error) {
	if !strings.HasPrefix(block, fence) || !strings.HasSuffix(block, fence) {
		return nil, fmt.Errorf("missing fence: %w", ErrInvalidCodeBlock)
	}
	nl := strings.IndexByte(block, '\n')
	if nl < 0 {
		return nil, fmt.Errorf("single-line block: %w", ErrInvalidCodeBlock)
	}
	info := strings.TrimSpace(block[len(fence):nl])
	body := block[nl+1 : len(block)-len(fence)]

	children, err := textToChildren(body)
	if err != nil {
		return nil, err
	}
	code := NewBranch("code", children...)
	if info != "" {
		code.Attrs.Set("class", "language-"+info)
	}
	return NewBranch("pre", code), nil
}

func stripOrderedMarker(i int, line string) string {
	return strings.TrimPrefix(line, orderedMarker(i+1))
}

func stripUnorderedMarker(_ int, line string) string {
	return line[min(2, len(line)):]
}

func listToNode(block, tag string, strip func(i int, line string) string) (*Branch, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		children, err := textToChildren(strip(i, line))
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i+1, err)
		}
		items = append(items, NewBranch("li", children...))
	}
	return NewBranch(tag, items...), nil
}

func quoteToNode(block string) (*Branch, error) {
	lines := strings.Split(block, "\n")
	cleaned := make([]string, 0, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, ">") {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrInvalidQuote)
		}
		cleaned = append(cleaned, strings.TrimSpace(strings.TrimLeft(line, ">")))
	}
	children, err := textToChildren(strings.Join(cleaned, " "))
	if err != nil {
		return nil, err
	}
	return NewBranch("blockquote", children...), nil
}

// ExtractTitle returns the text after "# " on the first line that starts
// with it.
func ExtractTitle(doc string) (string, error) {
	for _, line := range strings.Split(normalizeNewlines(doc), "\n") {
		if strings.HasPrefix(line, "# ") {
			return line[2:], nil
		}
	}
	return "", ErrMissingTitle
}
