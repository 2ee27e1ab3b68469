// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"strings"
)

// SpanKind identifies the inline style of a TextSpan.
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var spanKindNames = []string{
	Plain:  "Plain",
	Bold:   "Bold",
	Italic: "Italic",
	Code:   "Code",
	Link:   "Link",
	Image:  "Image",
}

func (k SpanKind) String() string {
	if int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return fmt.Sprintf("SpanKind(%d)", int(k))
}

// TextSpan is a typed fragment of inline content. Target holds the URL of
// Link and Image spans and is empty otherwise.
type TextSpan struct {
	Text   string
	Kind   SpanKind
	Target string
}

// delimiterPasses run in order; "**" must be consumed before "*".
var delimiterPasses = []struct {
	delim string
	kind  SpanKind
}{
	{"**", Bold},
	{"*", Italic},
	{"`", Code},
}

// Tokenize splits text into inline spans. Passes run Bold, Italic, Code,
// Image, Link; each pass only subdivides Plain spans, so styles never nest.
func Tokenize(text string) ([]TextSpan, error) {
	spans := []TextSpan{{Text: text, Kind: Plain}}

	var err error
	for _, pass := range delimiterPasses {
		if spans, err = splitDelimiter(spans, pass.delim, pass.kind); err != nil {
			return nil, err
		}
	}
	spans = splitReferences(spans, "![", Image)
	spans = splitReferences(spans, "[", Link)
	return spans, nil
}

// splitDelimiter splits each Plain span on delim. Text between a pair of
// delimiters takes kind; empty sections are dropped.
func splitDelimiter(spans []TextSpan, delim string, kind SpanKind) ([]TextSpan, error) {
	out := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		sections := strings.Split(span.Text, delim)
		if len(sections)%2 == 0 {
			return nil, fmt.Errorf("%q in %q: %w", delim, span.Text, ErrUnterminatedDelimiter)
		}
		for i, section := range sections {
			if section == "" {
				continue
			}
			k := Plain
			if i%2 == 1 {
				k = kind
			}
			out = append(out, TextSpan{Text: section, Kind: k})
		}
	}
	return out, nil
}

// reference is one "[label](target)" match located in a text.
type reference struct {
	start, end    int
	label, target string
}

// splitReferences extracts opener+"label](target)" references from Plain
// spans, emitting the surrounding text as Plain. Openers that never close
// stay in the Plain text.
func splitReferences(spans []TextSpan, opener string, kind SpanKind) []TextSpan {
	out := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		rest := span.Text
		for {
			ref, ok := findReference(rest, opener)
			if !ok {
				break
			}
			if ref.start > 0 {
				out = append(out, TextSpan{Text: rest[:ref.start], Kind: Plain})
			}
			out = append(out, TextSpan{Text: ref.label, Kind: kind, Target: ref.target})
			rest = rest[ref.end:]
		}
		if rest != "" {
			out = append(out, TextSpan{Text: rest, Kind: Plain})
		}
	}
	return out
}

// findReference scans text forward for the first reference introduced by
// opener. The label ends at the first "](" and the target at the first ")"
// after it; neither may cross a newline. Each byte is examined a bounded
// number of times, so the scan is linear in len(text).
func findReference(text, opener string) (reference, bool) {
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], opener)
		if j < 0 {
			return reference{}, false
		}
		start := i + j
		labelStart := start + len(opener)

		lineEnd := len(text)
		if nl := strings.IndexByte(text[labelStart:], '\n'); nl >= 0 {
			lineEnd = labelStart + nl
		}

		// No "](" on the rest of this line means no opener on it can match.
		mid := strings.Index(text[labelStart:lineEnd], "](")
		if mid < 0 {
			i = lineEnd + 1
			continue
		}
		targetStart := labelStart + mid + 2
		// Every later "](" on the line sits past this one, so a missing ")"
		// rules out the whole line.
		closing := strings.IndexByte(text[targetStart:lineEnd], ')')
		if closing < 0 {
			i = lineEnd + 1
			continue
		}

		return reference{
			start:  start,
			end:    targetStart + closing + 1,
			label:  text[labelStart : labelStart+mid],
			target: text[targetStart : targetStart+closing],
		}, true
	}
	return reference{}, false
}

// SpanToNode converts a span into its rendering leaf.
func SpanToNode(span TextSpan) (*Leaf, error) {
	switch span.Kind {
	case Plain:
		return NewLeaf("", span.Text), nil
	case Bold:
		return NewLeaf("b", span.Text), nil
	case Italic:
		return NewLeaf("i", span.Text), nil
	case Code:
		return NewLeaf("code", span.Text), nil
	case Link:
		return NewLeaf("a", span.Text, Attr{"href", span.Target}), nil
	case Image:
		return NewLeaf("img", "", Attr{"src", span.Target}, Attr{"alt", span.Text}), nil
	default:
		return nil, fmt.Errorf("converting span: unknown kind %v", span.Kind)
	}
}

// textToChildren tokenizes text and converts every span to a leaf.
func textToChildren(text string) ([]Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	children := make([]Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	return children, nil
}
