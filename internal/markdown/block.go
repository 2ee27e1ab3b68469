// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strconv"
	"strings"
)

// BlockKind is the structural type of a block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	OrderedList
	UnorderedList
	Quote
)

var blockKindNames = []string{
	Paragraph:     "Paragraph",
	Heading:       "Heading",
	CodeBlock:     "Code",
	OrderedList:   "OrderedList",
	UnorderedList: "UnorderedList",
	Quote:         "Quote",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "BlockKind(" + strconv.Itoa(int(k)) + ")"
}

const (
	blockSeparator = "\n\n"
	fence          = "```"
	maxHeading     = 6
)

// unorderedMarkers are the accepted bullet prefixes. A list uses one marker
// for all of its lines.
var unorderedMarkers = []string{"* ", "- "}

// Segment splits a document into trimmed, non-empty blocks separated by a
// blank line. Block order follows the document.
func Segment(doc string) []string {
	doc = normalizeNewlines(doc)
	var blocks []string
	for _, piece := range strings.Split(doc, blockSeparator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		blocks = append(blocks, piece)
	}
	return blocks
}

// Classify returns the block kind. Checks run Code, Heading, Quote,
// UnorderedList, OrderedList; anything else is a Paragraph.
func Classify(block string) BlockKind {
	lines := strings.Split(block, "\n")

	if len(lines) > 1 && strings.HasPrefix(lines[0], fence) && strings.HasPrefix(lines[len(lines)-1], fence) {
		return CodeBlock
	}
	if headingLevel(block) > 0 {
		return Heading
	}
	if strings.HasPrefix(block, ">") {
		if allHavePrefix(lines, ">") {
			return Quote
		}
		return Paragraph
	}
	for _, marker := range unorderedMarkers {
		if strings.HasPrefix(block, marker) {
			if allHavePrefix(lines, marker) {
				return UnorderedList
			}
			return Paragraph
		}
	}
	if strings.HasPrefix(block, orderedMarker(1)) {
		for i, line := range lines {
			if !strings.HasPrefix(line, orderedMarker(i+1)) {
				return Paragraph
			}
		}
		return OrderedList
	}
	return Paragraph
}

// headingLevel returns n when block starts with n '#' (1..6) and a space,
// and 0 otherwise.
func headingLevel(block string) int {
	for level := 1; level <= maxHeading; level++ {
		if strings.HasPrefix(block, strings.Repeat("#", level)+" ") {
			return level
		}
	}
	return 0
}

func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
