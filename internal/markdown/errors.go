// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import "errors"

// Inline errors.
var (
	ErrUnterminatedDelimiter = errors.New("unterminated inline delimiter")
	// ErrUnterminatedReference is kept for callers matching on inline error
	// kinds. The forward reference scan always isolates what it matches and
	// leaves unclosed references as plain text, so Tokenize does not return it.
	ErrUnterminatedReference = errors.New("unterminated image or link reference")
)

// Block errors: the block matched a classification but breaks its line rules.
var (
	ErrInvalidHeading   = errors.New("invalid heading")
	ErrInvalidCodeBlock = errors.New("invalid code block")
	ErrInvalidQuote     = errors.New("invalid quote block")
)

// Render errors.
var (
	ErrEmptyValue    = errors.New("leaf node has no value")
	ErrEmptyChildren = errors.New("branch node has no children")
	ErrMissingTag    = errors.New("branch node has no tag")
)

// ErrMissingTitle is returned by ExtractTitle when no line starts with "# ".
var ErrMissingTitle = errors.New("no title found")
