// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PageStatus indicates the outcome of generating one page.
type PageStatus string

const (
	PageGenerated PageStatus = "generated"
	PageSkipped   PageStatus = "skipped"
	PageFailed    PageStatus = "failed"
)

// Page describes one generated HTML page and where it came from.
type Page struct {
	// SourcePath is the Markdown file the page was built from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the HTML file written to the public directory.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Title is the page title placed into the template.
	Title string `json:"title" yaml:"title"`

	// SourceHash is the SHA-256 of the Markdown source, hex encoded.
	SourceHash string `json:"source_hash" yaml:"source_hash"`

	// TemplateHash is the SHA-256 of the template used, hex encoded.
	TemplateHash string `json:"template_hash" yaml:"template_hash"`

	// Bytes is the size of the written HTML file.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// BuiltAt is when the page was last written.
	BuiltAt time.Time `json:"built_at" yaml:"built_at"`
}
