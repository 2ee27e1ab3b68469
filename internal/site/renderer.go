// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/pdiddy/site-engine/internal/markdown"
	"github.com/pdiddy/site-engine/pkg/types"
)

// Renderer turns a Markdown body into an HTML fragment. Different engines
// (native, goldmark) implement this interface.
type Renderer interface {
	// Render converts source and returns the markup.
	Render(source string) (string, error)
}

// NativeRenderer renders with the restricted dialect in internal/markdown.
type NativeRenderer struct{}

// Render converts source into a "div"-wrapped fragment.
func (NativeRenderer) Render(source string) (string, error) {
	return markdown.ToHTML(source)
}

// GoldmarkRenderer renders CommonMark with GitHub extensions. Raw HTML in
// the source is passed through.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer returns a renderer with GFM extensions and automatic
// heading IDs enabled.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts source with goldmark.
func (g *GoldmarkRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return buf.String(), nil
}

// NewRenderer returns the renderer for engine. An empty engine selects the
// native renderer.
func NewRenderer(engine types.Engine) (Renderer, error) {
	switch engine {
	case types.EngineNative, "":
		return NativeRenderer{}, nil
	case types.EngineGoldmark:
		return NewGoldmarkRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q: want %s or %s", engine, types.EngineNative, types.EngineGoldmark)
	}
}
