// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/site-engine/internal/markdown"
)

// markdownExts lists the content file extensions converted into pages.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// PageMeta is the optional front matter at the top of a content file.
type PageMeta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Draft bool   `yaml:"draft" toml:"draft" json:"draft"`
}

// ParsePage splits source into front matter and Markdown body. Sources
// without front matter return a zero PageMeta and the whole input.
func ParsePage(source []byte) (PageMeta, string, error) {
	var meta PageMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return PageMeta{}, "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, string(body), nil
}

// PageTitle returns the front matter title when set, otherwise the first
// "# " heading of body.
func PageTitle(meta PageMeta, body string) (string, error) {
	if meta.Title != "" {
		return meta.Title, nil
	}
	return markdown.ExtractTitle(body)
}

// OutputPath maps a content file to its HTML file under publicDir, keeping
// the path relative to contentDir.
func OutputPath(contentDir, publicDir, src string) (string, error) {
	rel, err := filepath.Rel(contentDir, src)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", src, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", src, contentDir)
	}
	return filepath.Join(publicDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html"), nil
}

func isMarkdown(path string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(path))]
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hashString(s string) string {
	return hashBytes([]byte(s))
}
