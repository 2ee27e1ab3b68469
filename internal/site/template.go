// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"fmt"
	"os"
	"strings"
)

// Template placeholders. Every occurrence is replaced.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Template is an HTML page skeleton with title and content placeholders.
type Template struct {
	text string
	hash string
}

// LoadTemplate reads and validates the template at path.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	tmpl, err := ParseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}

// ParseTemplate validates text as a template. It must contain the content
// placeholder; the title placeholder is optional.
func ParseTemplate(text string) (*Template, error) {
	if !strings.Contains(text, ContentPlaceholder) {
		return nil, fmt.Errorf("missing %s placeholder", ContentPlaceholder)
	}
	return &Template{text: text, hash: hashString(text)}, nil
}

// Fill substitutes title, then content, into the template.
func (t *Template) Fill(title, content string) string {
	out := strings.ReplaceAll(t.text, TitlePlaceholder, title)
	return strings.ReplaceAll(out, ContentPlaceholder, content)
}

// Hash identifies the template text for incremental builds.
func (t *Template) Hash() string {
	return t.hash
}
