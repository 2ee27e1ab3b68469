// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site builds a static site: it cleans the public directory, copies
// static assets, and turns every Markdown file under the content directory
// into an HTML page through a template.
//
// Progress is written line by line to the io.Writer in Options. A page that
// fails is reported and counted; the build continues with the next page.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pdiddy/site-engine/pkg/types"
)

// Manifest tracks previously generated pages. *manifest.Store implements it.
type Manifest interface {
	Unchanged(ctx context.Context, sourcePath, sourceHash, templateHash string) (bool, error)
	Record(ctx context.Context, page types.Page) error
	Remove(ctx context.Context, sourcePath string) error
	Reset(ctx context.Context) error
}

// Options configure a build.
type Options struct {
	Config types.SiteConfig
	// Renderer defaults to NativeRenderer.
	Renderer Renderer
	// Manifest is optional; without it every page is regenerated.
	Manifest Manifest
	// Out receives progress lines. Nil discards them.
	Out io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return io.Discard
	}
	return o.Out
}

func (o Options) renderer() Renderer {
	if o.Renderer == nil {
		return NativeRenderer{}
	}
	return o.Renderer
}

// BuildResult holds the outcome of a build.
type BuildResult struct {
	Generated int
	Skipped   int
	Failed    int
	// Bytes counts HTML written plus static assets copied.
	Bytes int64
}

// Total returns the number of content files processed.
func (r BuildResult) Total() int {
	return r.Generated + r.Skipped + r.Failed
}

// HasFailures reports whether any page failed.
func (r BuildResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BuildResult) add(page types.Page, status types.PageStatus) {
	switch status {
	case types.PageGenerated:
		r.Generated++
		r.Bytes += page.Bytes
	case types.PageSkipped:
		r.Skipped++
	case types.PageFailed:
		r.Failed++
	}
}

// Build runs a full build: optional clean, static copy, page generation.
// Errors that prevent the build from starting (bad template, unreadable
// directories) are returned; per-page failures are counted in the result.
func Build(ctx context.Context, opts Options) (BuildResult, error) {
	cfg := opts.Config
	w := opts.out()

	tmpl, err := LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return BuildResult{}, err
	}

	if cfg.Clean {
		if err := CleanDir(cfg.PublicDir, w); err != nil {
			return BuildResult{}, err
		}
		if opts.Manifest != nil {
			if err := opts.Manifest.Reset(ctx); err != nil {
				return BuildResult{}, err
			}
		}
	}
	if err := os.MkdirAll(cfg.PublicDir, 0o755); err != nil {
		return BuildResult{}, fmt.Errorf("creating %s: %w", cfg.PublicDir, err)
	}

	var copied int64
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		if copied, err = CopyStatic(cfg.StaticDir, cfg.PublicDir, w); err != nil {
			return BuildResult{}, err
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "no static directory at %s\n", cfg.StaticDir)
	} else {
		return BuildResult{}, fmt.Errorf("checking static directory: %w", err)
	}

	result, err := GenerateTree(ctx, opts, tmpl)
	result.Bytes += copied

	fmt.Fprintf(w, "\nBuild summary: %d generated, %d skipped, %d failed (total: %d, %s written)\n",
		result.Generated, result.Skipped, result.Failed, result.Total(), humanize.Bytes(uint64(result.Bytes)))
	return result, err
}

// GenerateTree walks the content directory in lexical order and generates a
// page for every Markdown file. Cancelling ctx stops the walk between pages.
func GenerateTree(ctx context.Context, opts Options, tmpl *Template) (BuildResult, error) {
	cfg := opts.Config
	var result BuildResult

	err := filepath.WalkDir(cfg.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		dst, err := OutputPath(cfg.ContentDir, cfg.PublicDir, path)
		if err != nil {
			return err
		}
		page, status := GeneratePage(ctx, opts, tmpl, path, dst)
		result.add(page, status)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("walking %s: %w", cfg.ContentDir, err)
	}
	return result, nil
}

// GeneratePage renders the Markdown file src into dst through tmpl and
// returns the page record with its status. When the build keeps the public
// directory and the manifest shows src and tmpl unchanged, the page is
// skipped. Draft pages are always skipped. A draft or failed page loses any
// output and manifest entry left by an earlier build.
func GeneratePage(ctx context.Context, opts Options, tmpl *Template, src, dst string) (types.Page, types.PageStatus) {
	w := opts.out()
	page := types.Page{SourcePath: src, OutputPath: dst, TemplateHash: tmpl.Hash()}

	fail := func(err error) (types.Page, types.PageStatus) {
		fmt.Fprintf(w, "failed:  %s (%v)\n", src, err)
		retract(ctx, opts, src, dst)
		return page, types.PageFailed
	}

	source, err := os.ReadFile(src)
	if err != nil {
		return fail(err)
	}
	page.SourceHash = hashBytes(source)

	if !opts.Config.Clean && opts.Manifest != nil {
		unchanged, err := opts.Manifest.Unchanged(ctx, src, page.SourceHash, page.TemplateHash)
		if err != nil {
			return fail(err)
		}
		if unchanged {
			fmt.Fprintf(w, "skipped: %s (unchanged)\n", src)
			return page, types.PageSkipped
		}
	}

	meta, body, err := ParsePage(source)
	if err != nil {
		return fail(err)
	}
	if meta.Draft {
		fmt.Fprintf(w, "skipped: %s (draft)\n", src)
		retract(ctx, opts, src, dst)
		return page, types.PageSkipped
	}

	page.Title, err = PageTitle(meta, body)
	if err != nil {
		return fail(err)
	}
	content, err := opts.renderer().Render(body)
	if err != nil {
		return fail(err)
	}
	html := tmpl.Fill(page.Title, content)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fail(err)
	}
	if err := os.WriteFile(dst, []byte(html), 0o644); err != nil {
		return fail(err)
	}
	page.Bytes = int64(len(html))
	page.BuiltAt = time.Now().UTC()

	if opts.Manifest != nil {
		if err := opts.Manifest.Record(ctx, page); err != nil {
			fmt.Fprintf(w, "warning: manifest update failed for %s: %v\n", src, err)
		}
	}

	fmt.Fprintf(w, "generated: %s -> %s\n", src, dst)
	return page, types.PageGenerated
}

// retract deletes dst and the manifest entry for src.
func retract(ctx context.Context, opts Options, src, dst string) {
	w := opts.out()
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "warning: removing %s: %v\n", dst, err)
	}
	if opts.Manifest != nil {
		if err := opts.Manifest.Remove(ctx, src); err != nil {
			fmt.Fprintf(w, "warning: manifest update failed for %s: %v\n", src, err)
		}
	}
}
