// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/site-engine/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()
	store, err := NewStore(filepath.Join(tmpDir, ".site-engine"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, tmpDir
}

func writeOutput(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	_, tmpDir := testStore(t)
	_, err := os.Stat(filepath.Join(tmpDir, ".site-engine", dbFile))
	assert.NoError(t, err)
}

func TestUnchanged(t *testing.T) {
	ctx := context.Background()
	store, tmpDir := testStore(t)
	out := filepath.Join(tmpDir, "public", "index.html")
	writeOutput(t, out)

	page := types.Page{
		SourcePath:   "content/index.md",
		OutputPath:   out,
		Title:        "Home",
		SourceHash:   "src1",
		TemplateHash: "tpl1",
		Bytes:        13,
	}

	got, err := store.Unchanged(ctx, page.SourcePath, "src1", "tpl1")
	require.NoError(t, err)
	assert.False(t, got, "unknown page must not be reported unchanged")

	require.NoError(t, store.Record(ctx, page))

	tests := []struct {
		name         string
		sourceHash   string
		templateHash string
		want         bool
	}{
		{"same hashes", "src1", "tpl1", true},
		{"source changed", "src2", "tpl1", false},
		{"template changed", "src1", "tpl2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Unchanged(ctx, page.SourcePath, tt.sourceHash, tt.templateHash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	require.NoError(t, os.Remove(out))
	got, err = store.Unchanged(ctx, page.SourcePath, "src1", "tpl1")
	require.NoError(t, err)
	assert.False(t, got, "missing output must force a rebuild")
}

func TestRecordUpsertAndList(t *testing.T) {
	ctx := context.Background()
	store, _ := testStore(t)

	built := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, types.Page{SourcePath: "b.md", OutputPath: "b.html", Title: "B", SourceHash: "1", TemplateHash: "t", BuiltAt: built}))
	require.NoError(t, store.Record(ctx, types.Page{SourcePath: "a.md", OutputPath: "a.html", Title: "A", SourceHash: "1", TemplateHash: "t", BuiltAt: built}))
	require.NoError(t, store.Record(ctx, types.Page{SourcePath: "b.md", OutputPath: "b.html", Title: "B2", SourceHash: "2", TemplateHash: "t", Bytes: 42, BuiltAt: built}))

	pages, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "a.md", pages[0].SourcePath)
	assert.Equal(t, "B2", pages[1].Title)
	assert.Equal(t, int64(42), pages[1].Bytes)
	assert.True(t, built.Equal(pages[1].BuiltAt))

	require.NoError(t, store.Remove(ctx, "a.md"))
	require.NoError(t, store.Remove(ctx, "does-not-exist.md"))
	pages, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	require.NoError(t, store.Reset(ctx))
	pages, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestExportYAML(t *testing.T) {
	ctx := context.Background()
	store, tmpDir := testStore(t)
	require.NoError(t, store.Record(ctx, types.Page{SourcePath: "index.md", OutputPath: "public/index.html", Title: "Home", SourceHash: "h", TemplateHash: "t"}))

	path := filepath.Join(tmpDir, "export", "pages.yaml")
	require.NoError(t, store.ExportYAML(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var pages []types.Page
	require.NoError(t, yaml.Unmarshal(data, &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "Home", pages[0].Title)
	assert.Equal(t, "public/index.html", pages[0].OutputPath)
}
