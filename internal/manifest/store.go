// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records generated pages in a SQLite database so that
// builds which keep the public directory can skip unchanged pages.
package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/site-engine/pkg/types"
)

const dbFile = "manifest.db"

// Store manages the manifest database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates stateDir/manifest.db and its schema.
func NewStore(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pages (
			source_path TEXT PRIMARY KEY,
			output_path TEXT NOT NULL,
			title TEXT NOT NULL,
			source_hash TEXT NOT NULL,
			template_hash TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			built_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_output_path ON pages(output_path)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Unchanged reports whether sourcePath was last built from the same source
// and template and its output file still exists.
func (s *Store) Unchanged(ctx context.Context, sourcePath, sourceHash, templateHash string) (bool, error) {
	var outputPath, storedSource, storedTemplate string
	err := s.db.QueryRowContext(ctx,
		`SELECT output_path, source_hash, template_hash FROM pages WHERE source_path = ?`, sourcePath,
	).Scan(&outputPath, &storedSource, &storedTemplate)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up %s: %w", sourcePath, err)
	}
	if storedSource != sourceHash || storedTemplate != templateHash {
		return false, nil
	}
	if _, err := os.Stat(outputPath); err != nil {
		return false, nil
	}
	return true, nil
}

// Record inserts or replaces the manifest entry for page.SourcePath.
func (s *Store) Record(ctx context.Context, page types.Page) error {
	builtAt := page.BuiltAt
	if builtAt.IsZero() {
		builtAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pages (source_path, output_path, title, source_hash, template_hash, bytes, built_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET
			output_path=excluded.output_path, title=excluded.title,
			source_hash=excluded.source_hash, template_hash=excluded.template_hash,
			bytes=excluded.bytes, built_at=excluded.built_at`,
		page.SourcePath, page.OutputPath, page.Title, page.SourceHash,
		page.TemplateHash, page.Bytes, builtAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", page.SourcePath, err)
	}
	return nil
}

// Remove deletes the entry for sourcePath. Removing a missing entry is not
// an error.
func (s *Store) Remove(ctx context.Context, sourcePath string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE source_path = ?`, sourcePath); err != nil {
		return fmt.Errorf("removing %s: %w", sourcePath, err)
	}
	return nil
}

// Reset deletes every entry. Used when the public directory is cleaned.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pages`); err != nil {
		return fmt.Errorf("resetting manifest: %w", err)
	}
	return nil
}

// List returns all entries ordered by source path.
func (s *Store) List(ctx context.Context) ([]types.Page, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, output_path, title, source_hash, template_hash, bytes, built_at
		 FROM pages ORDER BY source_path`)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer rows.Close()

	var pages []types.Page
	for rows.Next() {
		var p types.Page
		var builtAt string
		if err := rows.Scan(&p.SourcePath, &p.OutputPath, &p.Title, &p.SourceHash,
			&p.TemplateHash, &p.Bytes, &builtAt); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, builtAt); err == nil {
			p.BuiltAt = t
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// ExportYAML writes every entry to path as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	pages, err := s.List(ctx)
	if err != nil {
		return err
	}
	if pages == nil {
		pages = []types.Page{}
	}
	data, err := yaml.Marshal(pages)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
