// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pdiddy/site-engine/internal/manifest"
	"github.com/pdiddy/site-engine/pkg/types"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List pages recorded by the last builds",
	Long: `Pages lists the build manifest: every generated page with its source,
output path, title and size. Use --json for machine-readable output or
--export to write the manifest as YAML.`,
	RunE: runPages,
}

func init() {
	pagesCmd.Flags().Bool("json", false, "output as JSON")
	pagesCmd.Flags().String("export", "", "write the manifest as YAML to this path")

	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	cfg, err := siteConfig()
	if err != nil {
		return err
	}
	store, err := manifest.NewStore(cfg.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if path, _ := cmd.Flags().GetString("export"); path != "" {
		if err := store.ExportYAML(ctx, path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Exported manifest to", path)
		return nil
	}

	pages, err := store.List(ctx)
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatPages(cmd.OutOrStdout(), pages, jsonOutput)
}

func formatPages(w io.Writer, pages []types.Page, jsonOutput bool) error {
	if jsonOutput {
		if pages == nil {
			pages = []types.Page{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	}

	if len(pages) == 0 {
		fmt.Fprintln(w, "No pages recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-30s  %-30s  %-30s  %8s  %s\n", "Source", "Output", "Title", "Size", "Built")
	fmt.Fprintln(w, strings.Repeat("-", 120))
	for _, p := range pages {
		fmt.Fprintf(w, "%-30s  %-30s  %-30s  %8s  %s\n",
			truncate(p.SourcePath, 30), truncate(p.OutputPath, 30), truncate(p.Title, 30),
			humanize.Bytes(uint64(p.Bytes)), humanize.Time(p.BuiltAt))
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
