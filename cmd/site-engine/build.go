// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/site-engine/internal/manifest"
	"github.com/pdiddy/site-engine/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into the public directory",
	Long: `Build deletes the public directory (unless --clean=false), copies the
static directory into it, and generates one HTML page per Markdown file in the
content directory. A page that fails to convert is reported and the build
continues; the command exits non-zero if any page failed.

With --clean=false, pages whose source and template are unchanged since the
previous build are skipped.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("content", "", "directory of Markdown sources (default content)")
	buildCmd.Flags().String("static", "", "directory of static assets (default static)")
	buildCmd.Flags().String("public", "", "output directory (default public)")
	buildCmd.Flags().String("template", "", "HTML template file (default template.html)")
	buildCmd.Flags().String("engine", "", "markdown engine: native or goldmark (default native)")
	buildCmd.Flags().Bool("clean", true, "delete the public directory before building")

	for key, flag := range map[string]string{
		"content_dir": "content",
		"static_dir":  "static",
		"public_dir":  "public",
		"template":    "template",
		"engine":      "engine",
		"clean":       "clean",
	} {
		cobra.CheckErr(viper.BindPFlag(key, buildCmd.Flags().Lookup(flag)))
	}

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := siteConfig()
	if err != nil {
		return err
	}

	renderer, err := site.NewRenderer(cfg.Engine)
	if err != nil {
		return err
	}

	store, err := manifest.NewStore(cfg.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := site.Build(cmd.Context(), site.Options{
		Config:   cfg,
		Renderer: renderer,
		Manifest: store,
		Out:      os.Stdout,
	})
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d page(s) failed", result.Failed)
	}
	return nil
}
