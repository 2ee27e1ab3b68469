// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/pdiddy/site-engine/internal/markdown"
	"github.com/pdiddy/site-engine/internal/site"
	"github.com/pdiddy/site-engine/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render one Markdown file to an HTML fragment",
	Long: `Render converts a single Markdown file (or standard input) and prints the
HTML fragment. Front matter is stripped first. With --dump the native node
tree is printed instead of markup.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var titleCmd = &cobra.Command{
	Use:   "title [file]",
	Short: "Print the title of a Markdown file",
	Long: `Title prints the front matter title of a Markdown file (or standard input),
falling back to the first line that starts with "# ".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTitle,
}

func init() {
	renderCmd.Flags().String("engine", string(types.EngineNative), "markdown engine: native or goldmark")
	renderCmd.Flags().Bool("dump", false, "print the node tree instead of HTML (native engine only)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(titleCmd)
}

// readSource reads the named file, or standard input when args is empty.
func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	_, body, err := site.ParsePage(source)
	if err != nil {
		return err
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		root, err := markdown.Convert(body)
		if err != nil {
			return err
		}
		pp.ColoringEnabled = false
		_, err = pp.Fprintln(cmd.OutOrStdout(), root)
		return err
	}

	engine, _ := cmd.Flags().GetString("engine")
	renderer, err := site.NewRenderer(types.Engine(engine))
	if err != nil {
		return err
	}
	html, err := renderer.Render(body)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}

func runTitle(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	meta, body, err := site.ParsePage(source)
	if err != nil {
		return err
	}
	title, err := site.PageTitle(meta, body)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), title)
	return nil
}
