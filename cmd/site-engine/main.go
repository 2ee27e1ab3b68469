// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the site-engine CLI.
// Subcommands: build, render, title, pages, version.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/site-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the site-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "site-engine",
	Short: "Generate a static site from Markdown",
	Long: `site-engine turns a directory of Markdown files into HTML pages.

The build command deletes the public directory, copies static assets into it,
and renders every Markdown file under the content directory through an HTML
template containing {{ Title }} and {{ Content }} placeholders.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./site-engine.yaml or ~/.config/site-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("site-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "site-engine"))
		}
	}

	defaults := types.DefaultSiteConfig()
	viper.SetDefault("content_dir", defaults.ContentDir)
	viper.SetDefault("static_dir", defaults.StaticDir)
	viper.SetDefault("public_dir", defaults.PublicDir)
	viper.SetDefault("template", defaults.TemplatePath)
	viper.SetDefault("engine", string(defaults.Engine))
	viper.SetDefault("clean", defaults.Clean)
	viper.SetDefault("state_dir", defaults.StateDir)

	viper.SetEnvPrefix("SITE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// siteConfig assembles the effective configuration from defaults, config
// file, environment and bound flags.
func siteConfig() (types.SiteConfig, error) {
	var cfg types.SiteConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.SiteConfig{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
