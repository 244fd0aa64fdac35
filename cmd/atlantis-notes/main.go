// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the atlantis-notes CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd generates a note header for a single article URL.
var rootCmd = &cobra.Command{
	Use:   "atlantis-notes <url>",
	Short: "Generate Markdown note headers for The New Atlantis articles",
	Long: `atlantis-notes fetches a single article from The New Atlantis, extracts
bibliographic metadata (title, authors, publication date, issue), and prints
a Markdown front-matter header ready for note-taking.

When the page does not state its issue number, the number is inferred from
a season and year mention using the quarterly publication schedule.`,
	Args: cobra.ExactArgs(1),
	RunE: runHeader,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./atlantis-notes.yaml or ~/.config/atlantis-notes/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("atlantis-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "atlantis-notes"))
		}
	}

	viper.SetEnvPrefix("ATLANTIS_NOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
