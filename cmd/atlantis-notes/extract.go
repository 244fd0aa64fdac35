package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/atlantis-notes/internal/extract"
	"github.com/pdiddy/atlantis-notes/internal/fetch"
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Print extracted article metadata as YAML or JSON",
	Long: `Extract fetches an article and prints the raw extracted metadata instead
of the formatted note header. Useful for inspecting what the fallback
chain found on a page.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("json", false, "output metadata as JSON")
	extractCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	extractCmd.Flags().String("user-agent", "", "User-Agent header for the article fetch")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	warnForeignHost(args[0], cfg.PublicationDomain, os.Stderr)

	client := &http.Client{Timeout: cfg.Timeout}
	htmlContent, err := fetch.Fetch(client, args[0], cfg)
	if err != nil {
		return fmt.Errorf("fetching article: %w", err)
	}

	meta := extract.Extract(htmlContent)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(meta)
}
