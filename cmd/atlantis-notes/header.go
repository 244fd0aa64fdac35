package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/atlantis-notes/internal/extract"
	"github.com/pdiddy/atlantis-notes/internal/fetch"
	"github.com/pdiddy/atlantis-notes/internal/note"
	"github.com/pdiddy/atlantis-notes/pkg/types"
)

const (
	defaultTimeout = 30 * time.Second
	defaultDomain  = "thenewatlantis.com"

	// The site serves article pages to browser user agents.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

func init() {
	rootCmd.Flags().String("creation-date", "", "override the creation date stamp (YYYY-MM-DD)")
	rootCmd.Flags().String("output", "", "write the header to a file instead of stdout")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().String("user-agent", "", "User-Agent header for the article fetch")
}

// fetchConfig assembles fetch settings from flags, the config file, and
// built-in defaults, in that precedence order.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent, _ := cmd.Flags().GetString("user-agent")
	if userAgent == "" {
		userAgent = viper.GetString("user_agent")
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	domain := viper.GetString("publication_domain")
	if domain == "" {
		domain = defaultDomain
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		PublicationDomain: domain,
	}
}

// warnForeignHost warns (and proceeds) when the URL does not look like an
// article from the expected publication.
func warnForeignHost(rawURL, domain string, w io.Writer) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || !strings.Contains(u.Host, domain) {
		fmt.Fprintf(w, "Warning: URL doesn't appear to be from %s\n", types.PublicationName)
	}
}

func runHeader(cmd *cobra.Command, args []string) error {
	articleURL := args[0]
	cfg := fetchConfig(cmd)

	warnForeignHost(articleURL, cfg.PublicationDomain, os.Stderr)

	client := &http.Client{Timeout: cfg.Timeout}
	htmlContent, err := fetch.Fetch(client, articleURL, cfg)
	if err != nil {
		return fmt.Errorf("fetching article: %w", err)
	}

	meta := extract.Extract(htmlContent)

	creationDate, _ := cmd.Flags().GetString("creation-date")
	header := note.FormatHeader(meta, creationDate)

	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		if err := os.WriteFile(outPath, []byte(header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), header)
	return nil
}
