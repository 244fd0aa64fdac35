// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves a single article page over HTTP.
package fetch

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/atlantis-notes/pkg/types"
)

// Fetch performs one GET of url and returns the response body as a
// string. It sends the configured User-Agent and treats any non-2xx
// status as an error. No retries; the caller's client controls the
// timeout.
func Fetch(client *http.Client, url string, cfg types.FetchConfig) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}
