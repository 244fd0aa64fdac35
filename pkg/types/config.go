package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for fetching a single article page.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PublicationDomain is the host substring expected in article URLs.
	// A URL whose host does not contain it draws a warning but is still
	// fetched.
	PublicationDomain string `json:"publication_domain" yaml:"publication_domain"`
}
