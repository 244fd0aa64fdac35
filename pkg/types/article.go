// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PublicationName is the periodical this tool targets. Extraction stamps
// it on every record regardless of page content.
const PublicationName = "The New Atlantis"

// Metadata holds the bibliographic fields extracted from one article page.
// Fields left unset mean the corresponding heuristic tier found nothing;
// the formatter substitutes documented defaults.
type Metadata struct {
	// Title is the article headline.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors lists author names in source order, whitespace-normalized.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// DatePublished is the raw publication date string from the page's
	// structured data, kept verbatim.
	DatePublished string `json:"date_published,omitempty" yaml:"date_published,omitempty"`

	// Publication is the periodical name (always PublicationName).
	Publication string `json:"publication" yaml:"publication"`

	// IssueNumber is the periodical issue number, either stated on the
	// page or inferred from a season and year.
	IssueNumber string `json:"issue_number,omitempty" yaml:"issue_number,omitempty"`

	// IssueSeason is the season label for the issue (e.g. "Winter 2025").
	IssueSeason string `json:"issue_season,omitempty" yaml:"issue_season,omitempty"`
}

// HasEdition reports whether both issue fields were extracted, which is
// what the formatter requires before it emits a periodical-edition line.
func (m Metadata) HasEdition() bool {
	return m.IssueNumber != "" && m.IssueSeason != ""
}
