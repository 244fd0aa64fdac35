// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note renders extracted article metadata as a Markdown note header.
package note

import (
	"strings"
	"time"

	"github.com/pdiddy/atlantis-notes/pkg/types"
)

// Defaults substituted when extraction produced no usable field.
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// FormatHeader renders the YAML front-matter block followed by a blank
// line and the "## Notes" marker. creationDate stamps the header as-is;
// when empty, today's date in YYYY-MM-DD is used. Field order is fixed,
// and the periodical-edition line appears only when both issue number and
// season were extracted.
func FormatHeader(m types.Metadata, creationDate string) string {
	if creationDate == "" {
		creationDate = time.Now().Format("2006-01-02")
	}

	title := m.Title
	if title == "" {
		title = UnknownTitle
	}
	authors := m.Authors
	if len(authors) == 0 {
		authors = []string{UnknownAuthor}
	}
	publication := m.Publication
	if publication == "" {
		publication = types.PublicationName
	}

	lines := []string{
		"---",
		"title: " + title,
		"author:",
	}
	for _, a := range authors {
		lines = append(lines, "  - "+a)
	}
	lines = append(lines,
		"format: journal article",
		"creation-date: "+creationDate,
		"publication: "+publication,
	)
	if m.HasEdition() {
		lines = append(lines, "periodical-edition: No. "+m.IssueNumber+" ("+m.IssueSeason+")")
	}
	lines = append(lines, "---", "", "## Notes")

	return strings.Join(lines, "\n")
}
