// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"testing"
)

const jsonLDArticle = `<html>
<head>
<script type="application/ld+json">
{
  "@type": "Article",
  "headline": "The Tyranny of Now",
  "author": [{"name": "Nicholas  Carr"}],
  "datePublished": "2025-01-15"
}
</script>
</head>
<body></body>
</html>`

func TestExtractJSONLD(t *testing.T) {
	m := Extract(jsonLDArticle)

	if m.Title != "The Tyranny of Now" {
		t.Errorf("Title = %q, want %q", m.Title, "The Tyranny of Now")
	}
	// Whitespace run inside the name collapses to a single space.
	if want := []string{"Nicholas Carr"}; !reflect.DeepEqual(m.Authors, want) {
		t.Errorf("Authors = %v, want %v", m.Authors, want)
	}
	if m.DatePublished != "2025-01-15" {
		t.Errorf("DatePublished = %q, want %q", m.DatePublished, "2025-01-15")
	}
	if m.Publication != "The New Atlantis" {
		t.Errorf("Publication = %q, want %q", m.Publication, "The New Atlantis")
	}
}

func TestExtractJSONLDSingleAuthorObject(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Article", "headline": "Test Article", "author": {"name": "John Doe"}, "datePublished": "2025-01-15"}
	</script></head><body></body></html>`

	m := Extract(html)

	if m.Title != "Test Article" {
		t.Errorf("Title = %q, want %q", m.Title, "Test Article")
	}
	if want := []string{"John Doe"}; !reflect.DeepEqual(m.Authors, want) {
		t.Errorf("Authors = %v, want %v", m.Authors, want)
	}
}

func TestExtractMalformedJSONLDSkipped(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{not valid json</script>
	<script type="application/ld+json">{"@type": "Article", "headline": "Second Block Wins", "author": [{"name": "Ada Lovelace"}]}</script>
	</head><body></body></html>`

	m := Extract(html)

	if m.Title != "Second Block Wins" {
		t.Errorf("Title = %q, want %q", m.Title, "Second Block Wins")
	}
	if want := []string{"Ada Lovelace"}; !reflect.DeepEqual(m.Authors, want) {
		t.Errorf("Authors = %v, want %v", m.Authors, want)
	}
}

func TestExtractNonArticleJSONLDIgnored(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type": "WebSite", "headline": "Not An Article"}</script>
	</head><body><h1>Heading Title</h1></body></html>`

	m := Extract(html)

	if m.Title != "Heading Title" {
		t.Errorf("Title = %q, want %q", m.Title, "Heading Title")
	}
}

func TestExtractTitleFallback(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"h1 preferred over title",
			`<html><head><title>HTML Title</title></head><body><h1>Article Title from H1</h1></body></html>`,
			"Article Title from H1",
		},
		{
			"title element when no h1",
			`<html><head><title>HTML Title</title></head><body></body></html>`,
			"HTML Title",
		},
		{
			"no title at all",
			`<html><body><p>Nothing here</p></body></html>`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.html)
			if m.Title != tt.want {
				t.Errorf("Title = %q, want %q", m.Title, tt.want)
			}
		})
	}
}

func TestExtractBylineFallback(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			"by prefix stripped",
			`<html><body><div class="author-byline">By Jane Smith</div></body></html>`,
			[]string{"Jane Smith"},
		},
		{
			"author colon prefix stripped",
			`<html><body><span class="post-author">Author: John Writer</span></body></html>`,
			[]string{"John Writer"},
		},
		{
			"case-insensitive class match",
			`<html><body><div class="ArticleByline">BY ALICE JONES</div></body></html>`,
			[]string{"ALICE JONES"},
		},
		{
			"whitespace collapsed",
			`<html><body><div class="byline">By   Jane
			Smith</div></body></html>`,
			[]string{"Jane Smith"},
		},
		{
			"no byline element",
			`<html><body><div class="content">By Nobody</div></body></html>`,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.html)
			if !reflect.DeepEqual(m.Authors, tt.want) {
				t.Errorf("Authors = %v, want %v", m.Authors, tt.want)
			}
		})
	}
}

func TestExtractJSONLDAuthorsSuppressByline(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type": "Article", "headline": "T", "author": [{"name": "Structured Author"}]}</script>
	</head><body><div class="byline">By Byline Author</div></body></html>`

	m := Extract(html)

	if want := []string{"Structured Author"}; !reflect.DeepEqual(m.Authors, want) {
		t.Errorf("Authors = %v, want %v", m.Authors, want)
	}
}

func TestExtractExplicitIssueNumber(t *testing.T) {
	html := `<html><body>
	<h1>Some Article</h1>
	<p>No. 82 (Fall 2025)</p>
	</body></html>`

	m := Extract(html)

	if m.IssueNumber != "82" {
		t.Errorf("IssueNumber = %q, want %q", m.IssueNumber, "82")
	}
	if m.IssueSeason != "Fall 2025" {
		t.Errorf("IssueSeason = %q, want %q", m.IssueSeason, "Fall 2025")
	}
}

// An explicit "No. N (...)" reference wins even when a different season
// mention appears elsewhere on the page.
func TestExtractExplicitIssueBeatsInference(t *testing.T) {
	html := `<html><body>
	<p>First published Winter 2020.</p>
	<p>No. 99 (Summer 2030)</p>
	</body></html>`

	m := Extract(html)

	if m.IssueNumber != "99" {
		t.Errorf("IssueNumber = %q, want %q", m.IssueNumber, "99")
	}
	if m.IssueSeason != "Summer 2030" {
		t.Errorf("IssueSeason = %q, want %q", m.IssueSeason, "Summer 2030")
	}
}

func TestExtractIssueInference(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		wantNumber string
		wantSeason string
	}{
		{
			"season then year",
			`<html><body><p>From the Winter 2025 issue.</p></body></html>`,
			"79",
			"Winter 2025",
		},
		{
			"year then season",
			`<html><body><p>Published in the 2025 Summer issue.</p></body></html>`,
			"81",
			"Summer 2025",
		},
		{
			"autumn synonym",
			`<html><body><p>Autumn 2024</p></body></html>`,
			"78",
			"Autumn 2024",
		},
		{
			"lowercase season",
			`<html><body><p>the winter 2025 number</p></body></html>`,
			"79",
			"winter 2025",
		},
		{
			"no season mention",
			`<html><body><p>Published some time ago.</p></body></html>`,
			"",
			"",
		},
		{
			"bare No. without parenthetical falls back to inference",
			`<html><body><p>See No. 12 of the series.</p><p>Winter 2025</p></body></html>`,
			"79",
			"Winter 2025",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.html)
			if m.IssueNumber != tt.wantNumber {
				t.Errorf("IssueNumber = %q, want %q", m.IssueNumber, tt.wantNumber)
			}
			if m.IssueSeason != tt.wantSeason {
				t.Errorf("IssueSeason = %q, want %q", m.IssueSeason, tt.wantSeason)
			}
		})
	}
}

func TestExtractSeasonInsideScriptIgnored(t *testing.T) {
	html := `<html><head>
	<script>var issue = "Winter 2025";</script>
	</head><body><p>No season in the page text.</p></body></html>`

	m := Extract(html)

	if m.IssueNumber != "" {
		t.Errorf("IssueNumber = %q, want empty", m.IssueNumber)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	m := Extract("")

	if m.Title != "" || len(m.Authors) != 0 || m.IssueNumber != "" {
		t.Errorf("Extract(\"\") populated fields: %+v", m)
	}
	if m.Publication != "The New Atlantis" {
		t.Errorf("Publication = %q, want %q", m.Publication, "The New Atlantis")
	}
}

// A realistic page exercising the full chain at once.
func TestExtractFullPage(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
<title>The Tyranny of Now - The New Atlantis</title>
<script type="application/ld+json">
{
  "@type": "Article",
  "headline": "The Tyranny of Now",
  "author": [{"name": "Nicholas Carr"}],
  "datePublished": "2025-01-15T00:00:00Z"
}
</script>
</head>
<body>
<h1>The Tyranny of Now</h1>
<div class="article-byline">By Nicholas Carr</div>
<div class="issue-ref">No. 79 (Winter 2025)</div>
<p>Article body text mentioning Spring 2010 in passing.</p>
</body>
</html>`

	m := Extract(html)

	if m.Title != "The Tyranny of Now" {
		t.Errorf("Title = %q", m.Title)
	}
	if want := []string{"Nicholas Carr"}; !reflect.DeepEqual(m.Authors, want) {
		t.Errorf("Authors = %v, want %v", m.Authors, want)
	}
	if m.DatePublished != "2025-01-15T00:00:00Z" {
		t.Errorf("DatePublished = %q", m.DatePublished)
	}
	if m.IssueNumber != "79" || m.IssueSeason != "Winter 2025" {
		t.Errorf("issue = %q (%q), want 79 (Winter 2025)", m.IssueNumber, m.IssueSeason)
	}
}
