// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls bibliographic metadata out of an article page.
// It applies an ordered fallback chain: JSON-LD structured data first,
// then loose HTML patterns for whatever the structured data lacked.
package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pdiddy/atlantis-notes/internal/edition"
	"github.com/pdiddy/atlantis-notes/pkg/types"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	bylinePrefix  = regexp.MustCompile(`(?i)^(by|author:?)\s*`)
	bylineClass   = regexp.MustCompile(`(?i)author|byline`)

	// An explicit issue reference, e.g. "No. 79 (Winter 2025)". The bare
	// marker locates the text node; the full pattern captures number and
	// season from it.
	issueMarker = regexp.MustCompile(`No\.\s*\d+`)
	issueFull   = regexp.MustCompile(`No\.\s*(\d+)\s*\(([^)]+)\)`)

	// Season and year in either word order, for issue inference when no
	// explicit reference exists.
	seasonYear = regexp.MustCompile(`(?i)(Winter|Spring|Summer|Fall|Autumn)\s+(\d{4})`)
	yearSeason = regexp.MustCompile(`(?i)(\d{4})\s+(Winter|Spring|Summer|Fall|Autumn)`)
)

// Extract parses htmlContent and returns whatever metadata the fallback
// chain could populate. It never fails: malformed HTML and malformed
// JSON-LD degrade to the next tier or to absent fields. The publication
// name is always set.
func Extract(htmlContent string) types.Metadata {
	m := types.Metadata{Publication: types.PublicationName}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return m
	}

	fromJSONLD(doc, &m)

	if m.Title == "" {
		if h1 := doc.Find("h1").First(); h1.Length() > 0 {
			m.Title = strings.TrimSpace(h1.Text())
		} else if title := doc.Find("title").First(); title.Length() > 0 {
			m.Title = strings.TrimSpace(title.Text())
		}
	}

	if len(m.Authors) == 0 {
		if byline := findByClass(doc, bylineClass); byline != nil {
			text := strings.TrimSpace(byline.Text())
			text = bylinePrefix.ReplaceAllString(text, "")
			text = whitespaceRun.ReplaceAllString(text, " ")
			m.Authors = []string{text}
		}
	}

	// An explicit "No. N (season year)" reference is authoritative.
	if text, ok := findText(doc, issueMarker); ok {
		if groups := issueFull.FindStringSubmatch(text); groups != nil {
			m.IssueNumber = groups[1]
			m.IssueSeason = groups[2]
		}
	}

	if m.IssueNumber == "" {
		inferIssue(doc, &m)
	}

	return m
}

// articleData mirrors the JSON-LD fields the chain consumes. Author is
// kept raw because pages emit both a single object and an array.
type articleData struct {
	Type          string          `json:"@type"`
	Headline      string          `json:"headline"`
	Author        json.RawMessage `json:"author"`
	DatePublished string          `json:"datePublished"`
}

type articleAuthor struct {
	Name string `json:"name"`
}

// fromJSONLD fills m from the first JSON-LD script block describing an
// Article. Blocks that fail to parse or describe something else are
// skipped silently.
func fromJSONLD(doc *goquery.Document, m *types.Metadata) {
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data articleData
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		if data.Type != "Article" {
			return true
		}

		m.Title = strings.TrimSpace(data.Headline)
		for _, a := range parseAuthors(data.Author) {
			if a.Name == "" {
				continue
			}
			name := whitespaceRun.ReplaceAllString(strings.TrimSpace(a.Name), " ")
			m.Authors = append(m.Authors, name)
		}
		m.DatePublished = data.DatePublished
		return false
	})
}

// parseAuthors accepts the author field as either a single object or an
// array of objects.
func parseAuthors(raw json.RawMessage) []articleAuthor {
	if len(raw) == 0 {
		return nil
	}
	var one articleAuthor
	if err := json.Unmarshal(raw, &one); err == nil {
		return []articleAuthor{one}
	}
	var many []articleAuthor
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}

// findByClass returns the first element in document order whose class
// attribute matches re, or nil.
func findByClass(doc *goquery.Document, re *regexp.Regexp) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if re.MatchString(class) {
			found = s
			return false
		}
		return true
	})
	return found
}

// inferIssue looks for a bare season+year mention and records the inferred
// issue number. The first pattern that matches a text node settles the
// search, whether or not inference succeeds on it.
func inferIssue(doc *goquery.Document, m *types.Metadata) {
	for _, re := range []*regexp.Regexp{seasonYear, yearSeason} {
		text, ok := findText(doc, re)
		if !ok {
			continue
		}
		groups := re.FindStringSubmatch(text)

		var season, year string
		if isDigits(groups[1]) {
			year, season = groups[1], groups[2]
		} else {
			season, year = groups[1], groups[2]
		}

		if n, ok := edition.InferFromStrings(season, year); ok {
			m.IssueNumber = strconv.Itoa(n)
			m.IssueSeason = season + " " + year
		}
		return
	}
}

// findText returns the first text node in document order whose contents
// match re. Script and style contents are skipped so the JSON-LD payload
// cannot satisfy a page-text pattern.
func findText(doc *goquery.Document, re *regexp.Regexp) (string, bool) {
	for _, n := range doc.Nodes {
		if s, ok := findTextNode(n, re); ok {
			return s, true
		}
	}
	return "", false
}

func findTextNode(n *html.Node, re *regexp.Regexp) (string, bool) {
	if n.Type == html.TextNode {
		if re.MatchString(n.Data) {
			return n.Data, true
		}
		return "", false
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return "", false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s, ok := findTextNode(c, re); ok {
			return s, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
