// Package jdtext cleans pasted job-description input before analysis.
// Copy-pasting from job boards often drags HTML along; extraction expects
// plain text. Cleaning is fully offline and deterministic.
package jdtext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagPattern        = regexp.MustCompile(`<\s*(?i:html|body|div|p|br|span|ul|li|h[1-6]|section|article)[\s>/]`)
	whitespacePattern = regexp.MustCompile(`[ \t]+`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// Clean returns plain JD text. HTML-looking input is parsed and reduced to
// its text content with script/style/nav noise removed; plain text passes
// through with whitespace normalized. Unparseable HTML falls back to the
// raw input so analysis always has something to work with.
func Clean(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if !looksLikeHTML(trimmed) {
		return normalizeWhitespace(trimmed)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return normalizeWhitespace(trimmed)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	// Keep block boundaries as line breaks so list items stay separated.
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := doc.Text()
	return normalizeWhitespace(text)
}

// looksLikeHTML is a cheap structural sniff: a known block tag, not just
// any angle bracket ("<200 employees" is prose, not markup).
func looksLikeHTML(s string) bool {
	return tagPattern.MatchString(s)
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = whitespacePattern.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankLinesPattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
