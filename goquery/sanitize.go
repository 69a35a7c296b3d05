package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Sanitize flattens a DOM subtree into deduplicated, newline-joined plain
// text. List items are preferred over paragraph/div granularity, which is
// preferred over the raw subtree text. Line-break tags are rewritten to
// newline text nodes first so visual breaks survive whitespace collapsing.
//
// Sanitize never fails; it returns an empty string for empty input.
func Sanitize(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}

	// Work on a clone: the page snapshot must never be mutated.
	clone := sel.Clone()
	breaksToNewlines(clone)

	if items := clone.Find("li"); items.Length() > 0 {
		return joinUnique(collectText(items))
	}

	blocks := clone.Find("p")
	if blocks.Length() == 0 {
		blocks = clone.ChildrenFiltered("div")
	}
	if blocks.Length() > 0 {
		return joinUnique(collectText(blocks))
	}

	return collapseText(clone.Text())
}

// breaksToNewlines replaces every <br> in the selection with a newline
// text node.
func breaksToNewlines(sel *goquery.Selection) {
	sel.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})
}

// collectText returns the collapsed text of each element, skipping empties.
func collectText(sel *goquery.Selection) []string {
	var texts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if t := collapseText(s.Text()); t != "" {
			texts = append(texts, t)
		}
	})
	return texts
}

// joinUnique deduplicates while preserving first-occurrence order, then
// joins with newlines.
func joinUnique(texts []string) string {
	seen := make(map[string]bool, len(texts))
	var out []string
	for _, t := range texts {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return strings.Join(out, "\n")
}

// collapseText collapses runs of horizontal whitespace to single spaces and
// runs of blank lines to a single newline, trimming the result.
func collapseText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// normalizeText lowercases and collapses whitespace for label comparison.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
