package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// headingCandidates matches anything plausibly acting as a section title:
// heading tags, disclosure/summary/button elements, and elements whose class
// naming implies an accordion or section title role.
const headingCandidates = "h1, h2, h3, h4, h5, h6, summary, button, [role=button], " +
	"[class*=accordion-title], [class*=accordion-header], [class*=section-title], [class*=panel-title]"

// containerCandidates matches ancestors that plausibly bound a section's
// content.
const containerCandidates = "[class*=accordion], section, article, div"

// maxSiblingScan bounds the following-sibling content search.
const maxSiblingScan = 4

// LocateSection finds the content block governed by the heading-like
// element best matching the label. It is the generic fallback used when a
// vendor-specific direct selector yields nothing.
//
// Matching prefers an exact normalized-text match over the first candidate
// containing the label as a substring. Content resolution tries, in order:
// an ARIA-declared content region, up to four following siblings, and
// finally the nearest container ancestor with the heading's own text
// stripped out. No match returns an empty string.
func LocateSection(doc *goquery.Document, label string) string {
	heading := findHeading(doc, label)
	if heading == nil {
		return ""
	}

	if id := heading.AttrOr("aria-controls", ""); id != "" {
		if region := doc.Find("#" + id); region.Length() > 0 {
			if text := Sanitize(region); text != "" {
				return text
			}
		}
	}

	sibling := heading.Next()
	for i := 0; i < maxSiblingScan && sibling.Length() > 0; i++ {
		if text := Sanitize(sibling); text != "" {
			return text
		}
		sibling = sibling.Next()
	}

	// Closest would match the heading itself when its class carries the
	// accordion pattern, so start the walk at the parent.
	container := heading.Parent().Closest(containerCandidates)
	if container.Length() == 0 {
		return ""
	}
	clone := container.Clone()
	headingText := normalizeText(heading.Text())
	clone.Find(headingCandidates).Each(func(_ int, c *goquery.Selection) {
		if normalizeText(c.Text()) == headingText {
			c.Remove()
		}
	})
	return Sanitize(clone)
}

// findHeading returns the best heading-like candidate for the label, or nil.
func findHeading(doc *goquery.Document, label string) *goquery.Selection {
	want := normalizeText(label)
	if want == "" {
		return nil
	}

	var exact, partial *goquery.Selection
	doc.Find(headingCandidates).EachWithBreak(func(_ int, c *goquery.Selection) bool {
		text := normalizeText(c.Text())
		if text == want {
			exact = c
			return false
		}
		if partial == nil && strings.Contains(text, want) {
			partial = c
		}
		return true
	})

	if exact != nil {
		return exact
	}
	return partial
}
