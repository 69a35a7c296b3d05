package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

const (
	zoomMediaSelector      = ".zoom-media"
	zoomMediaImageSelector = ".zoom-media img"
	altImageSelector       = "img[alt]"
)

// Image resolution strategy names, recorded in extraction metadata.
const (
	imageMethodZoomMedia = "zoom_media"
	imageMethodAltText   = "alt_text"
	imageMethodNone      = "none"
)

// ResolveImages resolves the canonical main image and the deduplicated,
// ordered gallery for the product.
//
// The main image is the first image inside a zoom-media container. The
// primary gallery strategy collects every other zoom-media image; only when
// it yields zero images does the alt-text strategy run, matching images
// whose normalized alt text equals the normalized product-name hint. The
// secondary strategy is a pure fallback and is never blended with a
// non-empty primary result.
//
// All URLs are resolved against baseURL. The gallery contains no
// duplicates, and the main image, when present, is always element 0.
func ResolveImages(doc *goquery.Document, nameHint, baseURL string) (main string, gallery []string, method string) {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var zoom []string
	doc.Find(zoomMediaImageSelector).Each(func(_ int, img *goquery.Selection) {
		if src := imageURL(img, base); src != "" {
			zoom = append(zoom, src)
		}
	})

	var primary []string
	if len(zoom) > 0 {
		main = zoom[0]
		for _, src := range zoom[1:] {
			if src != main {
				primary = append(primary, src)
			}
		}
		method = imageMethodZoomMedia
	}

	rest := primary
	if len(primary) == 0 {
		if alt := altTextImages(doc, nameHint, base); len(alt) > 0 {
			rest = alt
			method = imageMethodAltText
		}
	}

	var ordered []string
	if main != "" {
		ordered = append(ordered, main)
	}
	ordered = append(ordered, rest...)

	gallery = dedupe(ordered)
	if method == "" {
		method = imageMethodNone
	}
	return main, gallery, method
}

// altTextImages collects images whose normalized alt text exactly equals
// the normalized name hint. An empty hint matches nothing.
func altTextImages(doc *goquery.Document, nameHint string, base *url.URL) []string {
	want := normalizeText(nameHint)
	if want == "" {
		return nil
	}
	var images []string
	doc.Find(altImageSelector).Each(func(_ int, img *goquery.Selection) {
		if normalizeText(img.AttrOr("alt", "")) != want {
			return
		}
		if src := imageURL(img, base); src != "" {
			images = append(images, src)
		}
	})
	return images
}

// imageURL returns the absolute source URL of an image element. Lazy-loaded
// images carry their source in data-src.
func imageURL(img *goquery.Selection, base *url.URL) string {
	src := img.AttrOr("src", "")
	if src == "" {
		src = img.AttrOr("data-src", "")
	}
	if src == "" {
		return ""
	}
	if base == nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	var out []string
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
