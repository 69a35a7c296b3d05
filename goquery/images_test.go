package goquery_test

import (
	"testing"

	"github.com/shelfworks/prodex/goquery"
	"github.com/stretchr/testify/assert"
)

const imagesBaseURL = "https://vendor.example/p/123/acme-cream"

func TestResolveImages_ZoomMedia(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<div class="zoom-media">
	<img src="https://img.example/main.jpg">
	<img src="https://img.example/side.jpg">
</div>
<div class="zoom-media">
	<img src="https://img.example/back.jpg">
</div>`)

	main, gallery, method := goquery.ResolveImages(doc, "", imagesBaseURL)

	assert.Equal(t, "https://img.example/main.jpg", main)
	assert.Equal(t, []string{
		"https://img.example/main.jpg",
		"https://img.example/side.jpg",
		"https://img.example/back.jpg",
	}, gallery)
	assert.Equal(t, "zoom_media", method)
}

func TestResolveImages_MainAlwaysFirstAndNoDuplicates(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<div class="zoom-media">
	<img src="https://img.example/main.jpg">
	<img src="https://img.example/side.jpg">
	<img src="https://img.example/main.jpg">
	<img src="https://img.example/side.jpg">
</div>`)

	main, gallery, _ := goquery.ResolveImages(doc, "", imagesBaseURL)

	assert.Equal(t, "https://img.example/main.jpg", gallery[0])
	assert.Equal(t, main, gallery[0])
	seen := make(map[string]int)
	for _, u := range gallery {
		seen[u]++
	}
	for u, n := range seen {
		assert.Equal(t, 1, n, "duplicate URL %q", u)
	}
}

func TestResolveImages_AltFallbackOnlyAtZeroPrimary(t *testing.T) {
	t.Parallel()

	// The primary strategy found an image, so the matching alt-text image
	// must not be blended in.
	doc := document(t, `
<div class="zoom-media">
	<img src="https://img.example/main.jpg">
	<img src="https://img.example/side.jpg">
</div>
<img alt="Acme Cream" src="https://img.example/stray.jpg">`)

	_, gallery, method := goquery.ResolveImages(doc, "Acme Cream", imagesBaseURL)

	assert.NotContains(t, gallery, "https://img.example/stray.jpg")
	assert.Equal(t, "zoom_media", method)
}

func TestResolveImages_AltFallback(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<img alt="Acme Cream" src="https://img.example/one.jpg">
<img alt="promo banner" src="https://img.example/banner.jpg">
<img alt="ACME  cream" src="https://img.example/two.jpg">
<img alt="" src="https://img.example/empty-alt.jpg">`)

	main, gallery, method := goquery.ResolveImages(doc, "Acme Cream", imagesBaseURL)

	assert.Empty(t, main)
	assert.Equal(t, []string{
		"https://img.example/one.jpg",
		"https://img.example/two.jpg",
	}, gallery)
	assert.Equal(t, "alt_text", method)
}

func TestResolveImages_AltFallbackNeedsHint(t *testing.T) {
	t.Parallel()

	doc := document(t, `<img alt="Acme Cream" src="https://img.example/one.jpg">`)

	main, gallery, method := goquery.ResolveImages(doc, "", imagesBaseURL)

	assert.Empty(t, main)
	assert.Empty(t, gallery)
	assert.Equal(t, "none", method)
}

func TestResolveImages_ResolvesRelativeURLs(t *testing.T) {
	t.Parallel()

	doc := document(t, `<div class="zoom-media"><img src="/media/main.jpg"></div>`)

	main, _, _ := goquery.ResolveImages(doc, "", imagesBaseURL)

	assert.Equal(t, "https://vendor.example/media/main.jpg", main)
}

func TestResolveImages_LazyLoadedDataSrc(t *testing.T) {
	t.Parallel()

	doc := document(t, `<div class="zoom-media"><img data-src="https://img.example/lazy.jpg"></div>`)

	main, gallery, _ := goquery.ResolveImages(doc, "", imagesBaseURL)

	assert.Equal(t, "https://img.example/lazy.jpg", main)
	assert.Equal(t, []string{"https://img.example/lazy.jpg"}, gallery)
}

func TestResolveImages_NoImages(t *testing.T) {
	t.Parallel()

	doc := document(t, `<div class="product"></div>`)

	main, gallery, method := goquery.ResolveImages(doc, "Acme Cream", imagesBaseURL)

	assert.Empty(t, main)
	assert.Empty(t, gallery)
	assert.Equal(t, "none", method)
}
