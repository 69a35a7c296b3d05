package goquery_test

import (
	"testing"

	"github.com/shelfworks/prodex/goquery"
	"github.com/stretchr/testify/assert"
)

func TestLocateSection_ARIALinkage(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<div class="accordion">
	<button aria-controls="features-panel">Features</button>
	<div id="features-panel">
		<ul><li>Fragrance free</li><li>Dermatologically tested</li></ul>
	</div>
</div>`)

	got := goquery.LocateSection(doc, "Features")
	assert.Equal(t, "Fragrance free\nDermatologically tested", got)
}

func TestLocateSection_SiblingScan(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<section>
	<h3>Warnings or Restrictions</h3>
	<div>For external use only.</div>
</section>`)

	got := goquery.LocateSection(doc, "Warnings")
	assert.Equal(t, "For external use only.", got)
}

func TestLocateSection_SkipsEmptySiblings(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<section>
	<h3>Tips and Advice</h3>
	<div></div>
	<span></span>
	<p>Apply twice daily.</p>
</section>`)

	got := goquery.LocateSection(doc, "Tips and Advice")
	assert.Equal(t, "Apply twice daily.", got)
}

func TestLocateSection_SiblingScanBounded(t *testing.T) {
	t.Parallel()

	// Content five siblings away is out of scan range; the ancestor
	// fallback picks it up instead, stripped of the heading text.
	doc := document(t, `
<div class="accordion-item">
	<h3>Specification</h3>
	<i></i><i></i><i></i><i></i>
	<p>Size: 100ml</p>
</div>`)

	got := goquery.LocateSection(doc, "Specification")
	assert.Equal(t, "Size: 100ml", got)
}

func TestLocateSection_AncestorFallback(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<div class="accordion">
	<span class="accordion-title">Features</span>
	Long lasting formula
</div>`)

	got := goquery.LocateSection(doc, "Features")
	assert.Equal(t, "Long lasting formula", got)
}

func TestLocateSection_ExactMatchBeatsSubstring(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<section>
	<h3>Features and Benefits</h3>
	<p>Wrong section.</p>
</section>
<section>
	<h3>Features</h3>
	<p>Right section.</p>
</section>`)

	got := goquery.LocateSection(doc, "Features")
	assert.Equal(t, "Right section.", got)
}

func TestLocateSection_SubstringMatch(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<section>
	<h3>Warnings or Restrictions</h3>
	<p>Keep out of reach of children.</p>
</section>`)

	got := goquery.LocateSection(doc, "Warnings")
	assert.Equal(t, "Keep out of reach of children.", got)
}

func TestLocateSection_MatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<section>
	<h3>FEATURES</h3>
	<p>Shiny.</p>
</section>`)

	got := goquery.LocateSection(doc, "features")
	assert.Equal(t, "Shiny.", got)
}

func TestLocateSection_NoMatchReturnsEmpty(t *testing.T) {
	t.Parallel()

	doc := document(t, `<section><h3>Delivery</h3><p>Next day.</p></section>`)

	assert.Empty(t, goquery.LocateSection(doc, "Features"))
}

func TestLocateSection_EmptyLabelReturnsEmpty(t *testing.T) {
	t.Parallel()

	doc := document(t, `<section><h3>Features</h3><p>Shiny.</p></section>`)

	assert.Empty(t, goquery.LocateSection(doc, "  "))
}

func TestLocateSection_ClassBasedHeading(t *testing.T) {
	t.Parallel()

	doc := document(t, `
<div class="product-accordion">
	<div class="accordion-header">Specification</div>
	<div class="accordion-body">Brand: Acme<br>EAN: 5012345678901</div>
</div>`)

	got := goquery.LocateSection(doc, "Specification")
	assert.Equal(t, "Brand: Acme\nEAN: 5012345678901", got)
}
