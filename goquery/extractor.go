package goquery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/shelfworks/prodex"
)

// Ensure Extractor implements prodex.Extractor at compile time.
var _ prodex.Extractor = (*Extractor)(nil)

// DefaultWaitTimeout bounds the image-container readiness wait.
const DefaultWaitTimeout = 12 * time.Second

// Vendor-specific direct selectors. Each is tried before the generic
// heading search.
const (
	nameSelector          = "h1.product-name"
	nameFallbackSelector  = "h1"
	priceSelector         = ".product-price .price, [data-product-price]"
	priceFallbackSelector = ".price"
	descriptionSelector   = "#product-description .accordion-content, [data-accordion=description] .accordion-content"
	breadcrumbSelector    = "nav[aria-label=Breadcrumb] li, .breadcrumb li, .breadcrumbs li"
)

// sectionFields maps each custom section field to its direct accordion
// selector and the heading label used by the generic fallback.
var sectionFields = []struct {
	field  string
	label  string
	direct string
}{
	{prodex.FieldFeatures, "Features",
		"[data-accordion=features] .accordion-content, #features .accordion-content"},
	{prodex.FieldSpecification, "Specification",
		"[data-accordion=specification] .accordion-content, #product-specification .accordion-content"},
	{prodex.FieldWarnings, "Warnings",
		"[data-accordion=warnings] .accordion-content, #warnings .accordion-content"},
	{prodex.FieldTips, "Tips and Advice",
		"[data-accordion=tips] .accordion-content, #tips-advice .accordion-content"},
}

// Selectors returns the engine's selector catalogue keyed by concern. The
// probe harness iterates it to print per-selector hit counts, and New
// validates every entry at construction.
func Selectors() map[string]string {
	catalogue := map[string]string{
		"name":                nameSelector,
		"name_fallback":       nameFallbackSelector,
		"price":               priceSelector,
		"price_fallback":      priceFallbackSelector,
		"description":         descriptionSelector,
		"breadcrumbs":         breadcrumbSelector,
		"headings":            headingCandidates,
		"zoom_media":          zoomMediaSelector,
		"zoom_media_images":   zoomMediaImageSelector,
		"alt_images":          altImageSelector,
		"stock_control":       stockControlSelector,
		"marketplace_input":   marketplaceInputSelector,
		"marketplace_text":    marketplaceTextSelector,
		"marketplace_wrapper": marketplaceWrapperSelector,
	}
	for _, s := range sectionFields {
		catalogue[s.field] = s.direct
	}
	return catalogue
}

// strategy is one attempt at producing a field value. Strategies run in
// order and the first non-empty result wins; its name lands in metadata.
type strategy struct {
	name string
	run  func(doc *goquery.Document) string
}

func runChain(doc *goquery.Document, chain []strategy) (string, string) {
	for _, s := range chain {
		if v := s.run(doc); v != "" {
			return v, s.name
		}
	}
	return "", ""
}

// Extractor extracts product fields from a rendered vendor page. It is
// stateless across calls and safe for concurrent use against distinct
// pages.
type Extractor struct {
	waitTimeout time.Duration
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithWaitTimeout sets the bound on the image-container readiness wait.
func WithWaitTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.waitTimeout = d
	}
}

// New creates an Extractor, validating the whole selector catalogue so a
// malformed selector fails fast instead of surfacing as a mid-extraction
// panic.
func New(opts ...Option) (*Extractor, error) {
	e := &Extractor{waitTimeout: DefaultWaitTimeout}
	for _, opt := range opts {
		opt(e)
	}
	for name, sel := range Selectors() {
		if _, err := cascadia.ParseGroup(sel); err != nil {
			return nil, prodex.Errorf(prodex.EINVALID, "invalid selector %q: %v", name, err)
		}
	}
	return e, nil
}

// Extract runs every enabled field extractor against one HTML snapshot of
// the page and assembles the Record.
//
// The only blocking wait is for image-container readiness, and it is issued
// only when an image field is enabled. Any failure — a wait timeout, a
// snapshot error, a panic in a sub-extractor — makes Extract abstain with
// (nil, error) so the caller can fall back to a more general extraction
// path rather than accept a partially-correct record.
func (e *Extractor) Extract(ctx context.Context, page prodex.Page, pctx prodex.PageContext, opts prodex.ExtractOptions) (rec prodex.Record, err error) {
	begin := time.Now()
	defer func() {
		if p := recover(); p != nil {
			rec = nil
			err = prodex.Errorf(prodex.EINTERNAL, "extraction panic: %v", p)
		}
	}()

	policy := opts.Fields
	md := prodex.Metadata{
		RunID:       uuid.NewString(),
		URL:         pctx.URL,
		Methods:     make(map[string]string),
		ExtractedAt: begin.UTC(),
	}

	// A field outside the policy never triggers its DOM work, so the wait
	// is skipped entirely when no image field is enabled.
	if policy.Enabled(prodex.FieldMainImage) || policy.Enabled(prodex.FieldImages) {
		if err := page.WaitFor(ctx, zoomMediaSelector, e.waitTimeout); err != nil {
			return nil, err
		}
		md.WaitIssued = true
	}

	snapshot, err := page.HTML(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot))
	if err != nil {
		return nil, prodex.Errorf(prodex.EINVALID, "parse page snapshot: %v", err)
	}
	md.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(snapshot))

	rec = make(prodex.Record)
	setText := func(field, value, method string) {
		if value == "" {
			return
		}
		rec[field] = value
		md.Methods[field] = method
	}

	if policy.Enabled(prodex.FieldName) {
		v, m := runChain(doc, []strategy{
			{"direct", firstText(nameSelector)},
			{"heading", firstText(nameFallbackSelector)},
		})
		setText(prodex.FieldName, v, m)
	}

	if policy.Enabled(prodex.FieldPrice) {
		v, m := runChain(doc, []strategy{
			{"direct", firstText(priceSelector)},
			{"generic", firstText(priceFallbackSelector)},
		})
		setText(prodex.FieldPrice, v, m)
	}

	if policy.Enabled(prodex.FieldDescription) {
		v, m := runChain(doc, []strategy{
			{"direct", sanitizeFirst(descriptionSelector)},
			{"section", locate("Product Information")},
		})
		setText(prodex.FieldDescription, v, m)
	}

	for _, s := range sectionFields {
		if !policy.Enabled(s.field) {
			continue
		}
		v, m := runChain(doc, []strategy{
			{"direct", sanitizeFirst(s.direct)},
			{"section", locate(s.label)},
		})
		setText(s.field, v, m)
	}

	if policy.Enabled(prodex.FieldMarketplace) {
		// Always included when enabled, even when false.
		v, m := DetectMarketplace(doc, pctx)
		rec[prodex.FieldMarketplace] = v
		md.Methods[prodex.FieldMarketplace] = m
	}

	if policy.Enabled(prodex.FieldStockStatus) {
		rec[prodex.FieldStockStatus] = DetectStock(doc)
	}

	if policy.Enabled(prodex.FieldBreadcrumbs) {
		if trail := breadcrumbs(doc); len(trail) > 0 {
			rec[prodex.FieldBreadcrumbs] = trail
		}
	}

	if policy.Enabled(prodex.FieldMainImage) || policy.Enabled(prodex.FieldImages) {
		main, gallery, m := ResolveImages(doc, opts.NameHint, pctx.URL)
		if policy.Enabled(prodex.FieldMainImage) && main != "" {
			rec[prodex.FieldMainImage] = main
			md.Methods[prodex.FieldMainImage] = m
		}
		if policy.Enabled(prodex.FieldImages) && len(gallery) > 0 {
			rec[prodex.FieldImages] = gallery
			md.Methods[prodex.FieldImages] = m
		}
	}

	md.Duration = time.Since(begin)
	rec[prodex.FieldMetadata] = md
	return rec, nil
}

// firstText returns a strategy function yielding the collapsed text of the
// first match.
func firstText(selector string) func(*goquery.Document) string {
	return func(doc *goquery.Document) string {
		return collapseText(doc.Find(selector).First().Text())
	}
}

// sanitizeFirst returns a strategy function sanitizing the first match.
func sanitizeFirst(selector string) func(*goquery.Document) string {
	return func(doc *goquery.Document) string {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return ""
		}
		return Sanitize(sel)
	}
}

// locate returns a strategy function running the generic section search.
func locate(label string) func(*goquery.Document) string {
	return func(doc *goquery.Document) string {
		return LocateSection(doc, label)
	}
}

// breadcrumbs returns the trimmed breadcrumb trail, outermost first.
func breadcrumbs(doc *goquery.Document) []string {
	var trail []string
	doc.Find(breadcrumbSelector).Each(func(_ int, crumb *goquery.Selection) {
		if t := collapseText(crumb.Text()); t != "" {
			trail = append(trail, t)
		}
	})
	return trail
}
