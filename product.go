package prodex

import (
	"context"
	"time"
)

// Field names that may appear as keys of a Record.
const (
	FieldName          = "name"
	FieldPrice         = "price"
	FieldMainImage     = "main_image"
	FieldImages        = "images"
	FieldMarketplace   = "marketplace"
	FieldFeatures      = "features"
	FieldSpecification = "product_specification"
	FieldWarnings      = "warnings_or_restrictions"
	FieldTips          = "tips_and_advice"
	FieldDescription   = "description"
	FieldStockStatus   = "stock_status"
	FieldBreadcrumbs   = "breadcrumbs"
	FieldMetadata      = "metadata"

	// Added by Transform, never produced by extraction directly.
	FieldEANCode  = "ean_code"
	FieldCategory = "category"
)

// Stock status values. The detector is binary: anything short of a positive
// add-to-basket signal reads as out of stock.
const (
	StockInStock    = "In stock"
	StockOutOfStock = "Out of stock"
)

// Record is the result of one extraction: a mapping from field name to
// extracted value. A field is present only if its extractor produced
// non-empty content; the exceptions are marketplace (always present when
// enabled, even if false) and metadata (always present).
type Record map[string]any

// Metadata carries extraction diagnostics. It never affects correctness,
// only observability: which strategy produced each field, what the engine
// waited for, and a content hash of the snapshot the fields were read from.
type Metadata struct {
	RunID       string            `json:"runId"`
	URL         string            `json:"url"`
	ContentHash string            `json:"contentHash"`
	Methods     map[string]string `json:"methods"`
	WaitIssued  bool              `json:"waitIssued"`
	Duration    time.Duration     `json:"duration"`
	ExtractedAt time.Time         `json:"extractedAt"`
}

// PageContext identifies the page being scraped. It is read-only input;
// the SKU, when known, participates in marketplace detection.
type PageContext struct {
	URL string
	SKU string
}

// ExtractOptions configures a single extraction call.
type ExtractOptions struct {
	// NameHint is the expected product name, used by the alt-text image
	// fallback. Empty disables that fallback.
	NameHint string

	// Fields restricts which extractors run. A nil policy enables all
	// fields. A field outside the policy never appears in the Record and
	// never triggers its DOM work (including the image-readiness wait).
	Fields *FieldPolicy
}

// Extractor extracts a product Record from a rendered page.
//
// Extract returns (nil, error) when the engine abstains: any unexpected
// failure (missing required structure, wait timeout, internal panic) yields
// no record at all, so a caller can hand the page to a more general
// fallback extractor instead of accepting a partially-correct one. A
// non-nil Record is never paired with a non-nil error.
type Extractor interface {
	Extract(ctx context.Context, page Page, pctx PageContext, opts ExtractOptions) (Record, error)
}
