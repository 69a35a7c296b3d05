package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shelfworks/prodex"
)

// Marketplace evidence. SKUs of third-party-fulfilled items carry the mp-
// prefix; the same token shows up as a path segment on marketplace URLs.
const marketplaceSKUPrefix = "mp-"

var marketplaceURLPattern = regexp.MustCompile(`(?i)/mp-\d+`)

// marketplacePhrases are the vendor's seller-attribution strings.
var marketplacePhrases = []string{
	"marketplace seller",
	"sold and shipped by",
}

const (
	marketplaceInputSelector   = "input[type=hidden][name=isMarketplace]"
	marketplaceTextSelector    = ".marketplace-info, .seller-info, [data-marketplace-seller]"
	marketplaceWrapperSelector = "[class*=marketplace-seller], [data-marketplace]"
)

// marketplaceCheck is one independent evidence source.
type marketplaceCheck struct {
	name string
	run  func(doc *goquery.Document, pctx prodex.PageContext) bool
}

// marketplaceChecks is the ordered evidence chain; the first positive check
// wins and later checks never run.
var marketplaceChecks = []marketplaceCheck{
	{"sku_prefix", func(_ *goquery.Document, pctx prodex.PageContext) bool {
		return strings.HasPrefix(strings.ToLower(pctx.SKU), marketplaceSKUPrefix)
	}},
	{"url_prefix", func(_ *goquery.Document, pctx prodex.PageContext) bool {
		return marketplaceURLPattern.MatchString(pctx.URL)
	}},
	{"hidden_input", func(doc *goquery.Document, _ prodex.PageContext) bool {
		value := doc.Find(marketplaceInputSelector).First().AttrOr("value", "")
		return strings.EqualFold(strings.TrimSpace(value), "true")
	}},
	{"seller_text", func(doc *goquery.Document, _ prodex.PageContext) bool {
		found := false
		doc.Find(marketplaceTextSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := normalizeText(s.Text())
			for _, phrase := range marketplacePhrases {
				if strings.Contains(text, phrase) {
					found = true
					return false
				}
			}
			return true
		})
		return found
	}},
	{"seller_wrapper", func(doc *goquery.Document, _ prodex.PageContext) bool {
		return doc.Find(marketplaceWrapperSelector).Length() > 0
	}},
}

// DetectMarketplace reports whether the product is fulfilled by a
// third-party seller, along with the name of the evidence source that
// decided. Evidence is consulted in a fixed order and the first positive
// source wins; with no positive source the product is vendor-fulfilled.
func DetectMarketplace(doc *goquery.Document, pctx prodex.PageContext) (bool, string) {
	for _, check := range marketplaceChecks {
		if check.run(doc, pctx) {
			return true, check.name
		}
	}
	return false, "default"
}

// stockControlSelector matches the submit control with the vendor's
// progress affordance. Only that control counts as a stock signal.
const stockControlSelector = "button[type=submit].btn-progress"

const addToBasketPhrase = "add to basket"

// DetectStock returns StockInStock only when an add-to-basket control is
// present and labeled as such. Any failure during evaluation reads as the
// default: a stock signal is never allowed to abort extraction.
func DetectStock(doc *goquery.Document) (status string) {
	status = prodex.StockOutOfStock
	defer func() {
		if recover() != nil {
			status = prodex.StockOutOfStock
		}
	}()

	doc.Find(stockControlSelector).EachWithBreak(func(_ int, b *goquery.Selection) bool {
		label := normalizeText(b.AttrOr("aria-label", ""))
		if strings.Contains(label, addToBasketPhrase) ||
			strings.Contains(normalizeText(b.Text()), addToBasketPhrase) {
			status = prodex.StockInStock
			return false
		}
		return true
	})
	return status
}
