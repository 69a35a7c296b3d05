package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shelfworks/prodex"
	"github.com/shelfworks/prodex/goquery"
	"github.com/shelfworks/prodex/rod"
	prodslog "github.com/shelfworks/prodex/slog"
)

// ExtractCmd runs the extraction engine against a live product page.
type ExtractCmd struct {
	URL      string        `arg:"" help:"Product page URL."`
	SKU      string        `help:"Known SKU of the product, used for marketplace detection."`
	NameHint string        `help:"Expected product name, enables the alt-text image fallback."`
	Fields   []string      `help:"Restrict extraction to these fields."`
	Timeout  time.Duration `default:"30s" help:"Overall deadline for the extraction."`
	Wait     time.Duration `default:"12s" help:"Bound on the image-container readiness wait."`
	Raw      bool          `help:"Print the raw record without the canonical transform."`
}

// Run opens the page, extracts, optionally transforms, and prints JSON.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	source, err := rod.NewSource()
	if err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	defer source.Close()

	logged := rod.NewLoggingSource(source, deps.Logger)
	page, err := logged.Open(ctx, c.URL)
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	engine, err := goquery.New(goquery.WithWaitTimeout(c.Wait))
	if err != nil {
		return err
	}
	extractor := prodslog.NewLoggingExtractor(engine, deps.Logger)

	opts := prodex.ExtractOptions{NameHint: c.NameHint}
	if len(c.Fields) > 0 {
		opts.Fields = prodex.NewFieldPolicy(c.Fields...)
	}

	rec, err := extractor.Extract(ctx, page, prodex.PageContext{URL: c.URL, SKU: c.SKU}, opts)
	if err != nil {
		return fmt.Errorf("extraction abstained: %w", err)
	}

	if !c.Raw {
		rec = prodex.Transform(rec)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
