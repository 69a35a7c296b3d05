package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/shelfworks/prodex/goquery"
	"github.com/shelfworks/prodex/rod"
)

// ProbeCmd prints hit counts for every selector in the engine's catalogue,
// so an operator can see which extraction strategies would fire on a page.
type ProbeCmd struct {
	URL     string        `arg:"" help:"Product page URL."`
	Timeout time.Duration `default:"30s" help:"Overall deadline for the probe."`
	Headful bool          `help:"Run a visible browser for manual inspection."`
}

// Run opens the page and prints per-selector hit counts.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	var opts []rod.SourceOption
	if c.Headful {
		opts = append(opts, rod.WithHeadful())
	}
	source, err := rod.NewSource(opts...)
	if err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	defer source.Close()

	page, err := source.Open(ctx, c.URL)
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	html, err := page.HTML(ctx)
	if err != nil {
		return err
	}
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}

	catalogue := goquery.Selectors()
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		selector := catalogue[name]
		count := doc.Find(selector).Length()
		fmt.Fprintf(deps.Stdout, "%-22s %4d  %s\n", name, count, selector)
	}
	return nil
}
