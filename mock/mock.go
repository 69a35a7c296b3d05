// Package mock provides hand-rolled mocks for prodex interfaces.
package mock

import (
	"context"
	"time"

	"github.com/shelfworks/prodex"
)

// Compile-time interface verification.
var (
	_ prodex.Page       = (*Page)(nil)
	_ prodex.PageSource = (*PageSource)(nil)
	_ prodex.Extractor  = (*Extractor)(nil)
)

// Page is a mock implementation of prodex.Page.
type Page struct {
	HTMLFn    func(ctx context.Context) (string, error)
	WaitForFn func(ctx context.Context, selector string, timeout time.Duration) error
	CloseFn   func() error
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

func (p *Page) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	return p.WaitForFn(ctx, selector, timeout)
}

func (p *Page) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

// PageSource is a mock implementation of prodex.PageSource.
type PageSource struct {
	OpenFn  func(ctx context.Context, url string) (prodex.Page, error)
	CloseFn func() error
}

func (s *PageSource) Open(ctx context.Context, url string) (prodex.Page, error) {
	return s.OpenFn(ctx, url)
}

func (s *PageSource) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// Extractor is a mock implementation of prodex.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, page prodex.Page, pctx prodex.PageContext, opts prodex.ExtractOptions) (prodex.Record, error)
}

func (e *Extractor) Extract(ctx context.Context, page prodex.Page, pctx prodex.PageContext, opts prodex.ExtractOptions) (prodex.Record, error) {
	return e.ExtractFn(ctx, page, pctx, opts)
}
