// Package rod implements prodex.PageSource using Chrome browser automation.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/shelfworks/prodex"
)

// Ensure implementations satisfy the domain interfaces at compile time.
var (
	_ prodex.PageSource = (*Source)(nil)
	_ prodex.Page       = (*Page)(nil)
)

// Source opens rendered product pages in a headless Chrome browser.
// Source is safe for concurrent use by multiple goroutines.
type Source struct {
	browser *rod.Browser
}

// SourceOption configures a Source.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	headless bool
}

// WithHeadful launches a visible browser, used by the operator probe
// harness to inspect selector hits by eye.
func WithHeadful() SourceOption {
	return func(c *sourceConfig) {
		c.headless = false
	}
}

// NewSource launches a Chrome browser and connects to it. Close must be
// called when the Source is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSource(opts ...SourceOption) (*Source, error) {
	cfg := &sourceConfig{headless: true}
	for _, opt := range opts {
		opt(cfg)
	}

	l := launcher.New().Headless(cfg.headless)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Source{browser: browser}, nil
}

// Open navigates to the URL, waits for the load event, and returns the
// page ready for extraction.
func (s *Source) Open(ctx context.Context, url string) (prodex.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	p := page.Context(ctx)
	if err := p.Navigate(url); err != nil {
		page.Close()
		return nil, err
	}
	if err := p.WaitLoad(); err != nil {
		page.Close()
		return nil, err
	}

	return &Page{page: page}, nil
}

// Close releases browser resources.
func (s *Source) Close() error {
	return s.browser.Close()
}

// Page is a live browser tab wrapped as a prodex.Page.
type Page struct {
	page *rod.Page
}

// HTML returns the rendered HTML of the page.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// WaitFor blocks until an element matching the selector is present, or the
// timeout elapses. Rod's Element polls the DOM, so a late-rendering image
// container is picked up as soon as it attaches.
func (p *Page) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	if _, err := p.page.Context(ctx).Timeout(timeout).Element(selector); err != nil {
		return prodex.Errorf(prodex.ETIMEOUT, "waiting for %q: %v", selector, err)
	}
	return nil
}

// Close closes the browser tab.
func (p *Page) Close() error {
	return p.page.Close()
}
