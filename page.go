package prodex

import (
	"context"
	"time"
)

// Page provides queryable access to one rendered product page. The page is
// borrowed for the duration of a single extraction call and is never
// mutated; all field extraction happens against one HTML snapshot so no
// other script can interleave with the read.
type Page interface {
	// HTML returns the rendered HTML of the page.
	HTML(ctx context.Context) (string, error)

	// WaitFor blocks until an element matching the selector is present,
	// or the timeout elapses. Implementations return an error carrying
	// ETIMEOUT when the wait expires.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error

	// Close releases the page.
	Close() error
}

// PageSource opens rendered product pages. Implementations hide browser
// launch, navigation and load-waiting; the extraction engine never
// navigates.
type PageSource interface {
	// Open navigates to the URL, waits for the page to load, and returns
	// a Page ready for extraction.
	Open(ctx context.Context, url string) (Page, error)

	// Close releases browser resources.
	Close() error
}
