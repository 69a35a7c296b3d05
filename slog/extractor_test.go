package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shelfworks/prodex"
	"github.com/shelfworks/prodex/mock"
	prodslog "github.com/shelfworks/prodex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs url and field count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, page prodex.Page, pctx prodex.PageContext, opts prodex.ExtractOptions) (prodex.Record, error) {
				return prodex.Record{
					prodex.FieldName:     "Acme Cream",
					prodex.FieldMetadata: prodex.Metadata{},
				}, nil
			},
		}

		e := prodslog.NewLoggingExtractor(inner, logger)
		rec, err := e.Extract(context.Background(), &mock.Page{},
			prodex.PageContext{URL: "https://vendor.example/p/123"}, prodex.ExtractOptions{})

		require.NoError(t, err)
		require.NotNil(t, rec)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "url=https://vendor.example/p/123")
		assert.Contains(t, output, "fields=2")
	})

	t.Run("logs abstention at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, page prodex.Page, pctx prodex.PageContext, opts prodex.ExtractOptions) (prodex.Record, error) {
				return nil, prodex.Errorf(prodex.ETIMEOUT, "waiting for image container")
			},
		}

		e := prodslog.NewLoggingExtractor(inner, logger)
		rec, err := e.Extract(context.Background(), &mock.Page{}, prodex.PageContext{}, prodex.ExtractOptions{})

		require.Error(t, err)
		assert.Nil(t, rec)
		output := buf.String()
		assert.Contains(t, output, "WARN")
		assert.Contains(t, output, "abstained")
		assert.Contains(t, output, "waiting for image container")
	})
}
