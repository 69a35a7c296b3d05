// Command prodex extracts structured product data from a vendor product
// page and prints it as JSON. The probe subcommand prints selector-hit
// diagnostics for manual verification against a live page.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI is the top-level command structure.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract product data from a page and print JSON."`
	Probe   ProbeCmd   `cmd:"" help:"Print selector-hit diagnostics for a page."`

	Verbose bool `short:"v" help:"Enable debug logging."`
}

// Dependencies is passed to every subcommand Run method.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Logger *slog.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodex"),
		kong.Description("Extract structured product data from vendor product pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return kctx.Run(&Dependencies{Ctx: ctx, Stdout: stdout, Logger: logger})
}
