package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/helpcenter"
	"github.com/aretw0/helpcenter/internal/config"
	"github.com/aretw0/helpcenter/internal/presentation/tui"
	"github.com/aretw0/helpcenter/pkg/observability"
)

// BrowseOptions configures the terminal browser.
type BrowseOptions struct {
	Permissions string
	// Pretty enables the banner and glamour rendering; callers set it when stdout is a terminal.
	Pretty bool
	Width  int
}

// Browse runs the interactive terminal browser against the configured corpus.
func Browse(ctx context.Context, cfg config.Config, opts BrowseOptions, in io.Reader, out io.Writer, logger *slog.Logger) error {
	engine, closeSource, err := createEngine(ctx, cfg, logger, observability.LoggingHooks(logger))
	if err != nil {
		return err
	}
	defer closeSource()

	render := tui.PlainRenderer
	if opts.Pretty {
		tui.PrintBanner(out, engine.Theme().Title, helpcenter.Version)
		if render, err = tui.NewRenderer(opts.Width); err != nil {
			return err
		}
	}

	b := &tui.Browser{
		Engine:      engine,
		In:          in,
		Out:         out,
		Render:      render,
		Permissions: opts.Permissions,
	}
	return b.Run(ctx)
}
