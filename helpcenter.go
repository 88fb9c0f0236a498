package helpcenter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/helpcenter/internal/runtime"
	"github.com/aretw0/helpcenter/pkg/adapters/dir"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
	"github.com/aretw0/helpcenter/pkg/ports"
)

// Theme carries the branding of rendered views.
type Theme = runtime.Theme

// DefaultTheme returns the stock branding.
func DefaultTheme() Theme {
	return runtime.DefaultTheme()
}

// Engine is the high-level entry point for the help center library.
// It owns a loaded corpus and answers interaction events with payloads.
type Engine struct {
	runtime *runtime.Engine
	corpus  *corpus.Corpus
	source  ports.CorpusSource
	theme   Theme
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSource injects a custom CorpusSource, bypassing the default directory loader.
func WithSource(s ports.CorpusSource) Option {
	return func(e *Engine) {
		e.source = s
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTheme sets the branding of rendered views.
func WithTheme(theme Theme) Option {
	return func(e *Engine) {
		e.theme = theme
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New loads a corpus and builds an engine over it.
// By default topics are read from the descriptor tree at topicsDir.
// If WithSource is provided, topicsDir may be empty and only names the engine.
func New(ctx context.Context, topicsDir string, opts ...Option) (*Engine, error) {
	eng := &Engine{theme: runtime.DefaultTheme()}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if eng.source == nil {
		if topicsDir == "" {
			return nil, fmt.Errorf("topicsDir is required when no custom source is provided")
		}
		absPath, err := filepath.Abs(topicsDir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)
		eng.source = dir.NewFromDir(absPath, dir.WithLogger(eng.logger))
	} else if topicsDir != "" {
		eng.Name = filepath.Base(topicsDir)
	}

	c, err := eng.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	eng.init(c)
	return eng, nil
}

// NewFromCorpus builds an engine over an already loaded corpus.
func NewFromCorpus(c *corpus.Corpus, opts ...Option) *Engine {
	eng := &Engine{theme: runtime.DefaultTheme()}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.init(c)
	return eng
}

func (e *Engine) init(c *corpus.Corpus) {
	e.corpus = c
	if e.Name != "" {
		e.logger = e.logger.With("corpus", e.Name)
	}
	e.runtime = runtime.NewEngine(c,
		runtime.WithTheme(e.theme),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
}

// Handle answers an interaction event. It never fails: stale or unknown
// references render the unknown-topic view or the root listing.
func (e *Engine) Handle(ctx context.Context, ev domain.Event) domain.Payload {
	return e.runtime.Handle(ctx, ev)
}

// Open renders the entry view for an invoker with the given capability mask.
func (e *Engine) Open(ctx context.Context, permissions string) domain.Payload {
	return e.runtime.Handle(ctx, domain.Event{Kind: domain.EventCommand, Permissions: permissions})
}

// Preview renders the detail view of topicID as an unprivileged private
// message, the way a fresh select would show it. No hooks fire. Unknown ids
// render the unknown-topic view.
func (e *Engine) Preview(topicID string) domain.Payload {
	view := runtime.UnknownView()
	if t, ok := e.corpus.Lookup(topicID); ok {
		view = runtime.TopicView(t)
	}
	return e.runtime.Render(view, runtime.FreshPrivate, false)
}

// Corpus returns the loaded topic forest.
func (e *Engine) Corpus() *corpus.Corpus {
	return e.corpus
}

// Theme returns the branding in use.
func (e *Engine) Theme() Theme {
	return e.runtime.Theme()
}
