package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Tree is the read-only query layer the engine navigates.
// *corpus.Corpus implements it.
type Tree interface {
	Lookup(id string) (domain.Topic, bool)
	Children(id string) []domain.Topic
	Roots() []domain.Topic
}

// Engine is the navigation state machine.
//
// It holds no per-user state: every Handle call derives the target view from
// the event alone (the control that fired, its encoded argument, the
// originating message's privacy flag and the invoker's capabilities) plus the
// immutable tree. An Engine is safe for concurrent use.
type Engine struct {
	tree   Tree
	theme  Theme
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTheme sets the branding of rendered views.
func WithTheme(theme Theme) EngineOption {
	return func(e *Engine) {
		e.theme = theme
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the time source used for hook timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine over tree.
func NewEngine(tree Tree, opts ...EngineOption) *Engine {
	e := &Engine{
		tree:   tree,
		theme:  DefaultTheme(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.theme = e.theme.merge()
	return e
}

// Handle resolves the event into a view and renders it.
// Every event yields a payload; stale or tampered identifiers render the
// unknown-topic view or fall back to the root listing.
func (e *Engine) Handle(ctx context.Context, ev domain.Event) domain.Payload {
	tr := e.resolve(ev)
	payload := Compose(e.tree, tr.View, tr.Mode, tr.showStatic(), e.theme)

	e.logger.Debug("event handled",
		"kind", ev.Kind,
		"control", tr.Control,
		"view", tr.View.Kind,
		"topic_id", tr.View.Topic.ID,
		"mode", payload.Mode,
		"ephemeral", payload.Ephemeral,
	)
	e.emit(ctx, ev, tr, payload)
	return payload
}

// Render composes a view directly, bypassing event resolution and hooks.
func (e *Engine) Render(view View, mode RenderMode, privileged bool) domain.Payload {
	return Compose(e.tree, view, mode, privileged, e.theme)
}

// Theme returns the branding in use.
func (e *Engine) Theme() Theme {
	return e.theme
}

func (e *Engine) emit(ctx context.Context, ev domain.Event, tr Transition, payload domain.Payload) {
	if e.hooks.OnRender == nil && e.hooks.OnUnknownTopic == nil {
		return
	}

	event := &domain.RenderEvent{
		Timestamp:  e.now(),
		Trigger:    ev.Kind,
		Control:    tr.Control,
		View:       tr.View.Kind,
		TopicID:    tr.View.Topic.ID,
		Mode:       payload.Mode,
		Ephemeral:  payload.Ephemeral,
		Privileged: tr.Privileged,
	}
	if tr.View.Kind == domain.ViewUnknown {
		event.TopicID = tr.Requested
		if e.hooks.OnUnknownTopic != nil {
			e.hooks.OnUnknownTopic(ctx, event)
		}
	}
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(ctx, event)
	}
}
