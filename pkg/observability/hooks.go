package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// LoggingHooks logs every handled interaction at debug level and unknown topics at warn.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			logger.DebugContext(ctx, "render",
				"trigger", e.Trigger,
				"control", e.Control,
				"view", e.View,
				"topic_id", e.TopicID,
				"mode", e.Mode,
				"ephemeral", e.Ephemeral,
			)
		},
		OnUnknownTopic: func(ctx context.Context, e *domain.RenderEvent) {
			logger.WarnContext(ctx, "unknown topic", "topic_id", e.TopicID, "control", e.Control)
		},
	}
}

// Combine fans each hook out to every set in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var render, unknown []func(context.Context, *domain.RenderEvent)
	for _, s := range sets {
		if s.OnRender != nil {
			render = append(render, s.OnRender)
		}
		if s.OnUnknownTopic != nil {
			unknown = append(unknown, s.OnUnknownTopic)
		}
	}

	var out domain.LifecycleHooks
	if len(render) > 0 {
		out.OnRender = fanOut(render)
	}
	if len(unknown) > 0 {
		out.OnUnknownTopic = fanOut(unknown)
	}
	return out
}

func fanOut(fns []func(context.Context, *domain.RenderEvent)) func(context.Context, *domain.RenderEvent) {
	return func(ctx context.Context, e *domain.RenderEvent) {
		for _, fn := range fns {
			ev := *e
			fn(ctx, &ev)
		}
	}
}
