package domain

import (
	"context"
	"time"
)

// ViewKind names the state a payload renders.
type ViewKind string

const (
	ViewRoot    ViewKind = "root"
	ViewTopic   ViewKind = "topic"
	ViewUnknown ViewKind = "unknown"
)

// RenderEvent describes one handled interaction.
type RenderEvent struct {
	Timestamp  time.Time    `json:"timestamp"`
	Trigger    EventKind    `json:"trigger"`
	Control    ControlKind  `json:"control,omitempty"`
	View       ViewKind     `json:"view"`
	TopicID    string       `json:"topic_id,omitempty"`
	Mode       ResponseMode `json:"mode"`
	Ephemeral  bool         `json:"ephemeral"`
	Privileged bool         `json:"privileged,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run after the payload is composed and cannot alter it.
type LifecycleHooks struct {
	OnRender       func(context.Context, *RenderEvent)
	OnUnknownTopic func(context.Context, *RenderEvent)
}
