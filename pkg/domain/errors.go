package domain

import "errors"

// ErrTopicNotFound is returned by lookups that require the topic to exist.
// The navigation engine never surfaces it; it renders the unknown-topic view instead.
var ErrTopicNotFound = errors.New("topic not found")

// ErrInvalidDescriptor marks a content file that cannot become a Topic.
var ErrInvalidDescriptor = errors.New("invalid topic descriptor")
