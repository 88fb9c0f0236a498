package dsl

import (
	"fmt"

	"github.com/aretw0/helpcenter/pkg/adapters/memory"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// Builder manages the corpus construction.
// Topics keep the order in which they were first added.
type Builder struct {
	order  []string
	topics map[string]*TopicBuilder
}

// New creates a new corpus builder.
func New() *Builder {
	return &Builder{
		topics: make(map[string]*TopicBuilder),
	}
}

// Add creates a new topic in the corpus.
// If the topic already exists, it returns the existing builder.
func (b *Builder) Add(id string) *TopicBuilder {
	if tb, ok := b.topics[id]; ok {
		return tb
	}
	tb := &TopicBuilder{
		topic:   domain.Topic{ID: id, Title: id},
		builder: b,
	}
	b.topics[id] = tb
	b.order = append(b.order, id)
	return tb
}

// Topics returns the topics in insertion order.
func (b *Builder) Topics() []domain.Topic {
	out := make([]domain.Topic, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.topics[id].Build())
	}
	return out
}

// Build compiles the topics into a memory source and checks that they form a
// valid forest.
func (b *Builder) Build() (*memory.Loader, error) {
	topics := b.Topics()
	if _, err := corpus.New(topics); err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return memory.NewFromTopics(topics...), nil
}
