package ports

import (
	"context"

	"github.com/aretw0/helpcenter/pkg/corpus"
)

// CorpusSource defines where the engine's corpus comes from.
// This allows the storage layer (directory, build artifact, redis, memory) to be decoupled.
// Load is called once at startup; the returned corpus is never reloaded.
type CorpusSource interface {
	Load(ctx context.Context) (*corpus.Corpus, error)
}

// CorpusPublisher stores a built corpus where runtime instances can load it.
type CorpusPublisher interface {
	Publish(ctx context.Context, c *corpus.Corpus) error
}
