package memory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// Loader implements ports.CorpusSource over topics held in memory.
type Loader struct {
	topics []domain.Topic
}

// NewFromTopics creates a source from topics listed in id-assignment order.
// Topics without an id get their index in the list.
func NewFromTopics(topics ...domain.Topic) *Loader {
	copied := make([]domain.Topic, len(topics))
	for i, t := range topics {
		if t.ID == "" {
			t.ID = strconv.Itoa(i)
		}
		copied[i] = t.Clone()
	}
	return &Loader{topics: copied}
}

// Load builds the corpus. It fails when the topics do not form a valid forest.
func (l *Loader) Load(_ context.Context) (*corpus.Corpus, error) {
	c, err := corpus.New(l.topics)
	if err != nil {
		return nil, fmt.Errorf("memory corpus: %w", err)
	}
	return c, nil
}

// MustLoad builds the corpus or panics. Intended for tests and examples.
func MustLoad(topics ...domain.Topic) *corpus.Corpus {
	c, err := NewFromTopics(topics...).Load(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}
