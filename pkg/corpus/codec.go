package corpus

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// ErrCorruptCorpus is returned when a serialized corpus cannot be decoded.
var ErrCorruptCorpus = errors.New("corrupt corpus artifact")

// MarshalJSON encodes the corpus as the flat build artifact: {"<id>": Topic, ...}.
func (c *Corpus) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.flatten())
}

// Encode returns the indented build artifact. Keys are sorted, so equal
// corpora encode to equal bytes.
func Encode(c *Corpus) ([]byte, error) {
	data, err := json.MarshalIndent(c.flatten(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode corpus: %w", err)
	}
	return data, nil
}

func (c *Corpus) flatten() map[string]domain.Topic {
	flat := make(map[string]domain.Topic, len(c.topics))
	for _, t := range c.topics {
		flat[t.ID] = t
	}
	return flat
}

// Decode rebuilds a corpus from a build artifact.
// Assignment order is restored from the numeric ids; non-numeric ids (hand
// written corpora) sort after numeric ones, lexicographically.
func Decode(data []byte) (*Corpus, error) {
	var flat map[string]domain.Topic
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCorpus, err)
	}

	topics := make([]domain.Topic, 0, len(flat))
	for key, t := range flat {
		if t.ID == "" {
			t.ID = key
		}
		if t.ID != key {
			return nil, fmt.Errorf("%w: key %q holds topic %q", ErrCorruptCorpus, key, t.ID)
		}
		topics = append(topics, t)
	}
	slices.SortFunc(topics, func(a, b domain.Topic) int {
		return compareIDs(a.ID, b.ID)
	})

	c, err := New(topics)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptCorpus, err)
	}
	return c, nil
}

func compareIDs(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
