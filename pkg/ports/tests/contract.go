package tests

import (
	"context"
	"testing"

	"github.com/aretw0/helpcenter/pkg/domain"
	"github.com/aretw0/helpcenter/pkg/ports"
)

// CorpusSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.CorpusSource.
// want lists the topics the source is expected to produce, in id-assignment order.
func CorpusSourceContractTest(t *testing.T, source ports.CorpusSource, want []domain.Topic) {
	t.Helper()

	c, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error loading corpus: %v", err)
	}

	// 1. Lookup (Success)
	t.Run("Lookup_Success", func(t *testing.T) {
		for _, w := range want {
			got, ok := c.Lookup(w.ID)
			if !ok {
				t.Fatalf("topic %s missing", w.ID)
			}
			if got.Title != w.Title || got.CategoryID != w.CategoryID || got.Body != w.Body {
				t.Errorf("topic mismatch for %s. got %+v, want %+v", w.ID, got, w)
			}
		}
	})

	// 2. Lookup (NotFound)
	t.Run("Lookup_NotFound", func(t *testing.T) {
		if _, ok := c.Lookup("non-existent-topic"); ok {
			t.Error("expected miss for non-existent topic")
		}
	})

	// 3. Assignment order
	t.Run("Topics_Order", func(t *testing.T) {
		got := c.Topics()
		if len(got) != len(want) {
			t.Fatalf("expected %d topics, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].ID != want[i].ID {
				t.Errorf("position %d: got id %s, want %s", i, got[i].ID, want[i].ID)
			}
		}
	})

	// 4. Parent references resolve
	t.Run("Categories_Resolve", func(t *testing.T) {
		for _, topic := range c.Topics() {
			if topic.IsRoot() {
				continue
			}
			if _, ok := c.Lookup(topic.CategoryID); !ok {
				t.Errorf("topic %s points at missing category %s", topic.ID, topic.CategoryID)
			}
		}
	})
}
