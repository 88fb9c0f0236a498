package corpus

import (
	"cmp"
	"slices"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Corpus is the read-only, id-addressed help forest.
type Corpus struct {
	topics   []domain.Topic
	index    map[string]int
	children map[string][]int
}

// New builds a corpus from topics listed in id-assignment order.
// The input is copied; later changes to it do not affect the corpus.
// It fails with an *IntegrityError when ids collide, a parent does not
// resolve or the parent relation has a cycle.
func New(topics []domain.Topic) (*Corpus, error) {
	if problems := Check(topics); len(problems) > 0 {
		return nil, &IntegrityError{Problems: problems}
	}

	c := &Corpus{
		topics:   make([]domain.Topic, len(topics)),
		index:    make(map[string]int, len(topics)),
		children: make(map[string][]int),
	}
	for i, t := range topics {
		c.topics[i] = t.Clone()
		c.index[t.ID] = i
		c.children[t.CategoryID] = append(c.children[t.CategoryID], i)
	}

	// Indices are appended in assignment order, so a stable sort on position
	// leaves ties in assignment order.
	for parent, idx := range c.children {
		slices.SortStableFunc(idx, func(a, b int) int {
			return cmp.Compare(c.topics[a].SortKey(), c.topics[b].SortKey())
		})
		c.children[parent] = idx
	}

	return c, nil
}

// Len returns the number of topics.
func (c *Corpus) Len() int {
	return len(c.topics)
}

// Lookup returns the topic with the given id.
// A miss is an ordinary result: ids arrive from old messages and untrusted controls.
func (c *Corpus) Lookup(id string) (domain.Topic, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Topic{}, false
	}
	return c.topics[i].Clone(), true
}

// Children returns the direct children of id in display order.
// The empty id is never a topic id, so Children("") is equivalent to Roots().
func (c *Corpus) Children(id string) []domain.Topic {
	return c.collect(c.children[id])
}

// Roots returns the topics without a category in display order.
func (c *Corpus) Roots() []domain.Topic {
	return c.collect(c.children[""])
}

// Topics returns every topic in id-assignment order.
func (c *Corpus) Topics() []domain.Topic {
	out := make([]domain.Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.Clone()
	}
	return out
}

// Parent returns the category of id. ok is false for roots and unknown ids.
func (c *Corpus) Parent(id string) (domain.Topic, bool) {
	t, ok := c.Lookup(id)
	if !ok || t.IsRoot() {
		return domain.Topic{}, false
	}
	return c.Lookup(t.CategoryID)
}

// Path returns the chain of topics from the root down to id (inclusive).
// It returns nil for unknown ids.
func (c *Corpus) Path(id string) []domain.Topic {
	var path []domain.Topic
	for cur := id; cur != "" && len(path) <= len(c.topics); {
		t, ok := c.Lookup(cur)
		if !ok {
			return nil
		}
		path = append(path, t)
		cur = t.CategoryID
	}
	slices.Reverse(path)
	return path
}

func (c *Corpus) collect(idx []int) []domain.Topic {
	if len(idx) == 0 {
		return nil
	}
	out := make([]domain.Topic, len(idx))
	for i, j := range idx {
		out[i] = c.topics[j].Clone()
	}
	return out
}
