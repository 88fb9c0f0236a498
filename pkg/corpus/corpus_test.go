package corpus

import (
	"errors"
	"testing"

	"github.com/aretw0/helpcenter/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(v float64) *float64 { return &v }

func ids(topics []domain.Topic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.ID
	}
	return out
}

func sampleTopics() []domain.Topic {
	return []domain.Topic{
		{ID: "0", Title: "Billing"},
		{ID: "1", CategoryID: "0", Title: "Refunds", Body: "How refunds work"},
		{ID: "2", CategoryID: "0", Title: "Invoices", Body: "Where invoices live"},
		{ID: "3", Title: "Getting started", Body: "Welcome"},
		{ID: "4", CategoryID: "0", Title: "Taxes"},
		{ID: "5", CategoryID: "4", Title: "VAT", Body: "VAT rules"},
	}
}

func TestCorpus_ChildrenAndRoots(t *testing.T) {
	c, err := New(sampleTopics())
	require.NoError(t, err)

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []string{"0", "3"}, ids(c.Roots()))
	assert.Equal(t, []string{"1", "2", "4"}, ids(c.Children("0")))
	assert.Equal(t, []string{"5"}, ids(c.Children("4")))
	assert.Empty(t, c.Children("5"))
	assert.Empty(t, c.Children("missing"))
	assert.Equal(t, ids(c.Roots()), ids(c.Children("")))
}

func TestCorpus_ChildrenMatchCategoryIDExactly(t *testing.T) {
	c, err := New(sampleTopics())
	require.NoError(t, err)

	for _, parent := range c.Topics() {
		want := map[string]bool{}
		for _, t := range c.Topics() {
			if t.CategoryID == parent.ID {
				want[t.ID] = true
			}
		}
		got := map[string]bool{}
		for _, child := range c.Children(parent.ID) {
			got[child.ID] = true
		}
		assert.Equal(t, want, got, "children of %s", parent.ID)
	}

	for _, r := range c.Roots() {
		assert.True(t, r.IsRoot())
	}
}

func TestCorpus_PositionOrdering(t *testing.T) {
	t.Run("explicit positions with ties fall back to assignment order", func(t *testing.T) {
		c, err := New([]domain.Topic{
			{ID: "p", Title: "Parent"},
			{ID: "a", CategoryID: "p", Title: "A", Position: pos(2)},
			{ID: "b", CategoryID: "p", Title: "B", Position: pos(1)},
			{ID: "c", CategoryID: "p", Title: "C", Position: pos(1)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c", "a"}, ids(c.Children("p")))
	})

	t.Run("missing position counts as zero", func(t *testing.T) {
		c, err := New([]domain.Topic{
			{ID: "0", Title: "Late", Position: pos(5)},
			{ID: "1", Title: "Default"},
			{ID: "2", Title: "Early", Position: pos(-1)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "1", "0"}, ids(c.Roots()))
	})

	t.Run("no positions keeps assignment order", func(t *testing.T) {
		c, err := New([]domain.Topic{
			{ID: "9", Title: "Nine"},
			{ID: "3", Title: "Three"},
			{ID: "5", Title: "Five"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"9", "3", "5"}, ids(c.Roots()))
	})
}

func TestCorpus_Lookup(t *testing.T) {
	c, err := New(sampleTopics())
	require.NoError(t, err)

	got, ok := c.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Refunds", got.Title)

	_, ok = c.Lookup("42")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestCorpus_ParentAndPath(t *testing.T) {
	c, err := New(sampleTopics())
	require.NoError(t, err)

	parent, ok := c.Parent("5")
	require.True(t, ok)
	assert.Equal(t, "4", parent.ID)

	_, ok = c.Parent("0")
	assert.False(t, ok, "roots have no parent")

	assert.Equal(t, []string{"0", "4", "5"}, ids(c.Path("5")))
	assert.Equal(t, []string{"3"}, ids(c.Path("3")))
	assert.Nil(t, c.Path("missing"))
}

func TestCorpus_IsImmutable(t *testing.T) {
	src := []domain.Topic{
		{ID: "0", Title: "Links", Body: "b", Links: []domain.Link{{Name: "Docs", URL: "https://example.com"}}, Position: pos(1)},
	}
	c, err := New(src)
	require.NoError(t, err)

	src[0].Title = "changed"
	src[0].Links[0].Name = "changed"
	*src[0].Position = 99

	got, _ := c.Lookup("0")
	assert.Equal(t, "Links", got.Title)
	assert.Equal(t, "Docs", got.Links[0].Name)
	assert.Equal(t, 1.0, *got.Position)

	got.Links[0].URL = "https://evil.example"
	again, _ := c.Lookup("0")
	assert.Equal(t, "https://example.com", again.Links[0].URL)

	roots := c.Roots()
	roots[0].Title = "mutated"
	assert.Equal(t, "Links", c.Roots()[0].Title)
}

func TestNew_RejectsBrokenForests(t *testing.T) {
	tests := []struct {
		name   string
		topics []domain.Topic
		want   ProblemKind
	}{
		{
			name:   "dangling parent",
			topics: []domain.Topic{{ID: "0", CategoryID: "7", Title: "Orphan"}},
			want:   ProblemDanglingParent,
		},
		{
			name:   "duplicate id",
			topics: []domain.Topic{{ID: "0", Title: "A"}, {ID: "0", Title: "B"}},
			want:   ProblemDuplicateID,
		},
		{
			name:   "self cycle",
			topics: []domain.Topic{{ID: "0", CategoryID: "0", Title: "Loop"}},
			want:   ProblemCycle,
		},
		{
			name: "two node cycle",
			topics: []domain.Topic{
				{ID: "0", CategoryID: "1", Title: "A"},
				{ID: "1", CategoryID: "0", Title: "B"},
			},
			want: ProblemCycle,
		},
		{
			name:   "empty id",
			topics: []domain.Topic{{Title: "Nameless"}},
			want:   ProblemEmptyID,
		},
		{
			name:   "missing title",
			topics: []domain.Topic{{ID: "0"}},
			want:   ProblemMissingTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.topics)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCorpus))

			var integrity *IntegrityError
			require.ErrorAs(t, err, &integrity)
			kinds := make([]ProblemKind, len(integrity.Problems))
			for i, p := range integrity.Problems {
				kinds[i] = p.Kind
			}
			assert.Contains(t, kinds, tt.want)
		})
	}
}

func TestCheck_DanglingParentIsNotACycle(t *testing.T) {
	problems := Check([]domain.Topic{{ID: "0", CategoryID: "x", Title: "Orphan"}})
	require.Len(t, problems, 1)
	assert.Equal(t, ProblemDanglingParent, problems[0].Kind)
}
