package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/helpcenter/internal/presentation/graph"
	"github.com/aretw0/helpcenter/pkg/adapters/memory"
	"github.com/aretw0/helpcenter/pkg/domain"
)

func forest() graph.Forest {
	return memory.MustLoad(
		domain.Topic{Title: "Billing"},
		domain.Topic{CategoryID: "0", Title: "Refunds", Body: "b"},
		domain.Topic{Title: `Say "hi"`, Body: "b"},
	)
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(forest(), nil)

	for _, want := range []string{
		"graph TD\n",
		`home(("Home"))`,
		`t_0[/"Billing"/]`,
		`t_1["Refunds"]`,
		`t_2["Say #quot;hi#quot;"]`,
		"home --> t_0",
		"home --> t_2",
		"t_0 --> t_1",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "classDef")
	assert.Less(t, strings.Index(out, "home --> t_0"), strings.Index(out, "home --> t_2"), "edges follow sibling order")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(forest(), &graph.GraphOverlay{CurrentTopic: "1"})

	assert.Contains(t, out, "class home visited;")
	assert.Contains(t, out, "class t_0 visited;")
	assert.Contains(t, out, "class t_1 current;")
	assert.NotContains(t, out, "class t_2")
}

func TestGenerateMermaid_OverlayUnknownTopic(t *testing.T) {
	out := graph.GenerateMermaid(forest(), &graph.GraphOverlay{CurrentTopic: "9"})
	assert.NotContains(t, out, "classDef")
}
