package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/helpcenter"
	"github.com/aretw0/helpcenter/pkg/adapters/memory"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

func newTestServer() *Server {
	c := memory.MustLoad(
		domain.Topic{Title: "Billing"},
		domain.Topic{CategoryID: "0", Title: "Refunds", Body: "Refunds take 5 days."},
	)
	return NewServer(helpcenter.NewFromCorpus(c))
}

func TestTools_Navigation(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	root, err := s.handleOpen(ctx, mcp.CallToolRequest{}, OpenArgs{Permissions: "8"})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeNew, root.Mode)
	_, hasStatic := root.Button(domain.ControlStaticMenu)
	assert.True(t, hasStatic)

	refunds, err := s.handleSelect(ctx, mcp.CallToolRequest{}, SelectArgs{TopicID: "1", Ephemeral: true})
	require.NoError(t, err)
	require.Len(t, refunds.Embeds, 1)
	assert.Equal(t, "Refunds", refunds.Embeds[0].Title)

	back, ok := refunds.Button(domain.ControlBack)
	require.True(t, ok)
	billing, err := s.handlePress(ctx, mcp.CallToolRequest{}, PressArgs{ControlID: back.ControlID, Ephemeral: true})
	require.NoError(t, err)
	assert.Equal(t, "Billing", billing.Embeds[0].Title)
	assert.Equal(t, domain.ModeUpdate, billing.Mode)
}

func TestTools_RequiredArguments(t *testing.T) {
	s := newTestServer()

	_, err := s.handleSelect(context.Background(), mcp.CallToolRequest{}, SelectArgs{})
	assert.Error(t, err)
	_, err = s.handlePress(context.Background(), mcp.CallToolRequest{}, PressArgs{})
	assert.Error(t, err)
}

func TestTools_UnknownTopic(t *testing.T) {
	s := newTestServer()

	p, err := s.handleSelect(context.Background(), mcp.CallToolRequest{}, SelectArgs{TopicID: "77"})
	require.NoError(t, err)
	assert.Equal(t, "Unknown topic :(", p.Content)
}

func TestResource_Corpus(t *testing.T) {
	s := newTestServer()

	contents, err := s.readCorpus(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CorpusURI, text.URI)

	c, err := corpus.Decode([]byte(text.Text))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}
