package runtime_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/helpcenter/internal/runtime"
	"github.com/aretw0/helpcenter/pkg/adapters/memory"
	"github.com/aretw0/helpcenter/pkg/domain"
)

func ptr(f float64) *float64 { return &f }

func TestCompose_Deterministic(t *testing.T) {
	tree := billingCorpus()
	refunds, ok := tree.Lookup("1")
	require.True(t, ok)

	views := []runtime.View{runtime.RootView(), runtime.TopicView(refunds), runtime.UnknownView()}
	for _, view := range views {
		first, err := json.Marshal(runtime.Compose(tree, view, runtime.InPlace, true, runtime.DefaultTheme()))
		require.NoError(t, err)
		second, err := json.Marshal(runtime.Compose(tree, view, runtime.InPlace, true, runtime.DefaultTheme()))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), "view %s", view.Kind)
	}
}

func TestCompose_OrdersByPosition(t *testing.T) {
	tree := memory.MustLoad(
		domain.Topic{ID: "a", Title: "A", Position: ptr(2)},
		domain.Topic{ID: "b", Title: "B", Position: ptr(1)},
		domain.Topic{ID: "c", Title: "C", Position: ptr(1)},
	)

	p := runtime.Compose(tree, runtime.RootView(), runtime.FreshPrivate, false, runtime.DefaultTheme())

	assert.Equal(t, []string{"b", "c", "a"}, optionValues(p))
}

func TestCompose_Root(t *testing.T) {
	theme := runtime.Theme{Title: "T", Welcome: "W", Color: 1, Placeholder: "P"}
	p := runtime.Compose(billingCorpus(), runtime.RootView(), runtime.FreshPrivate, true, theme)

	want := domain.Payload{
		Mode:      domain.ModeNew,
		Ephemeral: true,
		Embeds:    []domain.Embed{{Title: "T", Description: "W", Color: 1}},
		Components: []domain.ActionRow{
			{Select: &domain.SelectMenu{
				ControlID:   domain.SelectControlID,
				Placeholder: "P",
				MinValues:   1,
				MaxValues:   1,
				Options: []domain.SelectOption{
					{Value: "0", Label: "Billing", Description: "Invoices and payments"},
					{Value: "3", Label: "Account"},
				},
			}},
			{Buttons: []domain.Button{{ControlID: domain.StaticMenuControlID, Label: "Create Static Menu", Style: domain.ButtonDanger}}},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_EmptyCorpusOmitsSelect(t *testing.T) {
	tree := memory.MustLoad()

	p := runtime.Compose(tree, runtime.RootView(), runtime.FreshPrivate, false, runtime.DefaultTheme())

	require.Len(t, p.Embeds, 1)
	assert.Empty(t, p.Components)
}

func TestCompose_Topic(t *testing.T) {
	tree := billingCorpus()
	refunds, _ := tree.Lookup("1")
	theme := runtime.DefaultTheme()

	p := runtime.Compose(tree, runtime.TopicView(refunds), runtime.InPlace, true, theme)

	want := domain.Payload{
		Mode:      domain.ModeUpdate,
		Ephemeral: true,
		Embeds:    []domain.Embed{{Title: "Refunds", Description: "How refunds work.", Color: theme.Color}},
		Components: []domain.ActionRow{
			{Buttons: []domain.Button{
				{ControlID: domain.BackControlID("0"), Label: "Back", Style: domain.ButtonPrimary},
				{Label: "Policy", Style: domain.ButtonLink, URL: "https://example.com/policy"},
			}},
			{Select: &domain.SelectMenu{
				ControlID:   domain.SelectControlID,
				Placeholder: theme.Placeholder,
				MinValues:   1,
				MaxValues:   1,
				Options:     []domain.SelectOption{{Value: "2", Label: "Card refunds"}},
			}},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, navControls(p), 1)
}

func TestCompose_TopicHasSingleNavigationControl(t *testing.T) {
	tree := billingCorpus()

	tests := []struct {
		id        string
		wantID    string
		wantLabel string
	}{
		{"0", domain.BackControlID(""), "Go Home"},
		{"1", domain.BackControlID("0"), "Back"},
		{"2", domain.BackControlID("1"), "Back"},
		{"3", domain.BackControlID(""), "Go Home"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			topic, ok := tree.Lookup(tt.id)
			require.True(t, ok)
			p := runtime.Compose(tree, runtime.TopicView(topic), runtime.InPlace, false, runtime.DefaultTheme())

			nav := navControls(p)
			require.Len(t, nav, 1)
			assert.Equal(t, tt.wantID, nav[0].ControlID)
			assert.Equal(t, tt.wantLabel, nav[0].Label)
			_, hasHome := p.Button(domain.ControlHome)
			assert.False(t, hasHome)
		})
	}
}

func TestCompose_TopicOptionalElements(t *testing.T) {
	tree := billingCorpus()

	account, _ := tree.Lookup("3")
	p := runtime.Compose(tree, runtime.TopicView(account), runtime.InPlace, false, runtime.DefaultTheme())
	require.Len(t, p.Embeds, 1)
	assert.Equal(t, "https://example.com/a.png", p.Embeds[0].ImageURL)
	_, hasSelect := p.Select()
	assert.False(t, hasSelect, "leaf topics have no select menu")
	assert.Len(t, p.Buttons(), 1, "only the back control")

	card, _ := tree.Lookup("2")
	p = runtime.Compose(tree, runtime.TopicView(card), runtime.InPlace, false, runtime.DefaultTheme())
	assert.Empty(t, p.Embeds[0].ImageURL)
	for _, b := range p.Buttons() {
		assert.NotEqual(t, domain.ButtonLink, b.Style)
	}
}

func TestCompose_WrapsLinkButtons(t *testing.T) {
	links := make([]domain.Link, 9)
	for i := range links {
		links[i] = domain.Link{Name: fmt.Sprintf("L%d", i), URL: fmt.Sprintf("https://example.com/%d", i)}
	}
	tree := memory.MustLoad(
		domain.Topic{ID: "0", Title: "Root", Body: "r"},
		domain.Topic{ID: "1", CategoryID: "0", Title: "Many links", Body: "b", Links: links},
	)
	topic, _ := tree.Lookup("1")

	p := runtime.Compose(tree, runtime.TopicView(topic), runtime.InPlace, false, runtime.DefaultTheme())

	// back + 9 links
	require.Len(t, p.Components, 2)
	assert.Len(t, p.Components[0].Buttons, runtime.MaxButtonsPerRow)
	assert.Len(t, p.Components[1].Buttons, runtime.MaxButtonsPerRow)

	var names []string
	for _, b := range p.Buttons() {
		if b.Style == domain.ButtonLink {
			names = append(names, b.Label)
		}
	}
	assert.Equal(t, []string{"L0", "L1", "L2", "L3", "L4", "L5", "L6", "L7", "L8"}, names, "declared order is kept")
}

func TestCompose_Unknown(t *testing.T) {
	p := runtime.Compose(billingCorpus(), runtime.UnknownView(), runtime.FreshPrivate, true, runtime.DefaultTheme())

	assert.Equal(t, "Unknown topic :(", p.Content)
	assert.Empty(t, p.Embeds)
	require.Len(t, p.Components, 1)
	assert.Equal(t, []domain.Button{{ControlID: domain.HomeControlID, Label: "Home", Style: domain.ButtonPrimary}}, p.Components[0].Buttons)
}
