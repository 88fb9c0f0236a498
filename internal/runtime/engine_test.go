package runtime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/helpcenter/internal/runtime"
	"github.com/aretw0/helpcenter/pkg/domain"
)

func TestEngine_EntryCommand(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())

	p := engine.Handle(context.Background(), command(""))

	assert.Equal(t, domain.ModeNew, p.Mode)
	assert.True(t, p.Ephemeral, "entry view is private")
	require.Len(t, p.Embeds, 1)
	assert.Equal(t, runtime.DefaultTheme().Title, p.Embeds[0].Title)
	assert.Equal(t, []string{"0", "3"}, optionValues(p))

	_, hasStatic := p.Button(domain.ControlStaticMenu)
	assert.False(t, hasStatic, "unprivileged invoker must not see the static menu control")
}

func TestEngine_StaticControlGatedByCapability(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())

	tests := []struct {
		name  string
		perms string
		want  bool
	}{
		{"empty mask", "", false},
		{"administrator bit", adminMask, true},
		{"administrator among others", "2147483656", true},
		{"other bits only", "7", false},
		{"malformed", "admin", false},
		{"beyond 64 bits", "340282366920938463463374607431768211464", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.Handle(context.Background(), command(tt.perms))
			_, got := p.Button(domain.ControlStaticMenu)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_SelectAndBackToRoot(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())
	ctx := context.Background()

	p := engine.Handle(ctx, selectTopic("3", true))
	require.Len(t, p.Embeds, 1)
	assert.Equal(t, "Account", p.Embeds[0].Title)
	assert.Equal(t, domain.ModeUpdate, p.Mode)

	back, ok := p.Button(domain.ControlBack)
	require.True(t, ok)
	assert.Equal(t, domain.BackControlID(""), back.ControlID)
	assert.Equal(t, "Go Home", back.Label)

	p = engine.Handle(ctx, press(back.ControlID, true, ""))
	require.Len(t, p.Embeds, 1)
	assert.Equal(t, runtime.DefaultTheme().Title, p.Embeds[0].Title)
	assert.Equal(t, []string{"0", "3"}, optionValues(p))
}

func TestEngine_BackEncodesParent(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())
	ctx := context.Background()

	refunds := engine.Handle(ctx, selectTopic("1", true))
	back, ok := refunds.Button(domain.ControlBack)
	require.True(t, ok)
	assert.Equal(t, "help:v1:back:0", back.ControlID)
	assert.Equal(t, "Back", back.Label)
	assert.Len(t, navControls(refunds), 1, "only the back control navigates")

	billing := engine.Handle(ctx, press(back.ControlID, true, ""))
	require.Len(t, billing.Embeds, 1)
	assert.Equal(t, "Billing", billing.Embeds[0].Title)

	back, ok = billing.Button(domain.ControlBack)
	require.True(t, ok)
	assert.Equal(t, "help:v1:back:", back.ControlID)
	assert.Equal(t, "Go Home", back.Label)
	assert.Len(t, navControls(billing), 1)
}

func TestEngine_BackToVanishedParentFallsBackToRoot(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())

	p := engine.Handle(context.Background(), press(domain.BackControlID("404"), true, ""))

	require.Len(t, p.Embeds, 1)
	assert.Equal(t, runtime.DefaultTheme().Title, p.Embeds[0].Title)
}

func TestEngine_UnknownTopic(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())
	ctx := context.Background()

	for name, ev := range map[string]domain.Event{
		"missing id":       selectTopic("99", true),
		"empty selection":  {Kind: domain.EventSelect, ControlID: domain.SelectControlID, Ephemeral: true},
		"foreign control":  press("someone-else:button", true, ""),
		"old scheme":       press("help:v0:home", true, ""),
		"unversioned back": press("back:0", true, ""),
	} {
		t.Run(name, func(t *testing.T) {
			p := engine.Handle(ctx, ev)
			assert.Equal(t, runtime.UnknownTopicContent, p.Content)
			assert.Empty(t, p.Embeds)

			_, hasHome := p.Button(domain.ControlHome)
			assert.True(t, hasHome)
		})
	}
}

func TestEngine_RenderModes(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())
	ctx := context.Background()

	tests := []struct {
		name          string
		event         domain.Event
		wantMode      domain.ResponseMode
		wantEphemeral bool
	}{
		{"command", command(""), domain.ModeNew, true},
		{"select on private message", selectTopic("0", true), domain.ModeUpdate, true},
		{"select on public message", selectTopic("0", false), domain.ModeNew, true},
		{"home on private message", press(domain.HomeControlID, true, ""), domain.ModeUpdate, true},
		{"home on public message", press(domain.HomeControlID, false, ""), domain.ModeNew, true},
		{"back on public message", press(domain.BackControlID("0"), false, ""), domain.ModeNew, true},
		{"static menu by administrator", press(domain.StaticMenuControlID, true, adminMask), domain.ModeNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.Handle(ctx, tt.event)
			assert.Equal(t, tt.wantMode, p.Mode)
			assert.Equal(t, tt.wantEphemeral, p.Ephemeral)
		})
	}
}

func TestEngine_StaticMenu(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus())
	ctx := context.Background()

	t.Run("administrator publishes a root without the static control", func(t *testing.T) {
		p := engine.Handle(ctx, press(domain.StaticMenuControlID, true, adminMask))

		assert.Equal(t, domain.ModeNew, p.Mode)
		assert.False(t, p.Ephemeral)
		assert.Equal(t, []string{"0", "3"}, optionValues(p))
		_, hasStatic := p.Button(domain.ControlStaticMenu)
		assert.False(t, hasStatic)
	})

	t.Run("tampered activation gets the private root", func(t *testing.T) {
		p := engine.Handle(ctx, press(domain.StaticMenuControlID, true, "0"))

		assert.Equal(t, domain.ModeUpdate, p.Mode)
		assert.True(t, p.Ephemeral)
		_, hasStatic := p.Button(domain.ControlStaticMenu)
		assert.False(t, hasStatic)
	})

	t.Run("home from the published menu offers it again to administrators", func(t *testing.T) {
		p := engine.Handle(ctx, press(domain.HomeControlID, false, adminMask))

		assert.True(t, p.Ephemeral)
		_, hasStatic := p.Button(domain.ControlStaticMenu)
		assert.True(t, hasStatic)
	})
}

func TestEngine_WithTheme(t *testing.T) {
	engine := runtime.NewEngine(billingCorpus(), runtime.WithTheme(runtime.Theme{Title: "Xenon Help Center"}))

	p := engine.Handle(context.Background(), command(""))

	require.Len(t, p.Embeds, 1)
	assert.Equal(t, "Xenon Help Center", p.Embeds[0].Title)
	assert.Equal(t, runtime.DefaultTheme().Welcome, p.Embeds[0].Description, "unset fields keep their defaults")
	assert.Equal(t, 0x478fce, p.Embeds[0].Color)
	assert.Equal(t, "Xenon Help Center", engine.Theme().Title)
}
