package runtime

import "github.com/aretw0/helpcenter/pkg/domain"

// MaxButtonsPerRow is the widest row a chat client accepts.
const MaxButtonsPerRow = 5

// UnknownTopicContent is the body of the unknown-topic view.
const UnknownTopicContent = "Unknown topic :("

const (
	labelBack       = "Back"
	labelHome       = "Home"
	labelGoHome     = "Go Home"
	labelStaticMenu = "Create Static Menu"
)

// Compose renders view as a payload. It is a pure function of its inputs:
// the same arguments always yield an identical payload.
func Compose(tree Tree, view View, mode RenderMode, privileged bool, theme Theme) domain.Payload {
	theme = theme.merge()

	p := domain.Payload{Mode: domain.ModeNew, Ephemeral: mode.Ephemeral}
	if mode.Update {
		p.Mode = domain.ModeUpdate
	}

	switch view.Kind {
	case domain.ViewTopic:
		composeTopic(&p, tree, view.Topic, theme)
	case domain.ViewRoot:
		composeRoot(&p, tree, privileged, theme)
	default:
		p.Content = UnknownTopicContent
		p.Components = []domain.ActionRow{{Buttons: []domain.Button{homeButton(labelHome)}}}
	}
	return p
}

func composeRoot(p *domain.Payload, tree Tree, privileged bool, theme Theme) {
	p.Embeds = []domain.Embed{{
		Title:       theme.Title,
		Description: theme.Welcome,
		Color:       theme.Color,
	}}
	if menu := topicSelect(tree.Roots(), theme); menu != nil {
		p.Components = append(p.Components, domain.ActionRow{Select: menu})
	}
	if privileged {
		p.Components = append(p.Components, domain.ActionRow{Buttons: []domain.Button{{
			ControlID: domain.StaticMenuControlID,
			Label:     labelStaticMenu,
			Style:     domain.ButtonDanger,
		}}})
	}
}

func composeTopic(p *domain.Payload, tree Tree, t domain.Topic, theme Theme) {
	p.Embeds = []domain.Embed{{
		Title:       t.Title,
		Description: t.Body,
		Color:       theme.Color,
		ImageURL:    t.Image,
	}}

	// A root topic's back target is the root listing.
	label := labelBack
	if t.IsRoot() {
		label = labelGoHome
	}
	buttons := []domain.Button{{ControlID: domain.BackControlID(t.CategoryID), Label: label, Style: domain.ButtonPrimary}}
	for _, l := range t.Links {
		buttons = append(buttons, domain.Button{Label: l.Name, Style: domain.ButtonLink, URL: l.URL})
	}
	p.Components = append(p.Components, buttonRows(buttons)...)

	if menu := topicSelect(tree.Children(t.ID), theme); menu != nil {
		p.Components = append(p.Components, domain.ActionRow{Select: menu})
	}
}

func homeButton(label string) domain.Button {
	return domain.Button{ControlID: domain.HomeControlID, Label: label, Style: domain.ButtonPrimary}
}

func topicSelect(topics []domain.Topic, theme Theme) *domain.SelectMenu {
	if len(topics) == 0 {
		return nil
	}
	options := make([]domain.SelectOption, len(topics))
	for i, t := range topics {
		options[i] = domain.SelectOption{Value: t.ID, Label: t.Title, Description: t.Subtitle}
	}
	return &domain.SelectMenu{
		ControlID:   domain.SelectControlID,
		Placeholder: theme.Placeholder,
		MinValues:   1,
		MaxValues:   1,
		Options:     options,
	}
}

func buttonRows(buttons []domain.Button) []domain.ActionRow {
	var rows []domain.ActionRow
	for len(buttons) > 0 {
		n := min(len(buttons), MaxButtonsPerRow)
		rows = append(rows, domain.ActionRow{Buttons: buttons[:n:n]})
		buttons = buttons[n:]
	}
	return rows
}
