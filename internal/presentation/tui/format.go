package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Choice is one numbered control of a rendered payload.
type Choice struct {
	Label string
	Event domain.Event
}

// FormatPayload turns a payload into markdown and the list of choices it offers.
// Link buttons are listed as URLs; they need no round trip to the engine.
func FormatPayload(p domain.Payload, permissions string) (string, []Choice) {
	var sb strings.Builder
	var choices []Choice

	if p.Content != "" {
		sb.WriteString(p.Content)
		sb.WriteString("\n\n")
	}
	for _, e := range p.Embeds {
		fmt.Fprintf(&sb, "# %s\n\n", e.Title)
		if e.Description != "" {
			sb.WriteString(e.Description)
			sb.WriteString("\n\n")
		}
		if e.ImageURL != "" {
			fmt.Fprintf(&sb, "![image](%s)\n\n", e.ImageURL)
		}
	}

	var links []domain.Button
	for _, row := range p.Components {
		if row.Select != nil {
			if row.Select.Placeholder != "" {
				fmt.Fprintf(&sb, "**%s**\n\n", row.Select.Placeholder)
			}
			for _, o := range row.Select.Options {
				choices = append(choices, Choice{
					Label: optionLabel(o),
					Event: domain.Event{
						Kind:        domain.EventSelect,
						ControlID:   row.Select.ControlID,
						Values:      []string{o.Value},
						Permissions: permissions,
						Ephemeral:   p.Ephemeral,
					},
				})
				fmt.Fprintf(&sb, "%d. %s\n", len(choices), choices[len(choices)-1].Label)
			}
			sb.WriteString("\n")
		}
		for _, b := range row.Buttons {
			if b.URL != "" {
				links = append(links, b)
				continue
			}
			choices = append(choices, Choice{
				Label: b.Label,
				Event: domain.Event{
					Kind:        domain.EventButton,
					ControlID:   b.ControlID,
					Permissions: permissions,
					Ephemeral:   p.Ephemeral,
				},
			})
			fmt.Fprintf(&sb, "%d. [%s]\n", len(choices), b.Label)
		}
	}

	if len(links) > 0 {
		sb.WriteString("\n")
		for _, l := range links {
			fmt.Fprintf(&sb, "- [%s](%s)\n", l.Label, l.URL)
		}
	}
	return sb.String(), choices
}

func optionLabel(o domain.SelectOption) string {
	if o.Description == "" {
		return o.Label
	}
	return o.Label + " - " + o.Description
}
