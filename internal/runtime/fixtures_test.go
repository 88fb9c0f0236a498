package runtime_test

import (
	"github.com/aretw0/helpcenter/pkg/adapters/memory"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

const adminMask = "8"

// billingCorpus is the reference forest:
//
//	0 Billing
//	  1 Refunds
//	    2 Card refunds
//	3 Account
func billingCorpus() *corpus.Corpus {
	return memory.MustLoad(
		domain.Topic{ID: "0", Title: "Billing", Subtitle: "Invoices and payments", Body: "Everything about money."},
		domain.Topic{ID: "1", CategoryID: "0", Title: "Refunds", Body: "How refunds work.",
			Links: []domain.Link{{Name: "Policy", URL: "https://example.com/policy"}}},
		domain.Topic{ID: "2", CategoryID: "1", Title: "Card refunds", Body: "Card refunds take 5 days."},
		domain.Topic{ID: "3", Title: "Account", Body: "Manage your account.", Image: "https://example.com/a.png"},
	)
}

func command(perms string) domain.Event {
	return domain.Event{Kind: domain.EventCommand, Permissions: perms}
}

func selectTopic(id string, ephemeral bool) domain.Event {
	return domain.Event{
		Kind:      domain.EventSelect,
		ControlID: domain.SelectControlID,
		Values:    []string{id},
		Ephemeral: ephemeral,
	}
}

func press(controlID string, ephemeral bool, perms string) domain.Event {
	return domain.Event{
		Kind:        domain.EventButton,
		ControlID:   controlID,
		Ephemeral:   ephemeral,
		Permissions: perms,
	}
}

func optionValues(p domain.Payload) []string {
	menu, ok := p.Select()
	if !ok {
		return nil
	}
	out := make([]string, len(menu.Options))
	for i, o := range menu.Options {
		out[i] = o.Value
	}
	return out
}

// navControls returns the buttons that carry a control id, skipping links.
func navControls(p domain.Payload) []domain.Button {
	var out []domain.Button
	for _, b := range p.Buttons() {
		if b.ControlID != "" {
			out = append(out, b)
		}
	}
	return out
}
