package helpcenter_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/helpcenter"
	"github.com/aretw0/helpcenter/pkg/adapters/memory"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// ExampleNew_memory demonstrates how to use the Engine with an in-memory corpus.
// This is useful for testing or embedded scenarios where topics do not live on disk.
func ExampleNew_memory() {
	source := memory.NewFromTopics(
		domain.Topic{Title: "Billing", Body: "Everything about money."},
		domain.Topic{CategoryID: "0", Title: "Refunds", Body: "Refunds take 5 days."},
	)

	// topicsDir is empty because a source is provided.
	engine, err := helpcenter.New(context.Background(), "", helpcenter.WithSource(source))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	root := engine.Open(ctx, "")
	menu, _ := root.Select()
	fmt.Println("root options:", len(menu.Options), menu.Options[0].Label)

	billing := engine.Handle(ctx, domain.Event{
		Kind:      domain.EventSelect,
		ControlID: menu.ControlID,
		Values:    []string{menu.Options[0].Value},
		Ephemeral: root.Ephemeral,
	})
	fmt.Println("mode:", billing.Mode)
	fmt.Println("title:", billing.Embeds[0].Title)

	children, _ := billing.Select()
	refunds := engine.Handle(ctx, domain.Event{
		Kind:      domain.EventSelect,
		ControlID: children.ControlID,
		Values:    []string{children.Options[0].Value},
		Ephemeral: true,
	})
	back, _ := refunds.Button(domain.ControlBack)
	fmt.Println("back:", back.ControlID)

	// Output:
	// root options: 1 Billing
	// mode: update
	// title: Billing
	// back: help:v1:back:0
}
