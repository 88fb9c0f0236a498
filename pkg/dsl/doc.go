/*
Package dsl provides a Go DSL for building help corpora in code.

It is an alternative to a topics directory for tests, examples and programs
that generate their help content. Topics are assigned in the order they are
first added, which is also the tie-break order among siblings.

Example usage:

	b := dsl.New()

	billing := b.Add("billing").Title("Billing").Subtitle("Invoices and payments")
	billing.Topic("refunds").
		Title("Refunds").
		Body("Refunds are issued within 5 days.").
		Link("Policy", "https://example.com/refunds")

	b.Add("faq").Title("FAQ").Body("Frequently asked questions.")

	loader, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	// loader is a ports.CorpusSource
	engine, err := helpcenter.New(ctx, "", helpcenter.WithSource(loader))
*/
package dsl
