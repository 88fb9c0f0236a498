package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Engine answers interaction events.
type Engine interface {
	Handle(ctx context.Context, ev domain.Event) domain.Payload
}

// Browser drives an engine from a line-based terminal.
// Like a chat client it only keeps the last payload it received.
type Browser struct {
	Engine      Engine
	In          io.Reader
	Out         io.Writer
	Render      func(string) (string, error)
	Permissions string
}

// Run opens the help center and processes choices until EOF, "q" or cancellation.
func (b *Browser) Run(ctx context.Context) error {
	render := b.Render
	if render == nil {
		render = PlainRenderer
	}

	current := b.Engine.Handle(ctx, domain.Event{Kind: domain.EventCommand, Permissions: b.Permissions})
	choices, err := b.show(current, render)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(b.In)
	for {
		fmt.Fprint(b.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(b.Out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit", "exit":
			fmt.Fprintln(b.Out, "Bye!")
			return nil
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(choices) {
			fmt.Fprintf(b.Out, "Choose a number between 1 and %d, or q to quit.\n", len(choices))
			continue
		}

		current = b.Engine.Handle(ctx, choices[n-1].Event)
		if choices, err = b.show(current, render); err != nil {
			return err
		}
	}
}

func (b *Browser) show(p domain.Payload, render func(string) (string, error)) ([]Choice, error) {
	markdown, choices := FormatPayload(p, b.Permissions)
	out, err := render(markdown)
	if err != nil {
		return nil, fmt.Errorf("failed to render payload: %w", err)
	}
	fmt.Fprint(b.Out, out)
	if !p.Ephemeral {
		fmt.Fprintln(b.Out, "(posted publicly)")
	}
	return choices, nil
}
