/*
Package helpcenter is an interactive FAQ engine for chat platforms.

Help content is authored as a directory tree of YAML descriptors, compiled once
into an immutable topic forest, and browsed through a stateless navigation
engine that turns chat interactions into message payloads.

# Concept

Every control a rendered message carries encodes where it leads, so the engine
keeps no per-user state. A host (chat gateway, HTTP server, terminal, MCP
agent) delivers an Event and posts the Payload it gets back, either as a new
message or as an in-place edit of the message that carried the control.

# Key Features

  - Stateless Navigation: the same event always yields the same payload.
  - Build-time Validation: a malformed descriptor aborts the build with its path.
  - Private by Default: browsing happens in ephemeral messages; only holders of
    the administrator capability can publish a permanent public menu.
  - Pluggable Sources: descriptor trees, compiled JSON artifacts, or Redis.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/helpcenter"
		"github.com/aretw0/helpcenter/pkg/domain"
	)

	func main() {
		ctx := context.Background()

		// Compile the descriptor tree at ./topics
		eng, err := helpcenter.New(ctx, "./topics")
		if err != nil {
			log.Fatal(err)
		}

		// Entry invocation: a private root listing
		payload := eng.Open(ctx, "0")
		log.Println(payload.Embeds[0].Title)

		// A select event coming back from the chat client
		payload = eng.Handle(ctx, domain.Event{
			Kind:      domain.EventSelect,
			ControlID: domain.SelectControlID,
			Values:    []string{"0"},
			Ephemeral: true,
		})
		log.Println(payload.Mode)
	}
*/
package helpcenter
