/*
Package domain contains the core data model of the help center.

It defines the help forest (Topic, Link), the events a host delivers to the
navigation engine (Event, Capabilities), the payloads the engine hands back
(Payload, Embed, ActionRow, Button, SelectMenu) and the versioned control
identifier scheme that carries navigation state between turns. The package is
free of I/O so it can be shared by every adapter.

# Key Entities

  - Topic: a node in the help forest, either a leaf FAQ entry or a category.
  - Event: an incoming interaction (entry command, select, button).
  - Payload: the rendered view, delivered as a new message or an in-place update.
  - Control identifiers: "help:v1:<kind>[:<arg>]" strings round-tripped by the host.
*/
package domain
