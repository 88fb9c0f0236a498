package domain

// EventKind distinguishes the interactions a host can deliver.
type EventKind string

const (
	// EventCommand is the entry invocation of the help command.
	EventCommand EventKind = "command"
	// EventSelect is a choice made in a select menu.
	EventSelect EventKind = "select"
	// EventButton is a button activation.
	EventButton EventKind = "button"
)

// Event is an incoming interaction.
// Everything the engine needs to know about "where the user is" travels inside it.
type Event struct {
	Kind EventKind `json:"kind"`

	// ControlID is the identifier of the control that fired (select and button events).
	ControlID string `json:"controlId,omitempty"`

	// Values holds the selected option values of a select event.
	Values []string `json:"values,omitempty"`

	// Permissions is the invoker's capability bitmask in decimal form.
	Permissions string `json:"permissions,omitempty"`

	// Ephemeral reports whether the message that carried the control was private to the invoker.
	Ephemeral bool `json:"ephemeral,omitempty"`
}

// Capabilities parses the event's permission mask.
func (e Event) Capabilities() Capabilities {
	return ParseCapabilities(e.Permissions)
}

// Value returns the first selected value, or "" when nothing was selected.
func (e Event) Value() string {
	if len(e.Values) == 0 {
		return ""
	}
	return e.Values[0]
}
