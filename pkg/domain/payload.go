package domain

// ResponseMode says how the host must deliver a payload.
type ResponseMode string

const (
	// ModeNew posts the payload as a new message.
	ModeNew ResponseMode = "new"
	// ModeUpdate edits the message that carried the triggering control.
	ModeUpdate ResponseMode = "update"
)

// ButtonStyle is the visual style of a button.
type ButtonStyle string

const (
	ButtonPrimary ButtonStyle = "primary"
	ButtonDanger  ButtonStyle = "danger"
	ButtonLink    ButtonStyle = "link"
)

// Button is either an interactive control (ControlID set) or an external link (URL set).
type Button struct {
	ControlID string      `json:"controlId,omitempty"`
	Label     string      `json:"label"`
	Style     ButtonStyle `json:"style"`
	URL       string      `json:"url,omitempty"`
}

// SelectOption is one entry of a select menu.
type SelectOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// SelectMenu is a single-choice menu.
type SelectMenu struct {
	ControlID   string         `json:"controlId"`
	Placeholder string         `json:"placeholder,omitempty"`
	MinValues   int            `json:"minValues"`
	MaxValues   int            `json:"maxValues"`
	Options     []SelectOption `json:"options"`
}

// ActionRow groups controls on one line. A row holds either buttons or one select menu.
type ActionRow struct {
	Buttons []Button    `json:"buttons,omitempty"`
	Select  *SelectMenu `json:"select,omitempty"`
}

// Embed is the rich content block of a message.
type Embed struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Payload is a rendered view.
type Payload struct {
	Mode       ResponseMode `json:"mode"`
	Ephemeral  bool         `json:"ephemeral"`
	Content    string       `json:"content,omitempty"`
	Embeds     []Embed      `json:"embeds,omitempty"`
	Components []ActionRow  `json:"components,omitempty"`
}

// Buttons returns every button of the payload in row order.
func (p Payload) Buttons() []Button {
	var out []Button
	for _, row := range p.Components {
		out = append(out, row.Buttons...)
	}
	return out
}

// Button returns the interactive button with the given kind, if present.
func (p Payload) Button(kind ControlKind) (Button, bool) {
	for _, b := range p.Buttons() {
		if k, _, ok := ParseControlID(b.ControlID); ok && k == kind {
			return b, true
		}
	}
	return Button{}, false
}

// Select returns the payload's select menu, if any.
func (p Payload) Select() (*SelectMenu, bool) {
	for _, row := range p.Components {
		if row.Select != nil {
			return row.Select, true
		}
	}
	return nil, false
}
