package domain

import "strings"

// ControlPrefix namespaces and versions every control identifier this package emits.
// Changing the layout of an identifier requires a new version segment, because
// messages rendered by older builds keep their identifiers forever.
const ControlPrefix = "help:v1:"

// ControlKind identifies which affordance fired.
type ControlKind string

const (
	ControlSelect     ControlKind = "select"
	ControlBack       ControlKind = "back"
	ControlHome       ControlKind = "home"
	ControlStaticMenu ControlKind = "static"
)

// Fixed identifiers.
const (
	SelectControlID     = ControlPrefix + string(ControlSelect)
	HomeControlID       = ControlPrefix + string(ControlHome)
	StaticMenuControlID = ControlPrefix + string(ControlStaticMenu)

	backControlPrefix = ControlPrefix + string(ControlBack) + ":"
)

// BackControlID encodes the back target of a detail view.
// An empty parentID targets the root listing.
func BackControlID(parentID string) string {
	return backControlPrefix + parentID
}

// ParseControlID recovers the kind and argument of a control identifier.
// Only back controls carry an argument. ok is false for identifiers this
// package did not produce.
func ParseControlID(id string) (kind ControlKind, arg string, ok bool) {
	if parent, found := strings.CutPrefix(id, backControlPrefix); found {
		return ControlBack, parent, true
	}

	switch id {
	case SelectControlID:
		return ControlSelect, "", true
	case HomeControlID:
		return ControlHome, "", true
	case StaticMenuControlID:
		return ControlStaticMenu, "", true
	}
	return "", "", false
}
