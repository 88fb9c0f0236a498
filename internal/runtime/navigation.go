package runtime

import "github.com/aretw0/helpcenter/pkg/domain"

// View is the state a payload renders.
type View struct {
	Kind  domain.ViewKind
	Topic domain.Topic
}

// RootView is the top-level listing.
func RootView() View {
	return View{Kind: domain.ViewRoot}
}

// TopicView is the detail view of t.
func TopicView(t domain.Topic) View {
	return View{Kind: domain.ViewTopic, Topic: t}
}

// UnknownView is shown when a referenced topic does not resolve.
func UnknownView() View {
	return View{Kind: domain.ViewUnknown}
}

// RenderMode says whether a payload replaces the triggering message and who sees it.
type RenderMode struct {
	Update    bool
	Ephemeral bool
}

var (
	// FreshPrivate posts a new message only the invoker can see.
	FreshPrivate = RenderMode{Update: false, Ephemeral: true}
	// InPlace edits the private message that carried the control.
	InPlace = RenderMode{Update: true, Ephemeral: true}
	// Public posts a new, permanent message visible to everyone.
	Public = RenderMode{Update: false, Ephemeral: false}
)

// Transition is the outcome of resolving an event.
type Transition struct {
	View    View
	Mode    RenderMode
	Control domain.ControlKind

	// Privileged reports whether the invoker holds the administrator capability.
	Privileged bool

	// Requested is the topic id the event referenced, kept for unknown views.
	Requested string
}

// resolve maps an event to its target view and render mode.
func (e *Engine) resolve(ev domain.Event) Transition {
	privileged := ev.Capabilities().Has(domain.CapAdministrator)

	if ev.Kind == domain.EventCommand {
		return Transition{View: RootView(), Mode: FreshPrivate, Privileged: privileged}
	}

	// Components on a public message must not be edited by one user for
	// everyone, so they answer with a private copy instead.
	mode := FreshPrivate
	if ev.Ephemeral {
		mode = InPlace
	}

	kind, arg, ok := domain.ParseControlID(ev.ControlID)
	if !ok {
		return Transition{View: UnknownView(), Mode: mode, Privileged: privileged}
	}

	tr := Transition{Mode: mode, Privileged: privileged, Control: kind}
	switch kind {
	case domain.ControlSelect:
		tr.Requested = ev.Value()
		tr.View = e.topicOrUnknown(tr.Requested)
	case domain.ControlBack:
		tr.View = RootView()
		if arg != "" {
			if t, found := e.tree.Lookup(arg); found {
				tr.View = TopicView(t)
			}
		}
	case domain.ControlHome:
		tr.View = RootView()
	case domain.ControlStaticMenu:
		tr.View = RootView()
		if privileged {
			tr.Mode = Public
		}
	}
	return tr
}

// showStatic reports whether the rendered view offers the static-menu control.
// A published menu is shared, so it never carries the publishing control itself.
func (tr Transition) showStatic() bool {
	return tr.Privileged && tr.Mode != Public
}

func (e *Engine) topicOrUnknown(id string) View {
	if id == "" {
		return UnknownView()
	}
	t, ok := e.tree.Lookup(id)
	if !ok {
		return UnknownView()
	}
	return TopicView(t)
}
