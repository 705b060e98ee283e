package tabbar

// Event types emitted to the navigator.
const (
	EventTabPress     = "tabPress"
	EventTabLongPress = "tabLongPress"
)

// Event is a notification sent to navigator listeners. Listeners may cancel
// a cancelable event with PreventDefault.
type Event struct {
	Type   string
	Target string // route key

	canPreventDefault bool
	defaultPrevented  bool
}

// NewEvent returns an event for the route key.
func NewEvent(typ, target string, cancelable bool) *Event {
	return &Event{Type: typ, Target: target, canPreventDefault: cancelable}
}

// PreventDefault cancels the event's default action. It has no effect on
// events that are not cancelable.
func (e *Event) PreventDefault() {
	if e.canPreventDefault {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a listener canceled the event.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Navigator is the host navigation container as the tab bar sees it.
type Navigator interface {
	// Emit delivers the event to listeners synchronously.
	Emit(e *Event)
	// Navigate switches to the named route.
	Navigate(name string, params map[string]any)
}
