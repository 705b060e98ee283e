// Package tabbar renders the row of tab items and turns presses into
// navigation intents. It holds no state of its own: the host supplies the
// routes and active index each frame.
package tabbar

// Route describes one tab. It is owned by the navigator and read-only here.
type Route struct {
	Key    string
	Name   string
	Params map[string]any

	Label string // explicit tab label
	Title string // screen title, used when Label is empty
	Icon  string // glyph; only the first grapheme is drawn

	ActiveColor   string
	InactiveColor string

	AccessibilityLabel string
}

// DisplayLabel resolves the text under the icon: the explicit label, then the
// title, then the route name.
func (r Route) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// State is what the navigator hands the bar on every render.
type State struct {
	Routes []Route
	Index  int
}

// Focused reports whether route i is the active one.
func (s State) Focused(i int) bool {
	return i == s.Index
}
