// Package navigation is the host tab navigator. It owns the route list and
// the active index, hands them to the tab bar, and receives its events.
package navigation

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/zhubert/pillbar/internal/logger"
	"github.com/zhubert/pillbar/internal/tabbar"
)

// Screen declares one tab.
type Screen struct {
	Name               string
	Title              string
	Label              string
	Icon               string
	AccessibilityLabel string
}

// Route names of the built-in screens.
const (
	RouteHome     = "home"
	RouteFavorite = "favorite"
	RouteSearch   = "search"
	RouteProfile  = "profile"
)

// DefaultScreens returns the four tabs of the shell.
func DefaultScreens() []Screen {
	return []Screen{
		{Name: RouteHome, Title: "Home", Icon: "⌂"},
		{Name: RouteFavorite, Title: "Favorite", Icon: "★"},
		{Name: RouteSearch, Title: "Search", Icon: "⌕"},
		{Name: RouteProfile, Title: "Profile", Icon: "☺"},
	}
}

// Listener receives navigator events.
type Listener func(e *tabbar.Event)

// Navigator implements tabbar.Navigator.
type Navigator struct {
	mu        sync.Mutex
	routes    []tabbar.Route
	index     int
	params    map[string]map[string]any
	listeners map[string][]entry
	nextID    int
}

type entry struct {
	id int
	l  Listener
}

// New builds a navigator over screens with the first screen active.
func New(screens []Screen, activeColor, inactiveColor string) *Navigator {
	routes := make([]tabbar.Route, len(screens))
	for i, s := range screens {
		routes[i] = tabbar.Route{
			Key:                s.Name + "-" + uuid.NewString(),
			Name:               s.Name,
			Label:              s.Label,
			Title:              s.Title,
			Icon:               s.Icon,
			ActiveColor:        activeColor,
			InactiveColor:      inactiveColor,
			AccessibilityLabel: s.AccessibilityLabel,
		}
	}
	return &Navigator{
		routes:    routes,
		params:    make(map[string]map[string]any),
		listeners: make(map[string][]entry),
	}
}

// State returns a copy of the routes and the active index.
func (n *Navigator) State() tabbar.State {
	n.mu.Lock()
	defer n.mu.Unlock()

	routes := make([]tabbar.Route, len(n.routes))
	copy(routes, n.routes)
	for i := range routes {
		routes[i].Params = n.params[routes[i].Name]
	}
	return tabbar.State{Routes: routes, Index: n.index}
}

// Current returns the active route.
func (n *Navigator) Current() tabbar.Route {
	s := n.State()
	if len(s.Routes) == 0 {
		return tabbar.Route{}
	}
	return s.Routes[s.Index]
}

// SetTint recolors every route, as a theme switch does.
func (n *Navigator) SetTint(activeColor, inactiveColor string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.routes {
		n.routes[i].ActiveColor = activeColor
		n.routes[i].InactiveColor = inactiveColor
	}
}

// AddListener registers l for an event type and returns a function that
// removes it.
func (n *Navigator) AddListener(eventType string, l Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[eventType] = append(n.listeners[eventType], entry{id: id, l: l})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.listeners[eventType] = slices.DeleteFunc(n.listeners[eventType], func(e entry) bool {
			return e.id == id
		})
	}
}

// Emit runs every listener for the event's type in registration order.
// Listeners run without the navigator lock so they may navigate.
func (n *Navigator) Emit(e *tabbar.Event) {
	n.mu.Lock()
	ls := slices.Clone(n.listeners[e.Type])
	n.mu.Unlock()

	logger.WithComponent("navigation").Debug("event", "type", e.Type, "target", e.Target)
	for _, en := range ls {
		en.l(e)
	}
}

// Navigate activates the named route. Unknown names are ignored.
func (n *Navigator) Navigate(name string, params map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, r := range n.routes {
		if r.Name == name {
			n.index = i
			if params != nil {
				n.params[name] = params
			}
			logger.WithComponent("navigation").Debug("navigate", "route", name)
			return
		}
	}
	logger.WithComponent("navigation").Warn("navigate to unknown route", "route", name)
}

// Index returns the active index.
func (n *Navigator) Index() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.index
}

// Len returns the number of routes.
func (n *Navigator) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.routes)
}
