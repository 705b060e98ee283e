package tabbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// fakeNavigator records events and navigation calls
type fakeNavigator struct {
	events    []string
	navigated []string
	cancel    bool
}

func (f *fakeNavigator) Emit(e *Event) {
	f.events = append(f.events, e.Type+":"+e.Target)
	if f.cancel {
		e.PreventDefault()
	}
}

func (f *fakeNavigator) Navigate(name string, params map[string]any) {
	f.navigated = append(f.navigated, name)
}

func testState() State {
	return State{
		Index: 0,
		Routes: []Route{
			{Key: "home-1", Name: "home", Title: "Home", Icon: "⌂", ActiveColor: "#0A84FF", InactiveColor: "#757575"},
			{Key: "fav-1", Name: "favorite", Title: "Favorite", Icon: "★", ActiveColor: "#0A84FF", InactiveColor: "#757575"},
			{Key: "search-1", Name: "search", Title: "Search", Icon: "⌕", ActiveColor: "#0A84FF", InactiveColor: "#757575"},
			{Key: "profile-1", Name: "profile", Title: "Profile", Icon: "☺", ActiveColor: "#0A84FF", InactiveColor: "#757575"},
		},
	}
}

func TestRoute_DisplayLabel(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  string
	}{
		{"explicit label wins", Route{Name: "home", Title: "Home", Label: "Start"}, "Start"},
		{"title next", Route{Name: "home", Title: "Home"}, "Home"},
		{"name last", Route{Name: "home"}, "home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.route.DisplayLabel(); got != tt.want {
				t.Errorf("DisplayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBar_Press(t *testing.T) {
	tests := []struct {
		name         string
		index        int
		cancel       bool
		wantNavigate bool
	}{
		{name: "inactive route navigates", index: 2, wantNavigate: true},
		{name: "active route does not navigate", index: 0, wantNavigate: false},
		{name: "canceled press suppresses navigation", index: 2, cancel: true, wantNavigate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &fakeNavigator{cancel: tt.cancel}
			bar := New(testState(), nav)

			if got := bar.Press(tt.index); got != tt.wantNavigate {
				t.Errorf("Press() = %v, want %v", got, tt.wantNavigate)
			}

			route := testState().Routes[tt.index]
			if len(nav.events) != 1 || nav.events[0] != "tabPress:"+route.Key {
				t.Errorf("events = %v, want one tabPress for %s", nav.events, route.Key)
			}
			if tt.wantNavigate {
				if len(nav.navigated) != 1 || nav.navigated[0] != route.Name {
					t.Errorf("navigated = %v, want [%s]", nav.navigated, route.Name)
				}
			} else if len(nav.navigated) != 0 {
				t.Errorf("navigated = %v, want none", nav.navigated)
			}
		})
	}
}

func TestBar_PressOutOfRange(t *testing.T) {
	nav := &fakeNavigator{}
	bar := New(testState(), nav)

	if bar.Press(-1) || bar.Press(4) {
		t.Error("out of range press should not navigate")
	}
	if len(nav.events) != 0 {
		t.Errorf("events = %v, want none", nav.events)
	}
}

func TestBar_LongPress(t *testing.T) {
	nav := &fakeNavigator{}
	bar := New(testState(), nav)

	bar.LongPress(1)

	if len(nav.events) != 1 || nav.events[0] != "tabLongPress:fav-1" {
		t.Errorf("events = %v, want [tabLongPress:fav-1]", nav.events)
	}
	if len(nav.navigated) != 0 {
		t.Errorf("long press should not navigate, got %v", nav.navigated)
	}
}

func TestEvent_PreventDefaultRequiresCancelable(t *testing.T) {
	ev := NewEvent(EventTabLongPress, "k", false)
	ev.PreventDefault()
	if ev.DefaultPrevented() {
		t.Error("non-cancelable event should ignore PreventDefault")
	}

	ev = NewEvent(EventTabPress, "k", true)
	ev.PreventDefault()
	if !ev.DefaultPrevented() {
		t.Error("cancelable event should record PreventDefault")
	}
}

func TestBar_ItemAt(t *testing.T) {
	bar := New(testState(), nil)

	// 42 cells over 4 items: 11, 11, 10, 10
	tests := []struct {
		col    int
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{10, 0, true},
		{11, 1, true},
		{21, 1, true},
		{22, 2, true},
		{32, 3, true},
		{41, 3, true},
		{42, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := bar.ItemAt(tt.col, 42)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ItemAt(%d) = %d, %v; want %d, %v", tt.col, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSplitWidth(t *testing.T) {
	got := splitWidth(10, 4)
	want := []int{3, 3, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitWidth(10, 4) = %v, want %v", got, want)
		}
	}
	if splitWidth(10, 0) != nil {
		t.Error("splitWidth with no items should be nil")
	}
}

func TestBar_View(t *testing.T) {
	bar := New(testState(), nil)
	out := bar.View(40, "#121212")

	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Fatalf("View() has %d lines, want %d", len(lines), Height)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
	plain := ansi.Strip(out)
	for _, label := range []string{"Home", "Favorite", "Search", "Profile"} {
		if !strings.Contains(plain, label) {
			t.Errorf("View() missing label %q", label)
		}
	}
}

func TestBar_ViewPlaceholders(t *testing.T) {
	state := State{Routes: []Route{{Key: "a"}, {Key: "b", Name: "b", Icon: "x"}}}
	out := New(state, nil).View(10, "")

	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Fatalf("View() has %d lines, want %d", len(lines), Height)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestBar_ViewEmpty(t *testing.T) {
	out := New(State{}, nil).View(6, "")
	if out != "      \n      " {
		t.Errorf("empty bar = %q, want two blank rows", out)
	}
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"Home", 10, "Home"},
		{"Favorite", 5, "Favo…"},
		{"", 5, " "},
		{"検索する", 5, "検索…"},
	}

	for _, tt := range tests {
		if got := fitLabel(tt.label, tt.width); got != tt.want {
			t.Errorf("fitLabel(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}

func TestIconGlyph(t *testing.T) {
	tests := []struct {
		icon string
		want string
	}{
		{"★", "★"},
		{"home", "h"},
		{"", " "},
		{"👍🏽 thumbs", "👍🏽"},
	}

	for _, tt := range tests {
		if got := iconGlyph(tt.icon); got != tt.want {
			t.Errorf("iconGlyph(%q) = %q, want %q", tt.icon, got, tt.want)
		}
	}
}
