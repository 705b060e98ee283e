// Package app is the Bubble Tea model of the pillbar shell. It owns the
// host navigator, the gesture core and the screen, and routes terminal
// input between them.
package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/haptics"
	"github.com/zhubert/pillbar/internal/logger"
	"github.com/zhubert/pillbar/internal/navigation"
	"github.com/zhubert/pillbar/internal/tabbar"
	"github.com/zhubert/pillbar/internal/ui"
)

// Haptics is the feedback the shell can request. *haptics.Beeper and
// *haptics.Recorder both satisfy it.
type Haptics interface {
	gesture.Impactor
	Selection()
	Notify(kind haptics.Notification)
}

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Screens []navigation.Screen // defaults to navigation.DefaultScreens()
	Haptics Haptics             // defaults to a Beeper honoring the config
	Version string

	// ViewContext defaults to the ui singleton.
	ViewContext *ui.ViewContext

	// Now and Manual are passed to the gesture core. A manual core only
	// animates when the caller steps it, which scripted demos rely on.
	Now           func() time.Time
	Manual        bool
	FrameInterval time.Duration
}

// press tracks the pointer from mouse down to mouse up on the bar.
type press struct {
	active bool
	seq    int
	item   int // tab item under the pointer, or -1
}

// Model is the main application model
type Model struct {
	cfg     *config.Config
	version string

	nav     *navigation.Navigator
	core    *gesture.Core
	haptics Haptics
	vc      *ui.ViewContext
	now     func() time.Time
	manual  bool

	header *ui.Header
	footer *ui.Footer
	screen *ui.ScreenView
	modal  *ui.Modal

	width, height int
	press         press
	lastTarget    gesture.Phase
	unsubscribe   []func()
	log           *slog.Logger
}

// New creates the model. It fails only when the configuration does not
// resolve to a valid tab bar.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	barCfg, err := cfg.TabBarConfig()
	if err != nil {
		return nil, err
	}

	ui.SetTheme(ui.ThemeName(cfg.GetTheme()))
	theme := ui.CurrentTheme()

	vc := opts.ViewContext
	if vc == nil {
		vc = ui.GetViewContext()
	}
	scale := cfg.GetScale()
	vc.SetScale(scale.Column, scale.Row)

	fb := opts.Haptics
	if fb == nil {
		fb = haptics.New(cfg.HapticsEnabled())
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	core, err := gesture.NewCore(barCfg, gesture.Options{
		Impactor:      fb,
		Now:           now,
		FrameInterval: opts.FrameInterval,
		Manual:        opts.Manual,
	})
	if err != nil {
		return nil, err
	}

	screens := opts.Screens
	if len(screens) == 0 {
		screens = navigation.DefaultScreens()
	}

	m := &Model{
		cfg:     cfg,
		version: opts.Version,
		nav:     navigation.New(screens, theme.Primary, theme.Inactive),
		core:    core,
		haptics: fb,
		vc:      vc,
		now:     now,
		manual:  opts.Manual,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		screen:  ui.NewScreenView(),
		modal:   ui.NewModal(),
		press:   press{item: -1},
		log:     logger.WithComponent("app"),
	}
	m.unsubscribe = append(m.unsubscribe,
		m.nav.AddListener(tabbar.EventTabPress, m.onTabPress),
		m.nav.AddListener(tabbar.EventTabLongPress, m.onTabLongPress),
	)
	m.syncScreen()
	return m, nil
}

// Init starts listening for settle frames.
func (m *Model) Init() tea.Cmd {
	return m.listenForFrames()
}

// Core returns the gesture core.
func (m *Model) Core() *gesture.Core {
	return m.core
}

// Navigator returns the host navigator.
func (m *Model) Navigator() *navigation.Navigator {
	return m.nav
}

// Screen returns the screen view.
func (m *Model) Screen() *ui.ScreenView {
	return m.screen
}

// Footer returns the footer.
func (m *Model) Footer() *ui.Footer {
	return m.footer
}

// Modal returns the modal host.
func (m *Model) Modal() *ui.Modal {
	return m.modal
}

// Close stops the settle driver and drops navigator listeners.
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	m.core.Close()
}

// tabBar builds the stateless bar from the navigator's current state.
func (m *Model) tabBar() tabbar.Bar {
	return tabbar.New(m.nav.State(), m.nav)
}

// syncScreen points the screen at the navigator's active route.
func (m *Model) syncScreen() {
	r := m.nav.Current()
	m.screen.SetRoute(r.Name, r.Title)
	m.header.SetTitle(r.Title)
}

// onTabPress scrolls the screen back to the top when its own tab is
// pressed again.
func (m *Model) onTabPress(e *tabbar.Event) {
	if e.Target == m.nav.Current().Key {
		m.screen.GotoTop()
	}
}

func (m *Model) onTabLongPress(e *tabbar.Event) {
	m.log.Debug("tab long press", "target", e.Target)
}
