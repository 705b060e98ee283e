// Package haptics delivers feedback for the tab bar and the demo screens.
// A terminal has no vibration motor, so an impact is rendered as a short
// system beep and a notification as a desktop notification, both through
// the beeep library. Pulses are fire-and-forget: the caller never waits and
// failures are only logged.
package haptics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/pillbar/internal/logger"
)

// Style is the strength of an impact.
type Style string

const (
	Light  Style = "light"
	Medium Style = "medium"
	Heavy  Style = "heavy"
)

// ParseStyle validates a style name from configuration.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case Light, Medium, Heavy:
		return Style(s), nil
	case "":
		return Heavy, nil
	}
	return "", fmt.Errorf("unknown haptic style %q", s)
}

// Duration returns the beep length in milliseconds for the style.
func (s Style) Duration() int {
	switch s {
	case Light:
		return 20
	case Medium:
		return 40
	default:
		return 80
	}
}

// beepFunc is the function used to emit a pulse.
// It can be replaced in tests to avoid real beeps.
var (
	beepMu   sync.RWMutex
	beepFunc = beeep.Beep
)

// SetBeeper replaces the pulse function. Used by tests.
func SetBeeper(f func(freq float64, durationMs int) error) {
	beepMu.Lock()
	defer beepMu.Unlock()
	beepFunc = f
}

// ResetBeeper restores the default beeep implementation.
func ResetBeeper() {
	beepMu.Lock()
	defer beepMu.Unlock()
	beepFunc = beeep.Beep
}

func currentBeeper() func(float64, int) error {
	beepMu.RLock()
	defer beepMu.RUnlock()
	return beepFunc
}

// Notification is the outcome a notification pulse reports.
type Notification string

const (
	Success Notification = "success"
	Warning Notification = "warning"
	Error   Notification = "error"
)

var (
	notifyMu   sync.RWMutex
	notifyFunc = beeep.Notify
)

// SetNotifier replaces the desktop notification function. Used by tests.
func SetNotifier(f func(title, message string, icon any) error) {
	notifyMu.Lock()
	defer notifyMu.Unlock()
	notifyFunc = f
}

// ResetNotifier restores the default beeep implementation.
func ResetNotifier() {
	notifyMu.Lock()
	defer notifyMu.Unlock()
	notifyFunc = beeep.Notify
}

func currentNotifier() func(string, string, any) error {
	notifyMu.RLock()
	defer notifyMu.RUnlock()
	return notifyFunc
}

// Beeper emits impacts as terminal beeps on a background goroutine.
type Beeper struct {
	enabled atomic.Bool
	wg      sync.WaitGroup
}

// New returns a Beeper. A disabled Beeper drops every impact.
func New(enabled bool) *Beeper {
	b := &Beeper{}
	b.enabled.Store(enabled)
	return b
}

// SetEnabled switches pulses on or off. Pulses already started finish.
func (b *Beeper) SetEnabled(enabled bool) {
	b.enabled.Store(enabled)
}

// Enabled reports whether pulses are emitted.
func (b *Beeper) Enabled() bool {
	return b != nil && b.enabled.Load()
}

// Impact requests one pulse and returns immediately.
func (b *Beeper) Impact(style Style) {
	if !b.Enabled() {
		return
	}
	beep := currentBeeper()
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.WithComponent("haptics").Warn("impact panicked", "style", style, "panic", r)
			}
		}()
		if err := beep(beeep.DefaultFreq, style.Duration()); err != nil {
			logger.WithComponent("haptics").Warn("impact failed", "style", style, "error", err)
		}
	}()
}

// Selection is the lightest pulse, used when a choice changes.
func (b *Beeper) Selection() {
	b.Impact(Light)
}

// Notify posts a desktop notification for the outcome and returns
// immediately.
func (b *Beeper) Notify(kind Notification) {
	if !b.Enabled() {
		return
	}
	notify := currentNotifier()
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.WithComponent("haptics").Warn("notification panicked", "kind", kind, "panic", r)
			}
		}()
		if err := notify("pillbar", string(kind), ""); err != nil {
			logger.WithComponent("haptics").Warn("notification failed", "kind", kind, "error", err)
		}
	}()
}

// Wait blocks until every pulse started so far has finished.
func (b *Beeper) Wait() {
	b.wg.Wait()
}

// Recorder counts impacts instead of emitting them. It is used by demos and
// by tests in packages that drive the gesture core.
type Recorder struct {
	mu            sync.Mutex
	styles        []Style
	notifications []Notification
}

// Impact records the style.
func (r *Recorder) Impact(style Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles = append(r.styles, style)
}

// Count returns the number of impacts recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.styles)
}

// Styles returns a copy of the recorded styles in order.
func (r *Recorder) Styles() []Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Style, len(r.styles))
	copy(out, r.styles)
	return out
}

// Selection records a light impact.
func (r *Recorder) Selection() {
	r.Impact(Light)
}

// Notify records the notification.
func (r *Recorder) Notify(kind Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, kind)
}

// Notifications returns a copy of the recorded notifications in order.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}
