package demo

import (
	"fmt"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/pillbar/internal/app"
	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/haptics"
	"github.com/zhubert/pillbar/internal/keys"
	"github.com/zhubert/pillbar/internal/logger"
	"github.com/zhubert/pillbar/internal/tabbar"
	"github.com/zhubert/pillbar/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // How long the frame stays on screen
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every input step (default: false)
	CaptureEveryStep bool

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// PointerDelay is the delay after mouse input (default: 50ms)
	PointerDelay time.Duration

	// Tick is the virtual time step used while waiting (default: 16ms)
	Tick time.Duration

	// AnimationFrameInterval spaces frames captured while the bar is
	// settling (default: 50ms)
	AnimationFrameInterval time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep:       false,
		KeyDelay:               100 * time.Millisecond,
		PointerDelay:           50 * time.Millisecond,
		Tick:                   16 * time.Millisecond,
		AnimationFrameInterval: 50 * time.Millisecond,
	}
}

// virtualClock is the demo's notion of now.
type virtualClock struct {
	t time.Time
}

func (c *virtualClock) Now() time.Time { return c.t }

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config   ExecutorConfig
	model    *app.Model
	clock    *virtualClock
	recorder *haptics.Recorder
	frames   []Frame

	pointerX, pointerY int
	pointerDown        bool

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	def := DefaultExecutorConfig()
	if cfg.Tick <= 0 {
		cfg.Tick = def.Tick
	}
	if cfg.AnimationFrameInterval <= 0 {
		cfg.AnimationFrameInterval = def.AnimationFrameInterval
	}
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Cleanup releases the model and restores the global theme.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
		e.model = nil
	}
	ui.SetTheme(ui.DefaultTheme)
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	e.captureFrame(0, 500*time.Millisecond)

	log := logger.WithComponent("demo")
	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			log.Warn("scenario step failed", "scenario", scenario.Name, "step", i, "error", err)
			return e.frames, fmt.Errorf("step %d failed: %w", i, err)
		}
	}
	log.Debug("scenario complete", "scenario", scenario.Name, "frames", len(e.frames))

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	s := scenario.Setup

	cfg := config.Default()
	if s.Platform != "" {
		cfg.SetPlatform(s.Platform)
	}
	if s.Theme != "" {
		cfg.SetTheme(s.Theme)
	}
	cfg.SetProfile(s.Profile)
	cfg.Scale = s.Scale
	cfg.BottomInset = s.BottomInset
	if errs := cfg.Validate(); len(errs) > 0 {
		return errs[0]
	}

	e.clock = &virtualClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	e.recorder = &haptics.Recorder{}

	m, err := app.New(app.Options{
		Config:      cfg,
		Haptics:     e.recorder,
		Version:     "demo",
		ViewContext: ui.NewViewContext(s.Scale.Column, s.Scale.Row),
		Now:         e.clock.Now,
		Manual:      true,
	})
	if err != nil {
		return err
	}
	e.model = m

	if len(s.BlockedTabs) > 0 {
		m.Navigator().AddListener(tabbar.EventTabPress, func(ev *tabbar.Event) {
			for _, r := range m.Navigator().State().Routes {
				if r.Key == ev.Target && slices.Contains(s.BlockedTabs, r.Name) {
					ev.PreventDefault()
				}
			}
		})
	}

	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.wait(index, step.Duration)

	case StepKey:
		e.update(keys.Press(step.Key))
		e.maybeCapture(index, e.config.KeyDelay)

	case StepPress:
		e.press(step.X, step.Y)
		e.maybeCapture(index, e.config.PointerDelay)

	case StepPressTab:
		x, y, ok := e.model.ItemCell(step.Tab)
		if !ok {
			return fmt.Errorf("no tab item %d", step.Tab)
		}
		e.press(x, y)
		e.maybeCapture(index, e.config.PointerDelay)

	case StepMove:
		if !e.pointerDown {
			return fmt.Errorf("move without a pressed pointer")
		}
		e.pointerX += step.X
		e.pointerY += step.Y
		e.update(tea.MouseMotionMsg{X: e.pointerX, Y: e.pointerY, Button: tea.MouseLeft})
		e.maybeCapture(index, e.config.PointerDelay)

	case StepRelease:
		if !e.pointerDown {
			return fmt.Errorf("release without a pressed pointer")
		}
		e.pointerDown = false
		e.update(tea.MouseReleaseMsg{X: e.pointerX, Y: e.pointerY, Button: tea.MouseLeft})
		e.maybeCapture(index, e.config.PointerDelay)

	case StepHold:
		e.wait(index, e.model.Core().Config().LongPressThreshold+e.config.Tick)

	case StepSettle:
		if e.model.Core().Settling() {
			e.wait(index, e.model.Core().Config().SettleDuration+e.config.Tick)
		}
		if e.model.Core().Settling() {
			return fmt.Errorf("bar did not settle")
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)

	case StepExpect:
		if err := step.Check(e.State()); err != nil {
			return fmt.Errorf("expect %s: %w", step.Description, err)
		}
	}

	return nil
}

// State reports the shell state expectations are checked against.
func (e *Executor) State() State {
	core := e.model.Core()
	snap := core.Snapshot()
	nav := e.model.Navigator()
	return State{
		Phase:        snap.Phase,
		Active:       snap.Active,
		Offset:       snap.Offset,
		Anchor:       snap.Anchor,
		Layout:       core.Layout(),
		Presentation: core.Present(ui.CurrentTheme().Colors()),
		Tab:          nav.Index(),
		Route:        nav.Current().Name,
		Haptics:      e.recorder.Count(),
	}
}

func (e *Executor) press(x, y int) {
	e.pointerX, e.pointerY = x, y
	e.pointerDown = true
	e.update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

// wait advances virtual time by d in ticks. Long-press timers and settle
// frames are delivered the way the runtime would deliver them. While the bar
// animates, frames are captured at the animation interval; otherwise the
// wait becomes a single frame.
func (e *Executor) wait(index int, d time.Duration) {
	core := e.model.Core()
	var sinceCapture time.Duration
	animated := false

	for elapsed := time.Duration(0); elapsed < d; {
		step := min(e.config.Tick, d-elapsed)
		e.clock.t = e.clock.t.Add(step)
		elapsed += step

		if seq, due, ok := core.PendingLongPress(); ok && !e.clock.t.Before(due) {
			e.update(app.LongPressMsg{Seq: seq})
		}
		if core.Settling() {
			animated = true
			if f, ok := core.Advance(); ok {
				e.update(app.FrameMsg{Frame: f})
			}
		}

		sinceCapture += step
		if animated && sinceCapture >= e.config.AnimationFrameInterval {
			e.captureFrame(index, sinceCapture)
			sinceCapture = 0
		}
	}

	if !animated || sinceCapture > 0 {
		e.captureFrame(index, sinceCapture)
	}
}

func (e *Executor) maybeCapture(index int, delay time.Duration) {
	if e.config.CaptureEveryStep {
		e.captureFrame(index, delay)
	}
}

func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})
	e.currentAnnotation = ""
}

func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}
