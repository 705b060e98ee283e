// Package demo replays scripted gestures against the pillbar shell. It uses
// the same manual clock and recorded haptics as the tests, so every run is
// deterministic and reproducible without a real terminal.
package demo

import (
	"fmt"
	"math"
	"time"

	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/gesture"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait lets virtual time pass, delivering long-press timers and
	// settle frames as they come due.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepPress puts the mouse button down at a cell.
	StepPress
	// StepPressTab puts the mouse button down on a tab item, wherever the
	// bar is drawn at that moment.
	StepPressTab
	// StepMove drags the pointer by a number of cells.
	StepMove
	// StepRelease lifts the mouse button where the pointer is.
	StepRelease
	// StepHold waits out the long-press threshold.
	StepHold
	// StepSettle waits until a running settle animation completes.
	StepSettle
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
	// StepExpect checks the shell state and fails the run on a mismatch.
	StepExpect
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string

	// For StepKey
	Key string

	// For StepPress (absolute cell) and StepMove (relative cells)
	X, Y int

	// For StepPressTab
	Tab int

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string

	// For StepExpect
	Check func(State) error
}

// State is what an expectation sees.
type State struct {
	Phase        gesture.Phase
	Active       bool
	Offset       gesture.Vec2
	Anchor       gesture.Vec2
	Layout       gesture.Layout
	Presentation gesture.Presentation
	Tab          int
	Route        string
	Haptics      int
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 80)
	Height      int // Terminal height (default 24)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	Profile     string // empty picks the platform's profile
	Platform    string
	Theme       string
	Scale       config.Scale
	BottomInset float64

	// BlockedTabs are route names whose tabPress a listener cancels.
	BlockedTabs []string
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Platform: config.PlatformAndroid,
		Theme:    config.ThemeDark,
		Scale: config.Scale{
			Column: config.DefaultPointsPerColumn,
			Row:    config.DefaultPointsPerRow,
		},
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 80
	}
	if s.Height <= 0 {
		s.Height = 24
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Scale.Column <= 0 || s.Setup.Scale.Row <= 0 {
		s.Setup.Scale = DefaultSetup().Scale
	}
	for i, step := range s.Steps {
		if step.Type == StepExpect && step.Check == nil {
			return &ValidationError{Field: fmt.Sprintf("Steps[%d]", i), Message: "expectation has no check"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Press puts the mouse button down at cell (x, y).
func Press(x, y int) Step {
	return Step{Type: StepPress, X: x, Y: y}
}

// PressTab puts the mouse button down on tab item i.
func PressTab(i int) Step {
	return Step{Type: StepPressTab, Tab: i}
}

// Move drags the pointer by dx columns and dy rows.
func Move(dx, dy int) Step {
	return Step{Type: StepMove, X: dx, Y: dy}
}

// Release lifts the mouse button.
func Release() Step {
	return Step{Type: StepRelease}
}

// Hold keeps the button down until the long-press is recognized.
func Hold() Step {
	return Step{Type: StepHold}
}

// Settle waits for the bar to come to rest.
func Settle() Step {
	return Step{Type: StepSettle}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}

// Expect fails the run when check returns an error.
func Expect(description string, check func(State) error) Step {
	return Step{Type: StepExpect, Description: description, Check: check}
}

// ExpectPhase checks the bar's phase.
func ExpectPhase(p gesture.Phase) Step {
	return Expect("phase "+p.String(), func(s State) error {
		if s.Phase != p {
			return fmt.Errorf("phase = %s, want %s", s.Phase, p)
		}
		return nil
	})
}

// ExpectRoute checks the active route name.
func ExpectRoute(name string) Step {
	return Expect("route "+name, func(s State) error {
		if s.Route != name {
			return fmt.Errorf("route = %q, want %q", s.Route, name)
		}
		return nil
	})
}

// ExpectHaptics checks how many impacts have fired so far.
func ExpectHaptics(n int) Step {
	return Expect(fmt.Sprintf("%d haptics", n), func(s State) error {
		if s.Haptics != n {
			return fmt.Errorf("haptics = %d, want %d", s.Haptics, n)
		}
		return nil
	})
}

// ExpectShape checks the bar's width and corner radius in points.
func ExpectShape(width, radius float64) Step {
	return Expect(fmt.Sprintf("width %g radius %g", width, radius), func(s State) error {
		p := s.Presentation
		if !near(p.Width, width) || !near(p.CornerRadius, radius) {
			return fmt.Errorf("width/radius = %g/%g, want %g/%g", p.Width, p.CornerRadius, width, radius)
		}
		return nil
	})
}

// ExpectRestingAt checks that offset and anchor both sit at the phase's
// resting position.
func ExpectRestingAt(p gesture.Phase) Step {
	return Expect("resting "+p.String(), func(s State) error {
		want := s.Layout.Rest(p)
		if s.Active {
			return fmt.Errorf("still active")
		}
		if !nearVec(s.Offset, want) || !nearVec(s.Anchor, want) {
			return fmt.Errorf("offset/anchor = %v/%v, want %v", s.Offset, s.Anchor, want)
		}
		return nil
	})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b gesture.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
