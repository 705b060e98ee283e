// Package scenarios contains built-in demo scenarios for pillbar.
package scenarios

import (
	"time"

	"github.com/zhubert/pillbar/internal/demo"
	perrors "github.com/zhubert/pillbar/internal/errors"
	"github.com/zhubert/pillbar/internal/gesture"
)

// Basic walks through the tab bar on a desktop-sized terminal:
// - Tapping a tab to switch screens
// - Long-pressing the bar and dragging it up into a floating pill
// - Dragging the pill back down to dock it
// - The keyboard fallbacks for the same moves
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Tap tabs, drag the bar into a pill and back",
	Width:       80,
	Height:      24,
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),

		// === Tap to navigate ===
		demo.Annotate("Tap a tab to switch screens"),
		demo.PressTab(1),
		demo.Release(),
		demo.Wait(500 * time.Millisecond),
		demo.ExpectRoute("favorite"),
		demo.ExpectHaptics(0),

		// === Long-press and drag up ===
		demo.Annotate("Long-press the bar to pick it up"),
		demo.PressTab(2),
		demo.Hold(),
		demo.ExpectPhase(gesture.PhaseDragging),
		demo.ExpectHaptics(1),

		demo.Move(0, -1),
		demo.Wait(100 * time.Millisecond),
		demo.Move(0, -2),
		demo.Wait(200 * time.Millisecond),
		demo.Annotate("Release past the threshold and it floats"),
		demo.Release(),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseFloating),
		demo.ExpectRestingAt(gesture.PhaseFloating),
		demo.ExpectRoute("favorite"),
		demo.Wait(1 * time.Second),

		// === Drag back down ===
		demo.Annotate("Drag the pill back down to dock it"),
		demo.PressTab(2),
		demo.Hold(),
		demo.ExpectHaptics(2),
		demo.Move(0, 3),
		demo.Wait(200 * time.Millisecond),
		demo.Release(),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseDocked),
		demo.ExpectRestingAt(gesture.PhaseDocked),
		demo.Wait(1 * time.Second),

		// === Keyboard ===
		demo.Annotate("Or press f to float and dock"),
		demo.KeyWithDesc("f", "float"),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseFloating),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("f", "dock"),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseDocked),

		demo.Annotate("Arrows switch tabs"),
		demo.Key("right"),
		demo.Wait(300 * time.Millisecond),
		demo.ExpectRoute("search"),
		demo.ExpectHaptics(2),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Phone,
	}
}

// Get returns a scenario by name.
func Get(name string) (*demo.Scenario, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, perrors.ScenarioNotFound(name)
}
