package scenarios

import (
	"fmt"
	"time"

	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/demo"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/navigation"
)

// Phone replays the tab bar's guarantees on a 375x812 point viewport: a
// 75x29 terminal at 5x28 points per cell. The clamp distance is 3% of the
// height (-24.36) and the floating width is 80% of the width (300).
var Phone = &demo.Scenario{
	Name:        "phone",
	Description: "Tab bar guarantees on a 375x812 phone viewport",
	Width:       75,
	Height:      29,
	Setup: &demo.ScenarioSetup{
		Profile:     gesture.ProfileSolid,
		Platform:    config.PlatformAndroid,
		Theme:       config.ThemeDark,
		Scale:       config.Scale{Column: 5, Row: 28},
		BlockedTabs: []string{navigation.RouteProfile},
	},
	Steps: []demo.Step{
		demo.ExpectPhase(gesture.PhaseDocked),
		demo.ExpectShape(375, 0),
		demo.Wait(500 * time.Millisecond),

		// === Long-press without a drag ===
		demo.Annotate("Long-press and let go without moving"),
		demo.PressTab(0),
		demo.Hold(),
		demo.ExpectHaptics(1),
		demo.Release(),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseDocked),
		demo.ExpectRestingAt(gesture.PhaseDocked),
		demo.ExpectHaptics(1),
		demo.ExpectRoute(navigation.RouteHome),
		demo.Wait(500 * time.Millisecond),

		// === One row up is -28, past the clamp ===
		demo.Annotate("Drag past the clamp distance"),
		demo.PressTab(0),
		demo.Hold(),
		demo.Move(0, -1),
		demo.Release(),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseFloating),
		demo.ExpectShape(300, 100),
		demo.ExpectRestingAt(gesture.PhaseFloating),
		demo.Wait(1 * time.Second),

		// === The next drag starts where the last one ended ===
		demo.Annotate("A second drag starts from the floating anchor"),
		demo.PressTab(0),
		demo.Hold(),
		demo.ExpectPhase(gesture.PhaseDragging),
		demo.Expect("no snap to origin", func(s demo.State) error {
			want := s.Layout.ClampDistance
			if s.Offset.Y != want || s.Anchor.Y != want {
				return fmt.Errorf("offset/anchor y = %g/%g, want %g", s.Offset.Y, s.Anchor.Y, want)
			}
			return nil
		}),
		demo.Capture(),
		demo.Move(0, 1),
		demo.Release(),
		demo.Settle(),
		demo.ExpectPhase(gesture.PhaseDocked),
		demo.ExpectShape(375, 0),
		demo.Wait(1 * time.Second),

		// === Canceled tab presses ===
		demo.Annotate("A listener cancels presses on Profile"),
		demo.PressTab(3),
		demo.Release(),
		demo.Wait(300 * time.Millisecond),
		demo.ExpectRoute(navigation.RouteHome),
		demo.PressTab(1),
		demo.Release(),
		demo.Wait(300 * time.Millisecond),
		demo.ExpectRoute(navigation.RouteFavorite),
		demo.ExpectHaptics(3),

		demo.Wait(2 * time.Second),
	},
}
