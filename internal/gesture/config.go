package gesture

import (
	"fmt"
	"time"

	perrors "github.com/zhubert/pillbar/internal/errors"
	"github.com/zhubert/pillbar/internal/haptics"
)

// Profile names. Solid matches the android look (opaque card and border
// backgrounds), blur matches the ios look (transparent bar over a blur layer).
const (
	ProfileSolid = "solid"
	ProfileBlur  = "blur"
)

// CornerRadius is the radius range the bar morphs through, docked to floating.
type CornerRadius struct {
	Small float64
	Large float64
}

// Config holds every tunable of the tab bar. Both profiles share the same
// state machine and differ only in these values.
type Config struct {
	Profile string

	DockedWidthFraction   float64 // of the viewport width
	FloatingWidthFraction float64 // of the shorter viewport dimension
	ClampFraction         float64 // of the longer viewport dimension

	SettleDuration time.Duration
	SettleCurve    CurveName
	CornerRadius   CornerRadius
	UseBlur        bool
	HapticStyle    haptics.Style

	LongPressThreshold    time.Duration
	LongPressTolerance    float64 // points the pointer may wander before recognition
	TabPadding            float64
	HorizontalDragDivisor float64
}

// DefaultConfig returns the solid profile.
func DefaultConfig() Config {
	return Config{
		Profile:               ProfileSolid,
		DockedWidthFraction:   1.0,
		FloatingWidthFraction: 0.8,
		ClampFraction:         0.03,
		SettleDuration:        250 * time.Millisecond,
		SettleCurve:           CurveEaseInOut,
		CornerRadius:          CornerRadius{Small: 0, Large: 100},
		UseBlur:               false,
		HapticStyle:           haptics.Heavy,
		LongPressThreshold:    500 * time.Millisecond,
		LongPressTolerance:    10,
		TabPadding:            5,
		HorizontalDragDivisor: 2.5,
	}
}

// Preset returns the named profile.
func Preset(name string) (Config, error) {
	cfg := DefaultConfig()
	switch name {
	case ProfileSolid, "":
		return cfg, nil
	case ProfileBlur:
		cfg.Profile = ProfileBlur
		cfg.UseBlur = true
		cfg.CornerRadius = CornerRadius{Small: 3, Large: 100}
		return cfg, nil
	}
	return Config{}, perrors.ProfileNotFound(name)
}

// PresetForPlatform picks the profile a platform uses by default.
func PresetForPlatform(platform string) (Config, error) {
	switch platform {
	case "ios":
		return Preset(ProfileBlur)
	case "android", "":
		return Preset(ProfileSolid)
	}
	return Config{}, perrors.ConfigInvalid(fmt.Sprintf("unknown platform %q", platform))
}

// Validate reports the first field that would break the state machine.
func (c Config) Validate() error {
	switch {
	case c.DockedWidthFraction <= 0 || c.DockedWidthFraction > 1:
		return perrors.ConfigInvalid("docked width fraction must be in (0, 1]")
	case c.FloatingWidthFraction <= 0 || c.FloatingWidthFraction > 1:
		return perrors.ConfigInvalid("floating width fraction must be in (0, 1]")
	case c.FloatingWidthFraction >= c.DockedWidthFraction:
		return perrors.ConfigInvalid("floating width fraction must be below the docked width fraction")
	case c.ClampFraction <= 0 || c.ClampFraction >= 1:
		return perrors.ConfigInvalid("clamp fraction must be in (0, 1)")
	case c.SettleDuration <= 0:
		return perrors.ConfigInvalid("settle duration must be positive")
	case c.CornerRadius.Small < 0 || c.CornerRadius.Large < c.CornerRadius.Small:
		return perrors.ConfigInvalid("corner radius range must satisfy 0 <= small <= large")
	case c.LongPressThreshold <= 0:
		return perrors.ConfigInvalid("long press threshold must be positive")
	case c.LongPressTolerance < 0:
		return perrors.ConfigInvalid("long press tolerance must not be negative")
	case c.TabPadding < 0:
		return perrors.ConfigInvalid("tab padding must not be negative")
	case c.HorizontalDragDivisor <= 0:
		return perrors.ConfigInvalid("horizontal drag divisor must be positive")
	}
	if _, err := haptics.ParseStyle(string(c.HapticStyle)); err != nil {
		return perrors.ConfigInvalid(err.Error())
	}
	if _, err := c.SettleCurve.Curve(c.SettleDuration); err != nil {
		return err
	}
	return nil
}
