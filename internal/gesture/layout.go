package gesture

import "math"

// Layout is derived from the viewport on every resize.
type Layout struct {
	ViewportWidth  float64
	ViewportHeight float64
	Landscape      bool
	DockedWidth    float64
	FloatingWidth  float64
	ClampDistance  float64 // negative: floating moves the bar up
	BottomInset    float64
}

// NewLayout derives the layout for a viewport of w x h points.
func NewLayout(w, h, bottomInset float64, cfg Config) Layout {
	landscape := w > h
	return Layout{
		ViewportWidth:  w,
		ViewportHeight: h,
		Landscape:      landscape,
		DockedWidth:    cfg.DockedWidthFraction * w,
		FloatingWidth:  cfg.FloatingWidthFraction * math.Min(w, h),
		ClampDistance:  -(cfg.ClampFraction * math.Max(w, h)) - bottomInset,
		BottomInset:    bottomInset,
	}
}

// Valid reports whether the layout can host a floating bar.
func (l Layout) Valid() bool {
	return l.ViewportHeight > 0 && l.FloatingWidth < l.DockedWidth && l.ClampDistance < 0
}

// Rest returns the resting offset for a terminal phase.
func (l Layout) Rest(p Phase) Vec2 {
	if p == PhaseFloating {
		return Vec2{X: 0, Y: l.ClampDistance}
	}
	return Vec2{}
}

// SettleTarget decides where a released bar goes. Only an offset strictly
// beyond the clamp distance floats; the exact clamp distance docks.
func (l Layout) SettleTarget(offsetY float64) Phase {
	if offsetY < l.ClampDistance {
		return PhaseFloating
	}
	return PhaseDocked
}
