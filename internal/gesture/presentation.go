package gesture

// Colors are the theme colors the bar's background switches between.
// An empty string means transparent.
type Colors struct {
	Primary string
	Card    string
	Border  string
	Text    string
}

// Presentation is everything the renderer needs to draw the bar.
type Presentation struct {
	Width         float64
	CornerRadius  float64
	BottomPadding float64
	Offset        Vec2    // raw drag translation, applied first
	Recenter      float64 // horizontal translation applied after Offset
	Background    string
	Blur          bool
	Elevation     int
	Active        bool
}

// Elevation levels.
const (
	ElevationResting = 5
	ElevationActive  = 10
)

// Present derives the bar's presentation from a snapshot. Width, corner
// radius and bottom padding are clamped to their ranges even while the
// offset overdrags past the clamp distance.
func Present(snap Snapshot, l Layout, cfg Config, colors Colors) Presentation {
	y := snap.Offset.Y
	clamp := l.ClampDistance

	width := Interpolate(y, 0, clamp, l.DockedWidth, l.FloatingWidth)
	bottomSpace := cfg.TabPadding
	if cfg.UseBlur {
		bottomSpace = l.BottomInset
	}

	p := Presentation{
		Width:         width,
		CornerRadius:  Interpolate(y, 0, clamp, cfg.CornerRadius.Small, cfg.CornerRadius.Large),
		BottomPadding: Interpolate(y, 0, clamp, bottomSpace, cfg.TabPadding),
		Offset:        snap.Offset,
		Recenter:      (l.ViewportWidth - width) / 2,
		Blur:          cfg.UseBlur,
		Elevation:     ElevationResting,
		Active:        snap.Active,
	}
	if snap.Active {
		p.Elevation = ElevationActive
	}

	switch {
	case cfg.UseBlur && snap.Active:
		p.Background = colors.Card
	case cfg.UseBlur:
		p.Background = ""
	case snap.Active:
		p.Background = colors.Border
	default:
		p.Background = colors.Card
	}
	return p
}

// Left returns the bar's final x position: offset first, then recenter.
func (p Presentation) Left() float64 {
	return p.Offset.X + p.Recenter
}
