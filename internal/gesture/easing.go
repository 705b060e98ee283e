package gesture

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	perrors "github.com/zhubert/pillbar/internal/errors"
)

// CurveName selects the settle timing curve.
type CurveName string

const (
	CurveEaseInOut CurveName = "ease-in-out"
	CurveLinear    CurveName = "linear"
	CurveSpring    CurveName = "spring"
)

// Curve maps normalized time in [0, 1] to progress. Curve(0) is 0 and
// Curve(1) is 1; values in between may overshoot for springs.
type Curve func(t float64) float64

// Curve builds the timing function for a settle of the given duration.
func (n CurveName) Curve(d time.Duration) (Curve, error) {
	switch n {
	case CurveEaseInOut, "":
		return easeInOutQuad, nil
	case CurveLinear:
		return func(t float64) float64 { return clamp01(t) }, nil
	case CurveSpring:
		return springCurve(d), nil
	}
	return nil, perrors.ConfigInvalid(fmt.Sprintf("unknown settle curve %q", n))
}

func easeInOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - (-2*t+2)*(-2*t+2)/2
}

const springFPS = 60

// springCurve samples a harmonica spring at 60fps across the settle duration.
// The final sample is pinned to 1 so the settle stays time-bounded.
func springCurve(d time.Duration) Curve {
	secs := d.Seconds()
	steps := int(secs * springFPS)
	if steps < 2 {
		steps = 2
	}
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), 6.0/secs, 0.7)

	samples := make([]float64, steps+1)
	var pos, vel float64
	for i := 1; i <= steps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[steps] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		f := t * float64(steps)
		i := int(f)
		if i >= steps {
			return 1
		}
		frac := f - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
