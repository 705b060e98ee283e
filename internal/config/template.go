package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is the default config.yaml with every override commented out.
const Template = `# pillbar configuration

theme: dark           # dark or light
platform: android     # android (solid bar) or ios (blurred bar)
# profile: blur       # solid or blur; overrides the platform's default
bottom_inset: 0       # safe-area inset below the bar, in points
haptics: true         # beep on long-press

scale:
  column: 8           # points per terminal column
  row: 16             # points per terminal row

tab_bar:
  # docked_width_fraction: 1.0    # of the viewport width
  # floating_width_fraction: 0.8  # of the shorter viewport side
  # clamp_fraction: 0.03          # of the longer viewport side
  # settle_duration: 250ms
  # settle_curve: ease-in-out     # ease-in-out, linear, or spring
  # corner_radius:
  #   small: 0
  #   large: 100
  # use_blur: false
  # haptic_style: heavy           # light, medium, or heavy
  # long_press_threshold: 500ms
  # long_press_tolerance: 10      # points
  # tab_padding: 5
  # horizontal_drag_divisor: 2.5
`

// WriteTemplate writes Template to path. It refuses to overwrite.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
