// Package config loads and saves pillbar's YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	perrors "github.com/zhubert/pillbar/internal/errors"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/haptics"
)

const (
	configDirName  = ".pillbar"
	configFileName = "config.yaml"
)

// Theme and platform names.
const (
	ThemeDark       = "dark"
	ThemeLight      = "light"
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Default cell-to-point scale. A terminal cell is roughly twice as tall as
// it is wide.
const (
	DefaultPointsPerColumn = 8
	DefaultPointsPerRow    = 16
)

// Duration is a time.Duration written as a string like "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// Scale converts terminal cells to the points the gesture core works in.
type Scale struct {
	Column float64 `yaml:"column"`
	Row    float64 `yaml:"row"`
}

// CornerRadius overrides the radius range.
type CornerRadius struct {
	Small *float64 `yaml:"small,omitempty"`
	Large *float64 `yaml:"large,omitempty"`
}

// TabBar holds per-field overrides of the selected profile. Nil fields keep
// the profile's value.
type TabBar struct {
	DockedWidthFraction   *float64      `yaml:"docked_width_fraction,omitempty"`
	FloatingWidthFraction *float64      `yaml:"floating_width_fraction,omitempty"`
	ClampFraction         *float64      `yaml:"clamp_fraction,omitempty"`
	SettleDuration        *Duration     `yaml:"settle_duration,omitempty"`
	SettleCurve           string        `yaml:"settle_curve,omitempty"`
	CornerRadius          *CornerRadius `yaml:"corner_radius,omitempty"`
	UseBlur               *bool         `yaml:"use_blur,omitempty"`
	HapticStyle           string        `yaml:"haptic_style,omitempty"`
	LongPressThreshold    *Duration     `yaml:"long_press_threshold,omitempty"`
	LongPressTolerance    *float64      `yaml:"long_press_tolerance,omitempty"`
	TabPadding            *float64      `yaml:"tab_padding,omitempty"`
	HorizontalDragDivisor *float64      `yaml:"horizontal_drag_divisor,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Theme       string  `yaml:"theme"`
	Platform    string  `yaml:"platform"`
	Profile     string  `yaml:"profile,omitempty"` // empty follows the platform
	BottomInset float64 `yaml:"bottom_inset"`
	Scale       Scale   `yaml:"scale"`
	Haptics     bool    `yaml:"haptics"`
	TabBar      TabBar  `yaml:"tab_bar,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:    ThemeDark,
		Platform: PlatformAndroid,
		Scale:    Scale{Column: DefaultPointsPerColumn, Row: DefaultPointsPerRow},
		Haptics:  true,
	}
}

// Path returns ~/.pillbar/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/"+configDirName, err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	cfg.ensureInitialized()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, perrors.ConfigLoadFailed(path, joinValidation(errs))
	}
	return cfg, nil
}

// ensureInitialized fills zero values the file may leave out.
func (c *Config) ensureInitialized() {
	if c.Theme == "" {
		c.Theme = ThemeDark
	}
	if c.Platform == "" {
		c.Platform = PlatformAndroid
	}
	if c.Scale.Column == 0 {
		c.Scale.Column = DefaultPointsPerColumn
	}
	if c.Scale.Row == 0 {
		c.Scale.Row = DefaultPointsPerRow
	}
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// Save writes the config to its file path.
func (c *Config) Save() error {
	data, err := c.Marshal()
	if err != nil {
		return perrors.ConfigSaveFailed(c.FilePath(), err)
	}

	path := c.FilePath()
	if path == "" {
		if path, err = Path(); err != nil {
			return perrors.ConfigSaveFailed("~/"+configDirName, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return perrors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return perrors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return yaml.Marshal(c)
}

// GetTheme returns the theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name.
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetPlatform returns the platform name.
func (c *Config) GetPlatform() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Platform
}

// SetPlatform sets the platform name.
func (c *Config) SetPlatform(platform string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Platform = platform
}

// SetProfile forces a tab bar profile regardless of platform.
func (c *Config) SetProfile(profile string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Profile = profile
}

// GetScale returns the cell-to-point scale.
func (c *Config) GetScale() Scale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Scale
}

// GetBottomInset returns the safe-area inset in points.
func (c *Config) GetBottomInset() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BottomInset
}

// HapticsEnabled reports whether feedback pulses are emitted.
func (c *Config) HapticsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Haptics
}

// SetHaptics switches feedback pulses on or off.
func (c *Config) SetHaptics(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Haptics = enabled
}

// TabBarConfig resolves the profile preset and applies the overrides.
func (c *Config) TabBarConfig() (gesture.Config, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		cfg gesture.Config
		err error
	)
	if c.Profile != "" {
		cfg, err = gesture.Preset(c.Profile)
	} else {
		cfg, err = gesture.PresetForPlatform(c.Platform)
	}
	if err != nil {
		return gesture.Config{}, err
	}

	o := c.TabBar
	setFloat(&cfg.DockedWidthFraction, o.DockedWidthFraction)
	setFloat(&cfg.FloatingWidthFraction, o.FloatingWidthFraction)
	setFloat(&cfg.ClampFraction, o.ClampFraction)
	setFloat(&cfg.LongPressTolerance, o.LongPressTolerance)
	setFloat(&cfg.TabPadding, o.TabPadding)
	setFloat(&cfg.HorizontalDragDivisor, o.HorizontalDragDivisor)
	if o.SettleDuration != nil {
		cfg.SettleDuration = o.SettleDuration.Duration
	}
	if o.LongPressThreshold != nil {
		cfg.LongPressThreshold = o.LongPressThreshold.Duration
	}
	if o.SettleCurve != "" {
		cfg.SettleCurve = gesture.CurveName(o.SettleCurve)
	}
	if o.CornerRadius != nil {
		setFloat(&cfg.CornerRadius.Small, o.CornerRadius.Small)
		setFloat(&cfg.CornerRadius.Large, o.CornerRadius.Large)
	}
	if o.UseBlur != nil {
		cfg.UseBlur = *o.UseBlur
	}
	if o.HapticStyle != "" {
		cfg.HapticStyle = haptics.Style(o.HapticStyle)
	}

	if err := cfg.Validate(); err != nil {
		return gesture.Config{}, err
	}
	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func joinValidation(errs []ValidationError) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return perrors.ConfigInvalid(strings.Join(msgs, "; "))
}
