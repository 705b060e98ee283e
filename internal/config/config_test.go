package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	perrors "github.com/zhubert/pillbar/internal/errors"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/haptics"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != ThemeDark {
		t.Errorf("theme = %q, want %q", cfg.GetTheme(), ThemeDark)
	}
	if cfg.GetPlatform() != PlatformAndroid {
		t.Errorf("platform = %q, want %q", cfg.GetPlatform(), PlatformAndroid)
	}
	if !cfg.HapticsEnabled() {
		t.Error("haptics should default to enabled")
	}
	if got := cfg.GetScale(); got.Column != DefaultPointsPerColumn || got.Row != DefaultPointsPerRow {
		t.Errorf("scale = %+v, want defaults", got)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
theme: light
platform: ios
bottom_inset: 34
haptics: false
scale:
  column: 10
tab_bar:
  settle_duration: 400ms
  clamp_fraction: 0.05
  haptic_style: medium
  corner_radius:
    large: 40
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetTheme() != ThemeLight {
		t.Errorf("theme = %q, want light", cfg.GetTheme())
	}
	if cfg.GetPlatform() != PlatformIOS {
		t.Errorf("platform = %q, want ios", cfg.GetPlatform())
	}
	if cfg.GetBottomInset() != 34 {
		t.Errorf("bottom inset = %v, want 34", cfg.GetBottomInset())
	}
	if cfg.HapticsEnabled() {
		t.Error("haptics should be disabled")
	}
	scale := cfg.GetScale()
	if scale.Column != 10 {
		t.Errorf("scale.column = %v, want 10", scale.Column)
	}
	if scale.Row != DefaultPointsPerRow {
		t.Errorf("scale.row = %v, want default %v", scale.Row, DefaultPointsPerRow)
	}

	tb, err := cfg.TabBarConfig()
	if err != nil {
		t.Fatalf("TabBarConfig() error = %v", err)
	}
	if tb.SettleDuration != 400*time.Millisecond {
		t.Errorf("settle duration = %v, want 400ms", tb.SettleDuration)
	}
	if tb.ClampFraction != 0.05 {
		t.Errorf("clamp fraction = %v, want 0.05", tb.ClampFraction)
	}
	if tb.HapticStyle != haptics.Medium {
		t.Errorf("haptic style = %q, want medium", tb.HapticStyle)
	}
	if !tb.UseBlur {
		t.Error("ios platform should select the blur profile")
	}
	if tb.CornerRadius.Small != 3 || tb.CornerRadius.Large != 40 {
		t.Errorf("corner radius = %+v, want {3 40}", tb.CornerRadius)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "malformed yaml",
			content: "theme: [dark",
			wantMsg: "",
		},
		{
			name:    "bad duration",
			content: "tab_bar:\n  settle_duration: soon\n",
			wantMsg: "invalid duration",
		},
		{
			name:    "unknown theme",
			content: "theme: sepia\n",
			wantMsg: "theme: unknown theme",
		},
		{
			name:    "unknown profile",
			content: "profile: glass\n",
			wantMsg: "tab_bar:",
		},
		{
			name:    "floating wider than docked",
			content: "tab_bar:\n  floating_width_fraction: 1.2\n",
			wantMsg: "tab_bar:",
		},
		{
			name:    "docked narrower than floating",
			content: "tab_bar:\n  docked_width_fraction: 0.5\n",
			wantMsg: "below the docked width fraction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadFrom(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if perrors.GetKind(err) != perrors.KindConfig {
				t.Errorf("kind = %v, want KindConfig", perrors.GetKind(err))
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{
			name:       "defaults are valid",
			mutate:     func(*Config) {},
			wantFields: nil,
		},
		{
			name: "bad platform and negative inset",
			mutate: func(c *Config) {
				c.Platform = "windows"
				c.BottomInset = -1
			},
			wantFields: []string{"platform", "bottom_inset"},
		},
		{
			name: "zero scale",
			mutate: func(c *Config) {
				c.Scale = Scale{}
			},
			wantFields: []string{"scale.column", "scale.row"},
		},
		{
			name: "unknown curve",
			mutate: func(c *Config) {
				c.TabBar.SettleCurve = "bounce"
			},
			wantFields: []string{"tab_bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestTabBarConfig_ProfileOverridesPlatform(t *testing.T) {
	cfg := Default()
	cfg.SetPlatform(PlatformAndroid)
	cfg.SetProfile(gesture.ProfileBlur)

	tb, err := cfg.TabBarConfig()
	if err != nil {
		t.Fatalf("TabBarConfig() error = %v", err)
	}
	if !tb.UseBlur {
		t.Error("explicit blur profile should win over the android platform")
	}
}

func TestTabBarConfig_DefaultMatchesSolidPreset(t *testing.T) {
	tb, err := Default().TabBarConfig()
	if err != nil {
		t.Fatalf("TabBarConfig() error = %v", err)
	}
	if tb != gesture.DefaultConfig() {
		t.Errorf("default tab bar config = %+v, want %+v", tb, gesture.DefaultConfig())
	}
}

func TestSave_BlockedPathIsIOError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	cfg.SetFilePath(filepath.Join(blocker, "sub", "config.yaml"))

	err := cfg.Save()
	if err == nil {
		t.Fatal("expected error saving below a regular file")
	}
	if got := perrors.GetKind(err); got != perrors.KindIO {
		t.Errorf("kind = %v, want KindIO", got)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.SetFilePath(path)
	cfg.SetTheme(ThemeLight)
	d := Duration{300 * time.Millisecond}
	cfg.TabBar.SettleDuration = &d

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "settle_duration: 300ms") {
		t.Errorf("saved YAML should carry the duration as a string, got:\n%s", data)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.GetTheme() != ThemeLight {
		t.Errorf("theme = %q, want light", loaded.GetTheme())
	}
	tb, err := loaded.TabBarConfig()
	if err != nil {
		t.Fatalf("TabBarConfig() error = %v", err)
	}
	if tb.SettleDuration != 300*time.Millisecond {
		t.Errorf("settle duration = %v, want 300ms", tb.SettleDuration)
	}
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("template should load cleanly: %v", err)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("template should validate, got %v", errs)
	}

	if err := WriteTemplate(path); err == nil {
		t.Error("WriteTemplate() should refuse to overwrite")
	}
}
