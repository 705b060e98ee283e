package config

import "fmt"

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the config and returns every problem found.
func (c *Config) Validate() []ValidationError {
	c.mu.RLock()
	var errs []ValidationError

	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		errs = append(errs, ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("unknown theme %q (must be dark or light)", c.Theme),
		})
	}

	switch c.Platform {
	case PlatformAndroid, PlatformIOS:
	default:
		errs = append(errs, ValidationError{
			Field:   "platform",
			Message: fmt.Sprintf("unknown platform %q (must be android or ios)", c.Platform),
		})
	}

	if c.BottomInset < 0 {
		errs = append(errs, ValidationError{
			Field:   "bottom_inset",
			Message: "must not be negative",
		})
	}
	if c.Scale.Column <= 0 {
		errs = append(errs, ValidationError{
			Field:   "scale.column",
			Message: "must be positive",
		})
	}
	if c.Scale.Row <= 0 {
		errs = append(errs, ValidationError{
			Field:   "scale.row",
			Message: "must be positive",
		})
	}
	c.mu.RUnlock()

	// Profile and override problems surface through the resolved config.
	if len(errs) == 0 {
		if _, err := c.TabBarConfig(); err != nil {
			errs = append(errs, ValidationError{
				Field:   "tab_bar",
				Message: err.Error(),
			})
		}
	}
	return errs
}
