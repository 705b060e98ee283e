// Package errors provides structured error types for pillbar.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindTerminal
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindTerminal:
		return "terminal error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for pillbar.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

// ConfigSaveFailed is KindPermission when the file or directory is not
// writable and KindIO otherwise.
func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), fileKind(err), fmt.Sprintf("failed to save config to %s", path), err)
}

func fileKind(err error) Kind {
	if errors.Is(err, fs.ErrPermission) {
		return KindPermission
	}
	return KindIO
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// ProfileNotFound is returned when a tab bar profile name has no preset.
func ProfileNotFound(name string) error {
	return E(Op("gesture.Preset"), KindNotFound, fmt.Sprintf("unknown tab bar profile %q", name))
}

// ScenarioNotFound is returned when a demo scenario name is not registered.
func ScenarioNotFound(name string) error {
	return E(Op("demo.Get"), KindNotFound, fmt.Sprintf("scenario %q not found", name))
}

// Terminal errors
func ProgramFailed(err error) error {
	return E(Op("app.Run"), KindTerminal, "terminal program exited with error", err)
}
