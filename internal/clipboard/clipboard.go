// Package clipboard writes text to the system clipboard through
// golang.design/x/clipboard. The app pairs it with an OSC 52 sequence so a
// copy still lands when no native clipboard is reachable, e.g. over SSH.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/zhubert/pillbar/internal/logger"
	"golang.design/x/clipboard"
)

var (
	mu          sync.Mutex
	initialized bool
	writeFunc   = nativeWrite
)

// Init initializes the native clipboard. It is safe to call repeatedly.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("init failed", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

func nativeWrite(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// SetWriter replaces the native write, for tests.
func SetWriter(f func(text string) error) {
	mu.Lock()
	defer mu.Unlock()
	writeFunc = f
}

// ResetWriter restores the native write.
func ResetWriter() {
	mu.Lock()
	defer mu.Unlock()
	writeFunc = nativeWrite
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	write := writeFunc
	mu.Unlock()

	if err := write(text); err != nil {
		return err
	}
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}
