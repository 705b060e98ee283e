package app

import "github.com/zhubert/pillbar/internal/gesture"

// LongPressMsg fires when a press on the bar has been held for the
// long-press threshold.
type LongPressMsg struct {
	Seq int
}

// FrameMsg carries one settle animation frame.
type FrameMsg struct {
	Frame gesture.Frame
}

// ClipboardErrorMsg reports a failed native clipboard write.
type ClipboardErrorMsg struct {
	Err error
}
