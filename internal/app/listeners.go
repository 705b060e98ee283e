package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// listenForFrames waits for the next settle frame. Exactly one listener is
// outstanding at a time: it is re-armed after each FrameMsg.
func (m *Model) listenForFrames() tea.Cmd {
	if m.manual {
		return nil
	}
	ch := m.core.Frames()
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return nil
		}
		return FrameMsg{Frame: f}
	}
}

// scheduleLongPress fires LongPressMsg for seq once the threshold elapses.
func (m *Model) scheduleLongPress(seq int, after time.Duration) tea.Cmd {
	if m.manual {
		return nil
	}
	if after < 0 {
		after = 0
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		return LongPressMsg{Seq: seq}
	})
}
