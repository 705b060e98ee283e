package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// repaints the whole screen and stays up for its Delay.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var at time.Duration
	for i, f := range frames {
		data := "\x1b[H\x1b[2J" + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if f.Annotation != "" {
			data += fmt.Sprintf("\x1b[%d;1H\x1b[7m %s \x1b[0m", height, f.Annotation)
		}
		event := []any{at.Seconds(), "o", data}
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		at += f.Delay
	}
	return nil
}
