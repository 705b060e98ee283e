package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHighlightYAML(t *testing.T) {
	src := "theme: dark\nscale:\n  column: 8\n"
	out := HighlightYAML(src)

	if !strings.Contains(out, "\x1b[") {
		t.Error("expected ANSI color sequences")
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"theme", "dark", "column", "8"} {
		if !strings.Contains(plain, want) {
			t.Errorf("highlighted output lost %q", want)
		}
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	out := ansi.Strip(highlightCode("plain words", "no-such-language"))
	if !strings.Contains(out, "plain words") {
		t.Errorf("fallback lexer lost the text, got %q", out)
	}
}
