package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := NewViewContext(8, 16)

	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 {
		t.Errorf("Expected TerminalWidth 120, got %d", ctx.TerminalWidth)
	}
	if ctx.TerminalHeight != 40 {
		t.Errorf("Expected TerminalHeight 40, got %d", ctx.TerminalHeight)
	}
	expectedContent := 40 - HeaderHeight - FooterHeight
	if ctx.ContentHeight != expectedContent {
		t.Errorf("Expected ContentHeight %d, got %d", expectedContent, ctx.ContentHeight)
	}
}

func TestViewContext_MinimumSize(t *testing.T) {
	ctx := NewViewContext(8, 16)

	ctx.UpdateTerminalSize(10, 3)

	if ctx.TerminalWidth != MinTerminalWidth {
		t.Errorf("Expected width clamped to %d, got %d", MinTerminalWidth, ctx.TerminalWidth)
	}
	if ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("Expected height clamped to %d, got %d", MinTerminalHeight, ctx.TerminalHeight)
	}
}

func TestViewContext_PointConversion(t *testing.T) {
	ctx := NewViewContext(8, 16)
	ctx.UpdateTerminalSize(80, 24)

	w, h := ctx.ViewportPoints()
	if w != 640 || h != 384 {
		t.Errorf("ViewportPoints() = (%v, %v), want (640, 384)", w, h)
	}

	p := ctx.ToPoints(10, 3)
	if p.X != 80 || p.Y != 48 {
		t.Errorf("ToPoints(10, 3) = %+v, want {80 48}", p)
	}

	tests := []struct {
		points   float64
		wantCols int
		wantRows int
	}{
		{0, 0, 0},
		{307.2, 38, 19},
		{-19.2, -2, -1},
		{34, 4, 2},
	}
	for _, tt := range tests {
		if got := ctx.Columns(tt.points); got != tt.wantCols {
			t.Errorf("Columns(%v) = %d, want %d", tt.points, got, tt.wantCols)
		}
		if got := ctx.Rows(tt.points); got != tt.wantRows {
			t.Errorf("Rows(%v) = %d, want %d", tt.points, got, tt.wantRows)
		}
	}
}

func TestViewContext_SetScaleIgnoresNonPositive(t *testing.T) {
	ctx := NewViewContext(0, -1)
	if ctx.PointsPerColumn != DefaultPointsPerColumn || ctx.PointsPerRow != DefaultPointsPerRow {
		t.Errorf("scale = (%v, %v), want defaults", ctx.PointsPerColumn, ctx.PointsPerRow)
	}
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := NewViewContext(8, 16)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n)
			_, _ = ctx.ViewportPoints()
			_ = ctx.Rows(float64(n))
		}(i)
	}
	wg.Wait()
}
