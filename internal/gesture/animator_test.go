package gesture

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAnimator_RunsUntilDone(t *testing.T) {
	a := NewAnimator(time.Millisecond, nil)
	defer a.Close()

	var calls atomic.Int32
	a.Start(func(now time.Time) (Frame, bool) {
		n := calls.Add(1)
		return Frame{Offset: Vec2{Y: float64(n)}, Done: n >= 3}, true
	})

	timeout := time.After(2 * time.Second)
	for {
		select {
		case f := <-a.Frames():
			if f.Done {
				if calls.Load() != 3 {
					t.Errorf("step calls = %d, want 3", calls.Load())
				}
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for the final frame")
		}
	}
}

func TestAnimator_StopsOnStale(t *testing.T) {
	a := NewAnimator(time.Millisecond, nil)

	var calls atomic.Int32
	a.Start(func(now time.Time) (Frame, bool) {
		calls.Add(1)
		return Frame{}, false
	})
	time.Sleep(20 * time.Millisecond)
	a.Close()

	if got := calls.Load(); got != 1 {
		t.Errorf("step calls = %d, want 1 after a stale report", got)
	}
}

func TestAnimator_StartCancelsPrevious(t *testing.T) {
	a := NewAnimator(time.Millisecond, nil)
	defer a.Close()

	var first atomic.Int32
	a.Start(func(now time.Time) (Frame, bool) {
		first.Add(1)
		return Frame{}, true
	})
	time.Sleep(10 * time.Millisecond)

	a.Start(func(now time.Time) (Frame, bool) {
		return Frame{Done: true}, true
	})
	time.Sleep(10 * time.Millisecond)
	stopped := first.Load()
	time.Sleep(20 * time.Millisecond)

	if first.Load() != stopped {
		t.Error("first settle kept stepping after a new one started")
	}
}

func TestAnimator_UsesInjectedClock(t *testing.T) {
	clock := newFakeClock()
	a := NewAnimator(time.Millisecond, clock.Now)
	defer a.Close()

	seen := make(chan time.Time, 1)
	a.Start(func(now time.Time) (Frame, bool) {
		select {
		case seen <- now:
		default:
		}
		return Frame{Done: true}, true
	})

	select {
	case got := <-seen:
		if !got.Equal(clock.Now()) {
			t.Errorf("step saw %v, want fake clock time %v", got, clock.Now())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("step never ran")
	}
	<-a.Frames()
}

func TestNewAnimator_DefaultInterval(t *testing.T) {
	a := NewAnimator(0, nil)
	if a.interval != DefaultFrameInterval {
		t.Errorf("interval = %v, want %v", a.interval, DefaultFrameInterval)
	}
}
