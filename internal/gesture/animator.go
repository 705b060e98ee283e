package gesture

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one frame at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// StepFunc advances the current settle to now.
type StepFunc func(now time.Time) (Frame, bool)

// Animator drives settles on its own goroutine and publishes frames.
// Only one settle runs at a time; starting another cancels the first.
type Animator struct {
	interval time.Duration
	now      func() time.Time
	frames   chan Frame

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAnimator returns an idle animator. A nil clock means time.Now.
func NewAnimator(interval time.Duration, now func() time.Time) *Animator {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Animator{
		interval: interval,
		now:      now,
		frames:   make(chan Frame, 1),
	}
}

// Frames returns the channel frames are published on. Intermediate frames
// are coalesced when the reader falls behind; the final frame of a settle
// is always delivered unless the settle is cancelled.
func (a *Animator) Frames() <-chan Frame {
	return a.frames
}

// Start runs step on every tick until it reports done or stale.
func (a *Animator) Start(step StepFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.wg.Add(1)
	go a.run(ctx, step)
}

func (a *Animator) run(ctx context.Context, step StepFunc) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f, ok := step(a.now())
			if !ok {
				return
			}
			if f.Done {
				select {
				case a.frames <- f:
				case <-ctx.Done():
				}
				return
			}
			select {
			case a.frames <- f:
			default:
			}
		}
	}
}

// Cancel stops the running settle, if any.
func (a *Animator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Close cancels the running settle and waits for its goroutine to exit.
func (a *Animator) Close() {
	a.Cancel()
	a.wg.Wait()
}
