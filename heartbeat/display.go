package heartbeat

import (
	"context"
	"time"
)

// Display is the hardware boundary for an 8x12 LED dot-matrix display.
type Display interface {
	// Begin performs one-time hardware setup. It must be called exactly
	// once, before the first RenderBitmap.
	Begin() error
	// RenderBitmap pushes a frame to the matrix for immediate display.
	RenderBitmap(f Frame) error
}

// Sleeper pauses between frame transitions. Tests substitute a fake to
// record delays without real waiting.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper is the real Sleeper. It blocks the calling goroutine for the
// full duration unless the context is canceled first.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
