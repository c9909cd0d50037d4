// Package heartbeat plays the AGOS status heartbeat on an 8x12 LED
// dot-matrix display: a fixed five-frame pulse (small, medium, full, medium,
// off) with fixed pauses, looped for as long as the device runs.
package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pacing between frame transitions.
const (
	ShortHold = 100 * time.Millisecond
	ShortGap  = 100 * time.Millisecond
	LongGap   = 700 * time.Millisecond
)

type step struct {
	name  string
	frame Frame
	hold  time.Duration // 0 means no pause after rendering
}

// cycle is the heartbeat: small -> medium -> full (quick) -> medium -> off
// (pause until the next cycle starts).
var cycle = []step{
	{"small", FrameSmall, ShortHold},
	{"medium", FrameMedium, ShortGap},
	{"full", FrameFull, ShortHold},
	{"medium", FrameMedium, LongGap},
	{"off", FrameOff, 0},
}

// AnimatorOpts are options for an Animator.
type AnimatorOpts struct {
	// Display is the matrix to draw on. Required.
	Display Display
	// Sleeper paces the animation. Defaults to TimerSleeper.
	Sleeper Sleeper
	// Logger is the logger to use for the animator.
	Logger *slog.Logger
}

// Animator plays the heartbeat cycle on a display. It keeps no state between
// cycles; the only state in the system is whichever frame the physical
// display currently shows.
type Animator struct {
	opts AnimatorOpts
}

// NewAnimator creates a new animator.
func NewAnimator(opts AnimatorOpts) *Animator {
	if opts.Display == nil {
		panic("heartbeat: AnimatorOpts.Display is required")
	}
	if opts.Sleeper == nil {
		opts.Sleeper = TimerSleeper{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Animator{opts: opts}
}

// Begin initializes the underlying display. Call it once, before the first
// PlayCycle or Run.
func (a *Animator) Begin() error {
	if err := a.opts.Display.Begin(); err != nil {
		return fmt.Errorf("failed to initialize display: %w", err)
	}
	return nil
}

// PlayCycle renders one heartbeat: each frame in order, blocking for the
// frame's hold time before moving on. There is no pause after the final off
// frame; the caller controls the repeat cadence.
func (a *Animator) PlayCycle(ctx context.Context) error {
	for _, s := range cycle {
		a.opts.Logger.DebugContext(ctx,
			"rendering frame",
			"frame", s.name,
			"hold", s.hold)

		if err := a.opts.Display.RenderBitmap(s.frame); err != nil {
			return fmt.Errorf("failed to render %s frame: %w", s.name, err)
		}

		if s.hold == 0 {
			continue
		}
		if err := a.opts.Sleeper.Sleep(ctx, s.hold); err != nil {
			return err
		}
	}
	return nil
}

// Run plays heartbeat cycles back to back until the context is done. The
// cycle's own delays pace the loop; no extra delay is inserted between
// cycles.
func (a *Animator) Run(ctx context.Context) error {
	a.opts.Logger.InfoContext(ctx, "starting heartbeat animation")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.PlayCycle(ctx); err != nil {
			return err
		}
	}
}
