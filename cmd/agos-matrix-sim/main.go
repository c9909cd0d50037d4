// Command agos-matrix-sim previews the heartbeat animation in the terminal,
// so the sequence can be checked without a physical matrix attached.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cri-kee-zel/agos-flood-monitoring/heartbeat"
	"github.com/gdamore/tcell/v2"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

var (
	logFile = ""
	verbose = false
)

func init() {
	pflag.StringVar(&logFile, "log-file", logFile, "write logs to this file (discarded by default)")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
}

var errQuit = errors.New("quit requested")

func main() {
	log.SetFlags(0)
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// The screen owns the terminal while the simulator runs, so logs are
	// discarded unless a file is given.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		logHandler := tint.NewHandler(f, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05 PM", // extended time.Kitchen
			NoColor:    !isatty.IsTerminal(f.Fd()),
		})
		logger = slog.New(logHandler)
	}
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %v", err)
	}
	defer screen.Fini()

	display := newSimDisplay(screen)

	animator := heartbeat.NewAnimator(heartbeat.AnimatorOpts{
		Display: display,
		Logger:  logger.With("component", "animator"),
	})

	if err := animator.Begin(); err != nil {
		return err
	}

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		return animator.Run(ctx)
	})

	errg.Go(func() error {
		// Unblock PollEvent when the animator or a signal ends the run.
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	errg.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return errQuit
				}
			case *tcell.EventResize:
				screen.Sync()
				display.redraw()
			case *tcell.EventInterrupt:
				return ctx.Err()
			case nil:
				return nil
			}
		}
	})

	err = errg.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
