package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cri-kee-zel/agos-flood-monitoring/heartbeat"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"libdb.so/ledctl"
)

var (
	gpioPin    = 12
	brightness = 128
	heartColor = "ff0032"
	serpentine = false
	verbose    = false
)

func init() {
	pflag.IntVar(&gpioPin, "gpio-pin", gpioPin, "GPIO pin driving the matrix data line")
	pflag.IntVar(&brightness, "brightness", brightness, "LED brightness (0-255)")
	pflag.StringVar(&heartColor, "color", heartColor, "heart color as RRGGBB hex")
	pflag.BoolVar(&serpentine, "serpentine", serpentine, "odd matrix rows are wired right-to-left")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
}

const numPixels = heartbeat.Rows * heartbeat.Cols

var ws281xConfig = ledctl.WS281xConfig{
	ColorOrder:   ledctl.BGROrder,
	ColorModel:   ledctl.RGBModel,
	PWMFrequency: 800000,
	DMAChannel:   10,
	NumPixels:    numPixels,
}

func main() {
	log.SetFlags(0)
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05 PM", // extended time.Kitchen
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	color, err := parseColor(heartColor, brightness)
	if err != nil {
		return fmt.Errorf("invalid --color value %q: %v", heartColor, err)
	}

	ws281xCfg := ws281xConfig
	ws281xCfg.GPIOPins = []int{gpioPin}

	ws281x, err := ledctl.NewWS281x(ws281xCfg)
	if err != nil {
		return fmt.Errorf("failed to create a WS281x controller: %v", err)
	}

	display := newWS2812Display(ws2812DisplayConfig{
		Controller: ws281x,
		Color:      color,
		Serpentine: serpentine,
		Logger:     logger.With("component", "display"),
	})

	animator := heartbeat.NewAnimator(heartbeat.AnimatorOpts{
		Display: display,
		Logger:  logger.With("component", "animator"),
	})

	if err := animator.Begin(); err != nil {
		return err
	}

	logger.Info(
		"driving heartbeat matrix",
		"gpio_pin", gpioPin,
		"pixels", numPixels)

	return animator.Run(ctx)
}
