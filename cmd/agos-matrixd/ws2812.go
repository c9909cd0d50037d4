package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cri-kee-zel/agos-flood-monitoring/heartbeat"
	"libdb.so/ledctl"
)

// RGBController is a controller for RGB LEDs.
type RGBController interface {
	SetRGBAt(i int, color ledctl.RGB)
	Flush() error
}

// ws2812Display drives an 8x12 WS2812 panel as a heartbeat display. The
// panel is addressed as a single 96-pixel strip in row-major order;
// serpentine wiring reverses every odd row.
type ws2812Display struct {
	ctrl   RGBController
	logger *slog.Logger
	cfg    ws2812DisplayConfig
}

var _ heartbeat.Display = (*ws2812Display)(nil)

type ws2812DisplayConfig struct {
	Controller RGBController
	Color      ledctl.RGB
	Serpentine bool

	Logger *slog.Logger
}

func newWS2812Display(cfg ws2812DisplayConfig) *ws2812Display {
	return &ws2812Display{
		ctrl:   cfg.Controller,
		logger: cfg.Logger,
		cfg:    cfg,
	}
}

// Begin blanks the panel, which may hold garbage after power-up.
func (d *ws2812Display) Begin() error {
	return d.RenderBitmap(heartbeat.FrameOff)
}

func (d *ws2812Display) RenderBitmap(f heartbeat.Frame) error {
	for r := 0; r < heartbeat.Rows; r++ {
		for c := 0; c < heartbeat.Cols; c++ {
			var color ledctl.RGB
			if f.Lit(r, c) {
				color = d.cfg.Color
			}
			d.ctrl.SetRGBAt(d.pixelIndex(r, c), color)
		}
	}

	if err := d.ctrl.Flush(); err != nil {
		return fmt.Errorf("failed to write LED strip: %w", err)
	}
	return nil
}

func (d *ws2812Display) pixelIndex(row, col int) int {
	if d.cfg.Serpentine && row%2 == 1 {
		col = heartbeat.Cols - 1 - col
	}
	return row*heartbeat.Cols + col
}

// parseColor parses an RRGGBB hex string and scales it by brightness
// (0-255).
func parseColor(hex string, brightness int) (ledctl.RGB, error) {
	if len(hex) != 6 {
		return ledctl.RGB{}, fmt.Errorf("want 6 hex digits, got %d", len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ledctl.RGB{}, err
	}

	if brightness < 0 || brightness > 255 {
		return ledctl.RGB{}, fmt.Errorf("brightness %d out of range 0-255", brightness)
	}

	scale := func(c uint64) uint8 {
		return uint8(c * uint64(brightness) / 255)
	}

	return ledctl.RGB{
		R: scale(v >> 16 & 0xff),
		G: scale(v >> 8 & 0xff),
		B: scale(v & 0xff),
	}, nil
}
