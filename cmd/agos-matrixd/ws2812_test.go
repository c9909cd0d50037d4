package main

import (
	"testing"

	"github.com/cri-kee-zel/agos-flood-monitoring/heartbeat"
	"libdb.so/ledctl"
)

type fakeController struct {
	pixels  [numPixels]ledctl.RGB
	flushes int
}

func (c *fakeController) SetRGBAt(i int, color ledctl.RGB) { c.pixels[i] = color }
func (c *fakeController) Flush() error                     { c.flushes++; return nil }

func TestRenderBitmap(t *testing.T) {
	tests := []struct {
		name       string
		serpentine bool
		// (row, col) -> expected strip index for a probe cell on an odd
		// row.
		wantIndex int
	}{
		{name: "row major", serpentine: false, wantIndex: 1*heartbeat.Cols + 3},
		{name: "serpentine", serpentine: true, wantIndex: 1*heartbeat.Cols + (heartbeat.Cols - 1 - 3)},
	}

	color := ledctl.RGB{R: 255, G: 0, B: 50}

	var probe heartbeat.Frame
	probe[1][3] = 1

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := &fakeController{}
			display := newWS2812Display(ws2812DisplayConfig{
				Controller: ctrl,
				Color:      color,
				Serpentine: test.serpentine,
			})

			if err := display.RenderBitmap(probe); err != nil {
				t.Fatal("unexpected render error:", err)
			}
			if ctrl.flushes != 1 {
				t.Errorf("got %d flushes, want 1", ctrl.flushes)
			}

			for i, px := range ctrl.pixels {
				want := ledctl.RGB{}
				if i == test.wantIndex {
					want = color
				}
				if px != want {
					t.Errorf("pixel %d = %v, want %v", i, px, want)
				}
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex        string
		brightness int
		want       ledctl.RGB
		wantErr    bool
	}{
		{hex: "ff0032", brightness: 255, want: ledctl.RGB{R: 255, G: 0, B: 50}},
		{hex: "ffffff", brightness: 0, want: ledctl.RGB{}},
		{hex: "ff0000", brightness: 128, want: ledctl.RGB{R: 128}},
		{hex: "f00", brightness: 255, wantErr: true},
		{hex: "zzzzzz", brightness: 255, wantErr: true},
		{hex: "ff0032", brightness: 300, wantErr: true},
	}

	for _, test := range tests {
		got, err := parseColor(test.hex, test.brightness)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseColor(%q, %d): expected error", test.hex, test.brightness)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColor(%q, %d): %v", test.hex, test.brightness, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseColor(%q, %d) = %v, want %v", test.hex, test.brightness, got, test.want)
		}
	}
}
