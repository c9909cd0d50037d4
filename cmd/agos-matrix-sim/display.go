package main

import (
	"sync"

	"github.com/cri-kee-zel/agos-flood-monitoring/heartbeat"
	"github.com/gdamore/tcell/v2"
)

// Cells are drawn two columns wide so the matrix looks roughly square.
const cellWidth = 2

var (
	styleLit   = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 50))
	styleUnlit = tcell.StyleDefault.Background(tcell.NewRGBColor(28, 28, 28))
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// simDisplay renders frames onto a tcell screen. It remembers the last
// frame so the grid can be redrawn after a terminal resize.
type simDisplay struct {
	screen tcell.Screen

	mu    sync.Mutex
	frame heartbeat.Frame
}

var _ heartbeat.Display = (*simDisplay)(nil)

func newSimDisplay(screen tcell.Screen) *simDisplay {
	return &simDisplay{screen: screen}
}

func (d *simDisplay) Begin() error {
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()
	d.redraw()
	return nil
}

func (d *simDisplay) RenderBitmap(f heartbeat.Frame) error {
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()

	d.redraw()
	return nil
}

func (d *simDisplay) redraw() {
	d.mu.Lock()
	frame := d.frame
	d.mu.Unlock()

	w, h := d.screen.Size()
	originX := (w - heartbeat.Cols*cellWidth) / 2
	originY := (h - heartbeat.Rows) / 2
	if originX < 0 {
		originX = 0
	}
	if originY < 1 {
		originY = 1
	}

	drawText(d.screen, originX, originY-1, "AGOS heartbeat - press q to quit")

	for r := 0; r < heartbeat.Rows; r++ {
		for c := 0; c < heartbeat.Cols; c++ {
			style := styleUnlit
			if frame.Lit(r, c) {
				style = styleLit
			}
			for i := 0; i < cellWidth; i++ {
				d.screen.SetContent(originX+c*cellWidth+i, originY+r, ' ', nil, style)
			}
		}
	}

	d.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, styleText)
	}
}
