package heartbeat

import (
	"fmt"
	"strings"
)

// Matrix dimensions of the AGOS status display.
const (
	Rows = 8
	Cols = 12
)

// Frame is one static 8x12 bitmap shown on the LED matrix, indexed
// [row][column]. A cell is lit when 1 and unlit when 0.
type Frame [Rows][Cols]byte

// Heart bitmaps for the heartbeat cycle.
var (
	FrameFull = Frame{
		{0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0},
		{0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	FrameMedium = Frame{
		{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	FrameSmall = Frame{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	// FrameOff blanks the matrix.
	FrameOff = Frame{}
)

// Lit reports whether the cell at (row, col) is lit.
func (f Frame) Lit(row, col int) bool {
	return f[row][col] != 0
}

// Validate checks that every cell is 0 or 1. The dimensions are enforced by
// the type; only cell values can go wrong.
func (f Frame) Validate() error {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if v := f[r][c]; v > 1 {
				return fmt.Errorf("cell (%d,%d) has value %d, want 0 or 1", r, c, v)
			}
		}
	}
	return nil
}

// String renders the frame as an 8-line grid of '#' and '.', for logs and
// test failures.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if f.Lit(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if r < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
