package render

import (
	"fmt"
	"image"
)

// Spritesheet describes a grid of equally sized frames laid out
// left-to-right, top-to-bottom. Frame indices are row*Columns + column.
type Spritesheet struct {
	Columns int
	Rows    int
	FrameW  int
	FrameH  int
}

// Row returns the frame indices of every column of row.
func (s Spritesheet) Row(row int) ([]int, error) {
	return s.RowPartial(row, 0, s.Columns)
}

// RowPartial returns the frame indices of columns [start, end) of row.
func (s Spritesheet) RowPartial(row, start, end int) ([]int, error) {
	if s.Columns <= 0 || s.Rows <= 0 {
		return nil, fmt.Errorf("spritesheet: invalid grid %dx%d", s.Columns, s.Rows)
	}
	if row < 0 || row >= s.Rows {
		return nil, fmt.Errorf("spritesheet: row %d outside 0..%d", row, s.Rows-1)
	}
	if start < 0 || end > s.Columns || start >= end {
		return nil, fmt.Errorf("spritesheet: columns [%d,%d) outside 0..%d", start, end, s.Columns)
	}
	frames := make([]int, 0, end-start)
	for col := start; col < end; col++ {
		frames = append(frames, row*s.Columns+col)
	}
	return frames, nil
}

// FrameRect returns the pixel rectangle of a frame index.
func (s Spritesheet) FrameRect(index int) image.Rectangle {
	if s.Columns <= 0 {
		return image.Rectangle{}
	}
	x := (index % s.Columns) * s.FrameW
	y := (index / s.Columns) * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}
