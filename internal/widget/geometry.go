package widget

import (
	"fmt"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

// Fill as a width or height stretches the widget from its origin to the edge
// of the screen.
const Fill = -1

type Position struct {
	X int
	Y int
}

type Size struct {
	W int
	H int
}

type Geometry struct {
	Pos  Position
	Size Size
}

func (g Geometry) Validate() error {
	if g.Pos.X < 0 || g.Pos.Y < 0 {
		return fmt.Errorf("%w: origin (%d,%d) is negative", ErrGeometry, g.Pos.X, g.Pos.Y)
	}
	if g.Size.W == 0 || g.Size.H == 0 {
		return fmt.Errorf("%w: size %dx%d has a zero dimension", ErrGeometry, g.Size.W, g.Size.H)
	}
	return nil
}

// Resolve turns the declared geometry into a concrete rectangle for a screen
// of rows x cols.
func (g Geometry) Resolve(rows, cols int) term.Rect {
	w := g.Size.W
	if w < 0 {
		w = cols - g.Pos.X
	}
	h := g.Size.H
	if h < 0 {
		h = rows - g.Pos.Y
	}
	return term.Rect{X: g.Pos.X, Y: g.Pos.Y, W: max(0, w), H: max(0, h)}
}
