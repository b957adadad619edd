// Package widget implements the selectable widgets drawn by the application
// shell: a ListBox of rows and a fixed size Table of cells.
//
// Each widget owns one window and repaints it only when its state changed
// since the last paint or when the caller forces a repaint.
package widget

import (
	"errors"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

var (
	ErrGeometry   = errors.New("invalid widget geometry")
	ErrDimensions = errors.New("invalid table dimensions")
	ErrCellRange  = errors.New("cell out of range")
	ErrRowRange   = errors.New("row out of range")
)

// Widget is the capability set the shell needs from every widget.
type Widget interface {
	Draw(force bool)
	// Command applies a key and reports whether the widget state changed.
	Command(k term.Key) bool
	Changed() bool
	SetFocus(focused bool)
	Focused() bool
	SetEditable(editable bool)
	Editable() bool
}

// Event is passed to a Callback when a confirm changes the active item.
type Event struct {
	Active string
}

type Callback func(Event)

type Coord struct {
	Row int
	Col int
}
