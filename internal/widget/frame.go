package widget

import (
	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

// frame holds the state shared by all widgets: geometry, window and the
// changed/focus/editable flags that drive repainting.
type frame struct {
	scr      term.Screen
	geo      Geometry
	win      term.Window
	rect     term.Rect
	sized    bool
	changed  bool
	focused  bool
	editable bool
	paints   int
}

func newFrame(scr term.Screen, geo Geometry) (frame, error) {
	if err := geo.Validate(); err != nil {
		return frame{}, err
	}
	f := frame{scr: scr, geo: geo, changed: true, editable: true}
	f.win = scr.Window(f.resolve())
	return f, nil
}

// resolve queries the live screen size. A concrete size different from the
// last one marks the widget changed.
func (f *frame) resolve() term.Rect {
	rows, cols, err := f.scr.Size()
	if err != nil {
		logger.Get().Warn("screen size unavailable", "err", err)
		if f.sized {
			return f.rect
		}
	}
	r := f.geo.Resolve(rows, cols)
	if !f.sized || r != f.rect {
		f.rect = r
		f.sized = true
		f.changed = true
	}
	return r
}

// begin re-resolves geometry and reports whether a repaint is due.
func (f *frame) begin(force bool) bool {
	f.win.Move(f.resolve())
	return f.changed || force
}

func (f *frame) finish() {
	f.changed = false
	f.paints++
	f.win.Refresh()
}

func (f *frame) borderStyle() term.Style {
	if f.focused {
		return term.PairStyle(term.PairFocus)
	}
	return term.Style{}
}

func (f *frame) Changed() bool { return f.changed }

func (f *frame) Focused() bool { return f.focused }

func (f *frame) Editable() bool { return f.editable }

// Rect is the concrete rectangle computed by the last draw.
func (f *frame) Rect() term.Rect { return f.rect }

// Paints counts repaints that actually touched the window.
func (f *frame) Paints() int { return f.paints }

func (f *frame) SetFocus(focused bool) {
	if focused && !f.editable {
		return
	}
	if focused != f.focused {
		f.focused = focused
		f.changed = true
	}
}

// SetEditable switches between interactive and render-only. A widget made
// read-only drops its focus.
func (f *frame) SetEditable(editable bool) {
	if editable == f.editable {
		return
	}
	f.editable = editable
	f.changed = true
	if !editable {
		f.focused = false
	}
}
