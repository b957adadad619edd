package term

import "github.com/gdamore/tcell/v2"

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Screen is the character grid the widgets draw on.
type Screen interface {
	// Size reports the live size. Implementations fall back to the last
	// known size when the terminal cannot be queried.
	Size() (rows, cols int, err error)
	Window(r Rect) Window
	Beep() error
	Show()
}

// Window is a rectangular region of a Screen. Coordinates passed to the
// drawing methods are relative to the window and clipped to it.
type Window interface {
	Move(r Rect)
	Bounds() Rect
	Clear(st Style)
	Box(st Style)
	HLine(y, x int, glyph rune, n int, st Style)
	VLine(y, x int, glyph rune, n int, st Style)
	Print(y, x int, text string, st Style)
	Refresh()
}

const (
	GlyphHLine    = tcell.RuneHLine
	GlyphVLine    = tcell.RuneVLine
	GlyphTTee     = tcell.RuneTTee
	GlyphBTee     = tcell.RuneBTee
	GlyphLTee     = tcell.RuneLTee
	GlyphRTee     = tcell.RuneRTee
	GlyphPlus     = tcell.RunePlus
	GlyphULCorner = tcell.RuneULCorner
	GlyphURCorner = tcell.RuneURCorner
	GlyphLLCorner = tcell.RuneLLCorner
	GlyphLRCorner = tcell.RuneLRCorner
)

// Inset returns a view of scr that starts top rows down. Size reports the
// remaining rows and windows are shifted accordingly.
func Inset(scr Screen, top int) Screen {
	return &inset{parent: scr, top: top}
}

type inset struct {
	parent Screen
	top    int
}

func (s *inset) Size() (int, int, error) {
	rows, cols, err := s.parent.Size()
	return max(0, rows-s.top), cols, err
}

func (s *inset) Window(r Rect) Window {
	return &insetWindow{Window: s.parent.Window(s.shift(r)), top: s.top}
}

func (s *inset) Beep() error { return s.parent.Beep() }

func (s *inset) Show() { s.parent.Show() }

func (s *inset) shift(r Rect) Rect {
	r.Y += s.top
	return r
}

type insetWindow struct {
	Window
	top int
}

func (w *insetWindow) Move(r Rect) {
	r.Y += w.top
	w.Window.Move(r)
}

func (w *insetWindow) Bounds() Rect {
	r := w.Window.Bounds()
	r.Y -= w.top
	return r
}
