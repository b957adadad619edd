package widget

import (
	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

type fakeScreen struct {
	rows    int
	cols    int
	sizeErr error
	beeps   int
	beepErr error
	windows []*fakeWindow
}

func newFakeScreen(rows, cols int) *fakeScreen {
	return &fakeScreen{rows: rows, cols: cols}
}

func (s *fakeScreen) Size() (int, int, error) {
	if s.sizeErr != nil {
		return 0, 0, s.sizeErr
	}
	return s.rows, s.cols, nil
}

func (s *fakeScreen) Window(r term.Rect) term.Window {
	w := &fakeWindow{r: r}
	s.windows = append(s.windows, w)
	return w
}

func (s *fakeScreen) Beep() error {
	s.beeps++
	return s.beepErr
}

func (s *fakeScreen) Show() {}

type printed struct {
	y    int
	x    int
	text string
	st   term.Style
}

type fakeWindow struct {
	r         term.Rect
	clears    int
	boxes     []term.Style
	prints    []printed
	refreshes int
}

func (w *fakeWindow) Move(r term.Rect) { w.r = r }

func (w *fakeWindow) Bounds() term.Rect { return w.r }

func (w *fakeWindow) Clear(term.Style) {
	w.clears++
	w.prints = nil
	w.boxes = nil
}

func (w *fakeWindow) Box(st term.Style) { w.boxes = append(w.boxes, st) }

func (w *fakeWindow) HLine(int, int, rune, int, term.Style) {}

func (w *fakeWindow) VLine(int, int, rune, int, term.Style) {}

func (w *fakeWindow) Print(y, x int, text string, st term.Style) {
	w.prints = append(w.prints, printed{y: y, x: x, text: text, st: st})
}

func (w *fakeWindow) Refresh() { w.refreshes++ }

func (w *fakeWindow) printedAt(y int) (printed, bool) {
	for _, p := range w.prints {
		if p.y == y {
			return p, true
		}
	}
	return printed{}, false
}
