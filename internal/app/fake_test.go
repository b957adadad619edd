package app

import (
	"sync"
	"sync/atomic"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

type fakeScreen struct {
	mu      sync.Mutex
	rows    int
	cols    int
	windows []*fakeWindow
}

func newFakeScreen(rows, cols int) *fakeScreen {
	return &fakeScreen{rows: rows, cols: cols}
}

func (s *fakeScreen) Size() (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows, s.cols, nil
}

func (s *fakeScreen) resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows, s.cols = rows, cols
}

func (s *fakeScreen) Window(r term.Rect) term.Window {
	w := &fakeWindow{r: r}
	s.windows = append(s.windows, w)
	return w
}

func (s *fakeScreen) Beep() error { return nil }

func (s *fakeScreen) Show() {}

type fakeWindow struct {
	r      term.Rect
	clears int
	text   []string
}

func (w *fakeWindow) Move(r term.Rect) { w.r = r }

func (w *fakeWindow) Bounds() term.Rect { return w.r }

func (w *fakeWindow) Clear(term.Style) {
	w.clears++
	w.text = nil
}

func (w *fakeWindow) Box(term.Style) {}

func (w *fakeWindow) HLine(int, int, rune, int, term.Style) {}

func (w *fakeWindow) VLine(int, int, rune, int, term.Style) {}

func (w *fakeWindow) Print(_, _ int, text string, _ term.Style) { w.text = append(w.text, text) }

func (w *fakeWindow) Refresh() {}

type fakeInput struct {
	keys        []term.Key
	resizes     atomic.Int32
	interrupted chan struct{}
}

func newFakeInput(keys ...term.Key) *fakeInput {
	return &fakeInput{keys: keys, interrupted: make(chan struct{})}
}

// ReadKey hands out the queued keys, then blocks until interrupted.
func (in *fakeInput) ReadKey() (term.Key, error) {
	if len(in.keys) > 0 {
		k := in.keys[0]
		in.keys = in.keys[1:]
		return k, nil
	}
	<-in.interrupted
	return 0, term.ErrInterrupted
}

func (in *fakeInput) Interrupt() { close(in.interrupted) }

func (in *fakeInput) PostResize() { in.resizes.Add(1) }

// fakeWidget records how it was asked to draw.
type fakeWidget struct {
	editable bool
	focused  bool
	changes  bool
	draws    []bool
	commands []term.Key
}

func newFakeWidget() *fakeWidget { return &fakeWidget{editable: true, changes: true} }

func (w *fakeWidget) Draw(force bool) { w.draws = append(w.draws, force) }

func (w *fakeWidget) Command(k term.Key) bool {
	w.commands = append(w.commands, k)
	return w.changes
}

func (w *fakeWidget) Changed() bool { return false }

func (w *fakeWidget) SetFocus(focused bool) { w.focused = focused && w.editable }

func (w *fakeWidget) Focused() bool { return w.focused }

func (w *fakeWidget) SetEditable(editable bool) {
	w.editable = editable
	if !editable {
		w.focused = false
	}
}

func (w *fakeWidget) Editable() bool { return w.editable }

func (w *fakeWidget) reset() { w.draws = nil }

func (w *fakeWidget) lastDraw() (bool, bool) {
	if len(w.draws) == 0 {
		return false, false
	}
	return w.draws[len(w.draws)-1], true
}
