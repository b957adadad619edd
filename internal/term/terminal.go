package term

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	ErrInterrupted = errors.New("input interrupted")
	ErrClosed      = errors.New("terminal closed")
)

var newScreen = tcell.NewScreen

// Input delivers key codes one at a time.
type Input interface {
	ReadKey() (Key, error)
	Interrupt()
	PostResize()
}

// Terminal owns the physical screen. It is acquired by Open and released by
// Close, which is safe to call more than once.
type Terminal struct {
	screen  tcell.Screen
	palette Palette
	sizes   *SizeCache

	closeOnce sync.Once
	closed    chan struct{}
}

type interruptEvent struct{ when time.Time }

func (e *interruptEvent) When() time.Time { return e.when }

type resizeEvent struct{ when time.Time }

func (e *resizeEvent) When() time.Time { return e.when }

func Open() (*Terminal, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return OpenScreen(screen)
}

// OpenScreen initialises screen and takes ownership of it.
func OpenScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	t := &Terminal{
		screen:  screen,
		palette: DefaultPalette(),
		closed:  make(chan struct{}),
	}
	t.sizes = NewSizeCache(t.screenSize, WinsizeProbe(os.Stdout))
	screen.HideCursor()
	return t, nil
}

func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.closed)
		t.screen.Fini()
	})
}

func (t *Terminal) SetPalette(p Palette) {
	merged := DefaultPalette()
	for pair, cp := range p {
		merged[pair] = cp
	}
	t.palette = merged
}

func (t *Terminal) screenSize() (int, int, error) {
	cols, rows := t.screen.Size()
	return rows, cols, nil
}

func (t *Terminal) Size() (int, int, error) {
	return t.sizes.Size()
}

func (t *Terminal) Window(r Rect) Window {
	return &cellWindow{t: t, r: r}
}

func (t *Terminal) Beep() error {
	return t.screen.Beep()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

// ReadKey blocks until a mappable key arrives. Terminal resizes are reported
// as KeyResize on the same stream.
func (t *Terminal) ReadKey() (Key, error) {
	for {
		select {
		case <-t.closed:
			return 0, ErrClosed
		default:
		}
		ev := t.screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return 0, ErrClosed
		case *interruptEvent:
			return 0, ErrInterrupted
		case *resizeEvent:
			return KeyResize, nil
		case *tcell.EventResize:
			t.screen.Sync()
			return KeyResize, nil
		case *tcell.EventKey:
			if k, ok := FromEvent(tev); ok {
				return k, nil
			}
		}
	}
}

// Interrupt makes a pending or future ReadKey return ErrInterrupted.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(&interruptEvent{when: time.Now()})
}

func (t *Terminal) PostResize() {
	_ = t.screen.PostEvent(&resizeEvent{when: time.Now()})
}

type cellWindow struct {
	t *Terminal
	r Rect
}

func (w *cellWindow) Move(r Rect) { w.r = r }

func (w *cellWindow) Bounds() Rect { return w.r }

func (w *cellWindow) set(y, x int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= w.r.W || y >= w.r.H {
		return
	}
	w.t.screen.SetContent(w.r.X+x, w.r.Y+y, ch, nil, st)
}

func (w *cellWindow) Clear(st Style) {
	style := w.t.palette.Resolve(st)
	for y := 0; y < w.r.H; y++ {
		for x := 0; x < w.r.W; x++ {
			w.set(y, x, ' ', style)
		}
	}
}

func (w *cellWindow) Box(st Style) {
	if w.r.W < 2 || w.r.H < 2 {
		return
	}
	w.HLine(0, 1, GlyphHLine, w.r.W-2, st)
	w.HLine(w.r.H-1, 1, GlyphHLine, w.r.W-2, st)
	w.VLine(1, 0, GlyphVLine, w.r.H-2, st)
	w.VLine(1, w.r.W-1, GlyphVLine, w.r.H-2, st)
	style := w.t.palette.Resolve(st)
	w.set(0, 0, GlyphULCorner, style)
	w.set(0, w.r.W-1, GlyphURCorner, style)
	w.set(w.r.H-1, 0, GlyphLLCorner, style)
	w.set(w.r.H-1, w.r.W-1, GlyphLRCorner, style)
}

func (w *cellWindow) HLine(y, x int, glyph rune, n int, st Style) {
	style := w.t.palette.Resolve(st)
	for i := 0; i < n; i++ {
		w.set(y, x+i, glyph, style)
	}
}

func (w *cellWindow) VLine(y, x int, glyph rune, n int, st Style) {
	style := w.t.palette.Resolve(st)
	for i := 0; i < n; i++ {
		w.set(y+i, x, glyph, style)
	}
}

func (w *cellWindow) Print(y, x int, text string, st Style) {
	style := w.t.palette.Resolve(st)
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		if x+offset+width > w.r.W {
			return
		}
		w.set(y, x+offset, ch, style)
		offset += width
	}
}

func (w *cellWindow) Refresh() {
	w.t.screen.Show()
}
