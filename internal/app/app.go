// Package app is the application shell: it owns the menu bar and the
// widgets, routes each key to exactly one place and decides how much of the
// screen to repaint.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
	"github.com/baaaaaaaka/tcwidgets/internal/widget"
)

// MenuHeight is the number of rows above the widget area: the outer border
// and the menu line. The separator under the menu is shared with the top
// border of widgets placed at y=0.
const MenuHeight = 2

var ErrQuit = errors.New("quit")

// Handler is a per-widget key binding that bypasses the widget's own
// Command.
type Handler func(k term.Key) error

type App struct {
	scr     term.Screen
	content term.Screen
	win     term.Window
	title   string
	menu    []menuEntry
	hotkeys map[term.Key]int
	focus   *Focus

	bindings   map[string]map[term.Key]Handler
	focusKey   term.Key
	resizePoll time.Duration

	rows    int
	cols    int
	sized   bool
	settled bool
}

type Option func(*App)

// WithFocusKey replaces Tab as the key that moves focus.
func WithFocusKey(k term.Key) Option {
	return func(a *App) { a.focusKey = k }
}

// WithResizePoll makes Run probe the screen size every d and inject a resize
// when it changed, for terminals that do not report resizes.
func WithResizePoll(d time.Duration) Option {
	return func(a *App) { a.resizePoll = d }
}

func New(scr term.Screen, title string, menu []MenuItem, opts ...Option) (*App, error) {
	entries, hotkeys, err := compileMenu(menu)
	if err != nil {
		return nil, err
	}
	a := &App{
		scr:      scr,
		content:  term.Inset(scr, MenuHeight),
		title:    title,
		menu:     entries,
		hotkeys:  hotkeys,
		focus:    NewFocus(),
		bindings: map[string]map[term.Key]Handler{},
		focusKey: term.KeyTab,
	}
	for _, opt := range opts {
		opt(a)
	}
	if _, clash := a.hotkeys[a.focusKey]; clash {
		return nil, fmt.Errorf("%w: focus key %v is also a menu mnemonic", ErrMenuLabel, a.focusKey)
	}
	a.win = scr.Window(term.Rect{})
	return a, nil
}

// Screen is the area below the menu bar that widgets are placed on.
func (a *App) Screen() term.Screen { return a.content }

func (a *App) AddWidget(name string, w widget.Widget) error {
	return a.focus.Add(name, w)
}

func (a *App) Widget(name string) (widget.Widget, bool) {
	return a.focus.Widget(name)
}

// Focused returns the name of the widget receiving keys.
func (a *App) Focused() (string, bool) {
	return a.focus.Current()
}

func (a *App) FocusRegistry() []string {
	return a.focus.Registry()
}

func (a *App) SetEditable(name string, editable bool) error {
	moved, err := a.focus.SetEditable(name, editable)
	if err != nil {
		return err
	}
	if moved {
		a.Draw(true)
		return nil
	}
	w, _ := a.focus.Widget(name)
	w.Draw(false)
	return nil
}

// BindKey routes k to h while widget name has focus.
func (a *App) BindKey(name string, k term.Key, h Handler) error {
	if _, ok := a.focus.Widget(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	if a.bindings[name] == nil {
		a.bindings[name] = map[term.Key]Handler{}
	}
	a.bindings[name][k] = h
	return nil
}

// ProcessCharacter routes one key: focus key, resize, menu mnemonics, custom
// bindings of the focused widget, then the focused widget itself.
func (a *App) ProcessCharacter(k term.Key) error {
	log := logger.Get()
	if k == a.focusKey {
		a.focus.Cycle()
		name, _ := a.focus.Current()
		log.Debug("focus cycled", "focus", name)
		a.Draw(true)
		return nil
	}

	name, focused := a.focus.Current()

	if k == term.KeyResize {
		log.Debug("resize")
		a.Draw(true)
		return nil
	}

	if idx, ok := a.hotkeys[k]; ok {
		entry := a.menu[idx]
		log.Debug("menu key", "key", k.String(), "hot", string(entry.hot))
		if entry.action == nil {
			return nil
		}
		return entry.action(k)
	}

	if focused {
		if h, ok := a.bindings[name][k]; ok {
			log.Debug("custom binding", "widget", name, "key", k.String())
			return h(k)
		}
		w, _ := a.focus.Widget(name)
		if !w.Command(k) {
			return nil
		}
		if !a.settled {
			a.settled = true
			a.Draw(true)
			return nil
		}
		w.Draw(false)
		return nil
	}

	log.Debug("unhandled key without focus", "key", k.String())
	a.Draw(true)
	return nil
}

// Draw repaints the shell when forced or when the screen size changed, then
// gives every widget the chance to repaint.
func (a *App) Draw(force bool) {
	rows, cols, err := a.scr.Size()
	if err != nil {
		logger.Get().Warn("screen size unavailable", "err", err)
		rows, cols = a.rows, a.cols
	}
	resized := !a.sized || rows != a.rows || cols != a.cols
	if force || resized {
		a.rows, a.cols, a.sized = rows, cols, true
		a.win.Move(term.Rect{W: cols, H: rows})
		a.win.Clear(term.Style{})
		a.win.Box(term.Style{})
		a.win.HLine(MenuHeight, 1, term.GlyphHLine, cols-2, term.Style{})
		a.drawMenu()
		a.win.Refresh()
	}
	for _, name := range a.focus.Names() {
		w, _ := a.focus.Widget(name)
		w.Draw(force || resized)
	}
}

func (a *App) drawMenu() {
	x := 2
	underline := term.Style{Underline: true}
	for _, e := range a.menu {
		a.win.Print(1, x, e.before, term.Style{})
		x += runewidth.StringWidth(e.before)
		a.win.Print(1, x, string(e.hot), underline)
		x += runewidth.RuneWidth(e.hot)
		a.win.Print(1, x, e.after, term.Style{})
		x += runewidth.StringWidth(e.after) + 2
	}
	if a.title == "" {
		return
	}
	title := "=== " + a.title + " ==="
	tx := max(x, (a.cols-runewidth.StringWidth(title))/2)
	a.win.Print(1, tx, title, term.Style{})
}
