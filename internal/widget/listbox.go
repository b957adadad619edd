package widget

import (
	"fmt"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
	"github.com/baaaaaaaka/tcwidgets/internal/viewport"
)

// ListBox shows rows in insertion order. Selected is the navigation cursor,
// active the last confirmed row.
type ListBox struct {
	frame
	rows     []string
	selected int
	active   int
	onActive Callback
}

var _ Widget = (*ListBox)(nil)

func NewListBox(scr term.Screen, pos Position, size Size, onActive Callback) (*ListBox, error) {
	f, err := newFrame(scr, Geometry{Pos: pos, Size: size})
	if err != nil {
		return nil, err
	}
	return &ListBox{frame: f, onActive: onActive}, nil
}

func (l *ListBox) AddRows(rows ...string) {
	if len(rows) == 0 {
		return
	}
	l.rows = append(l.rows, rows...)
	l.changed = true
}

func (l *ListBox) RemoveRow(i int) error {
	if i < 0 || i >= len(l.rows) {
		return fmt.Errorf("%w: %d (have %d rows)", ErrRowRange, i, len(l.rows))
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	last := max(0, len(l.rows)-1)
	if l.selected > i || l.selected > last {
		l.selected = max(0, l.selected-1)
	}
	if l.active > i || l.active > last {
		l.active = max(0, l.active-1)
	}
	l.changed = true
	return nil
}

func (l *ListBox) Rows() []string {
	out := make([]string, len(l.rows))
	copy(out, l.rows)
	return out
}

func (l *ListBox) Selected() int { return l.selected }

func (l *ListBox) Active() int { return l.active }

func (l *ListBox) Command(k term.Key) bool {
	if !l.editable {
		return false
	}
	switch {
	case k == term.KeyUp:
		if l.selected > 0 {
			l.selected--
			l.changed = true
			return true
		}
	case k == term.KeyDown:
		if l.selected+1 < len(l.rows) {
			l.selected++
			l.changed = true
			return true
		}
	case term.IsConfirm(k):
		if len(l.rows) == 0 || l.active == l.selected {
			return false
		}
		l.active = l.selected
		l.changed = true
		if l.onActive != nil {
			l.onActive(Event{Active: l.rows[l.active]})
		}
		return true
	}
	return false
}

func (l *ListBox) Draw(force bool) {
	if !l.begin(force) {
		return
	}
	r := l.rect
	l.win.Clear(term.Style{})
	l.win.Box(l.borderStyle())

	vp := viewport.Compute(len(l.rows), r.H-2, l.selected)
	end := min(len(l.rows), vp.Offset+vp.Visible)
	for i := vp.Offset; i < end; i++ {
		st := term.Style{}
		if i == l.active {
			st = term.PairStyle(term.PairFocus)
		}
		y := vp.Slot(i) + 1
		if i == l.selected {
			l.win.Print(y, 1, fit(">"+l.rows[i], r.W-2), st)
		} else {
			l.win.Print(y, 2, fit(l.rows[i], r.W-3), st)
		}
	}
	l.finish()
}
