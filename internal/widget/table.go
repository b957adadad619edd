package widget

import (
	"fmt"

	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
	"github.com/baaaaaaaka/tcwidgets/internal/viewport"
)

type Cell struct {
	Row   int
	Col   int
	Value string
}

// Table is a grid of rows x cols cells fixed at construction.
type Table struct {
	frame
	rows     int
	cols     int
	cells    [][]string
	selected Coord
	active   Coord
	onActive Callback
}

var _ Widget = (*Table)(nil)

func NewTable(scr term.Screen, pos Position, size Size, rows, cols int, onActive Callback) (*Table, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	f, err := newFrame(scr, Geometry{Pos: pos, Size: size})
	if err != nil {
		return nil, err
	}
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}
	return &Table{frame: f, rows: rows, cols: cols, cells: cells, onActive: onActive}, nil
}

// SetCells applies all values or, if any is out of range, none of them.
func (t *Table) SetCells(cells ...Cell) error {
	for _, c := range cells {
		if c.Row < 0 || c.Row >= t.rows || c.Col < 0 || c.Col >= t.cols {
			return fmt.Errorf("%w: (%d,%d) in %dx%d table", ErrCellRange, c.Row, c.Col, t.rows, t.cols)
		}
	}
	for _, c := range cells {
		t.cells[c.Row][c.Col] = c.Value
	}
	if len(cells) > 0 {
		t.changed = true
	}
	return nil
}

func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return "", false
	}
	return t.cells[row][col], true
}

func (t *Table) Dims() (rows, cols int) { return t.rows, t.cols }

func (t *Table) Selected() Coord { return t.selected }

func (t *Table) Active() Coord { return t.active }

func (t *Table) Command(k term.Key) bool {
	if !t.editable {
		return false
	}
	sel := t.selected
	switch {
	case k == term.KeyUp && sel.Row > 0:
		t.selected = Coord{Row: sel.Row - 1, Col: sel.Col}
	case k == term.KeyDown && sel.Row+1 < t.rows:
		t.selected = Coord{Row: sel.Row + 1, Col: sel.Col}
	case k == term.KeyLeft && sel.Col > 0:
		t.selected = Coord{Row: sel.Row, Col: sel.Col - 1}
	case k == term.KeyRight && sel.Col+1 < t.cols:
		t.selected = Coord{Row: sel.Row, Col: sel.Col + 1}
	case term.IsConfirm(k):
		t.bell()
		if t.active == t.selected {
			return false
		}
		t.active = t.selected
		t.changed = true
		if t.onActive != nil {
			t.onActive(Event{Active: t.cells[t.active.Row][t.active.Col]})
		}
		return true
	default:
		return false
	}
	t.changed = true
	return true
}

func (t *Table) bell() {
	if err := t.scr.Beep(); err != nil {
		logger.Get().Warn("terminal bell failed", "err", err)
	}
}

// cellPitch is the number of screen cells taken by one row or column,
// including its separator.
func cellPitch(extent, count int) int {
	return max(2, extent/count)
}

func (t *Table) Draw(force bool) {
	if !t.begin(force) {
		return
	}
	r := t.rect
	colPitch := cellPitch(r.W, t.cols)
	rowPitch := cellPitch(r.H, t.rows)
	visCols := min(t.cols, max(1, r.W/colPitch))
	visRows := min(t.rows, max(1, r.H/rowPitch))

	border := t.borderStyle()
	t.win.Clear(term.Style{})
	t.win.Box(border)

	for c := 1; c < visCols; c++ {
		x := c * colPitch
		t.win.VLine(0, x, term.GlyphTTee, 1, border)
		t.win.VLine(1, x, term.GlyphVLine, r.H-2, border)
		t.win.VLine(r.H-1, x, term.GlyphBTee, 1, border)
	}
	for row := 1; row < visRows; row++ {
		y := row * rowPitch
		t.win.HLine(y, 0, term.GlyphLTee, 1, border)
		t.win.HLine(y, 1, term.GlyphHLine, r.W-2, border)
		t.win.HLine(y, r.W-1, term.GlyphRTee, 1, border)
		for c := 1; c < visCols; c++ {
			t.win.HLine(y, c*colPitch, term.GlyphPlus, 1, border)
		}
	}

	rowView := viewport.Compute(t.rows, visRows, t.selected.Row)
	colView := viewport.Compute(t.cols, visCols, t.selected.Col)
	textWidth := colPitch - 2
	for row := rowView.Offset; row < rowView.Offset+rowView.Visible; row++ {
		for col := colView.Offset; col < colView.Offset+colView.Visible; col++ {
			t.win.Print(
				rowView.Slot(row)*rowPitch+1,
				colView.Slot(col)*colPitch+1,
				justifyRight(t.cells[row][col], textWidth),
				t.cellStyle(Coord{Row: row, Col: col}),
			)
		}
	}
	t.finish()
}

func (t *Table) cellStyle(pos Coord) term.Style {
	if !t.editable {
		return term.Style{}
	}
	st := term.Style{}
	if pos == t.active {
		st = term.PairStyle(term.PairFocus)
		st.Underline = true
	}
	if pos == t.selected {
		st.Standout = true
	}
	return st
}
