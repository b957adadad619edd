// Package viewport computes which slice of a larger logical extent is visible
// inside a smaller physical one.
package viewport

// Offset returns the index of the first visible item when logical items are
// shown through a window of visible slots and cursor must stay on screen.
//
// The cursor is kept inside the window with a two item lookahead, the offset
// never exceeds logical-visible and is zero whenever everything fits. A one
// slot window has no room for lookahead and just follows the cursor.
func Offset(logical, visible, cursor int) int {
	if visible < 1 {
		visible = 1
	}
	if logical <= visible {
		return 0
	}
	return min(logical-visible, max(cursor-visible+min(lookahead, visible), 0))
}

const lookahead = 2

type Window struct {
	Offset  int
	Visible int
}

// Compute is Offset packaged with the visible count it was computed for.
func Compute(logical, visible, cursor int) Window {
	if visible < 1 {
		visible = 1
	}
	return Window{Offset: Offset(logical, visible, cursor), Visible: visible}
}

func (w Window) Contains(i int) bool {
	return i >= w.Offset && i < w.Offset+w.Visible
}

// Slot maps a logical index to its position inside the window.
func (w Window) Slot(i int) int {
	return i - w.Offset
}
