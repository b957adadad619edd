package viewport

import "testing"

func TestOffsetNoScrollWhenContentFits(t *testing.T) {
	for logical := 0; logical <= 12; logical++ {
		for visible := max(1, logical); visible <= 14; visible++ {
			for cursor := 0; cursor < 20; cursor++ {
				if got := Offset(logical, visible, cursor); got != 0 {
					t.Fatalf("Offset(%d,%d,%d)=%d want 0", logical, visible, cursor, got)
				}
			}
		}
	}
}

func TestOffsetKeepsCursorVisible(t *testing.T) {
	for logical := 1; logical <= 30; logical++ {
		for visible := 1; visible <= 12; visible++ {
			maxOffset := max(0, logical-visible)
			for cursor := 0; cursor < logical; cursor++ {
				got := Offset(logical, visible, cursor)
				if got < 0 || got > maxOffset {
					t.Fatalf("Offset(%d,%d,%d)=%d outside [0,%d]", logical, visible, cursor, got, maxOffset)
				}
				if logical > visible && (cursor < got || cursor > got+visible-1) {
					t.Fatalf("Offset(%d,%d,%d)=%d hides cursor", logical, visible, cursor, got)
				}
			}
		}
	}
}

func TestOffsetExamples(t *testing.T) {
	tests := []struct {
		name                     string
		logical, visible, cursor int
		want                     int
	}{
		{name: "exact fit ignores cursor", logical: 5, visible: 5, cursor: 4, want: 0},
		{name: "cursor near top", logical: 20, visible: 5, cursor: 2, want: 0},
		{name: "lookahead margin", logical: 20, visible: 5, cursor: 4, want: 1},
		{name: "middle", logical: 20, visible: 5, cursor: 10, want: 7},
		{name: "clamped at end", logical: 20, visible: 5, cursor: 19, want: 15},
		{name: "zero visible treated as one", logical: 3, visible: 0, cursor: 2, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Offset(tt.logical, tt.visible, tt.cursor); got != tt.want {
				t.Fatalf("Offset=%d want %d", got, tt.want)
			}
		})
	}
}

func TestWindowSlot(t *testing.T) {
	w := Compute(20, 5, 10)
	if w.Offset != 7 || w.Visible != 5 {
		t.Fatalf("window=%#v", w)
	}
	if w.Contains(6) || !w.Contains(7) || !w.Contains(11) || w.Contains(12) {
		t.Fatalf("Contains mismatch for %#v", w)
	}
	if got := w.Slot(10); got != 3 {
		t.Fatalf("Slot(10)=%d want 3", got)
	}
}
