package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style is a terminal independent attribute set. Pair names an entry in the
// Palette; the zero value is the normal style.
type Style struct {
	Pair      int
	Underline bool
	Standout  bool
}

const (
	PairNormal = 0
	PairFocus  = 1
)

func PairStyle(pair int) Style {
	return Style{Pair: pair}
}

type ColorPair struct {
	Fg tcell.Color
	Bg tcell.Color
}

type Palette map[int]ColorPair

func DefaultPalette() Palette {
	return Palette{
		PairNormal: {Fg: tcell.ColorDefault, Bg: tcell.ColorDefault},
		PairFocus:  {Fg: tcell.ColorBlue, Bg: tcell.ColorBlack},
	}
}

func (p Palette) Resolve(s Style) tcell.Style {
	st := tcell.StyleDefault
	if cp, ok := p[s.Pair]; ok {
		st = st.Foreground(cp.Fg).Background(cp.Bg)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Standout {
		st = st.Reverse(true)
	}
	return st
}

// ParseColorPair resolves colour names such as "blue" or "#ff8800".
func ParseColorPair(fg, bg string) (ColorPair, error) {
	f, err := parseColor(fg)
	if err != nil {
		return ColorPair{}, err
	}
	b, err := parseColor(bg)
	if err != nil {
		return ColorPair{}, err
	}
	return ColorPair{Fg: f, Bg: b}, nil
}

func parseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}
