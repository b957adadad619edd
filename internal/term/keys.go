package term

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key is a single input code. Printable input is its rune; special keys are
// numbered above the Unicode range so the two never collide.
type Key int

const (
	KeyTab      Key = '\t'
	KeyLinefeed Key = '\n'
	KeyEscape   Key = 0x1b
)

const (
	KeyUp Key = unicode.MaxRune + 1 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyBackspace
	KeyResize
)

var keyNames = map[Key]string{
	KeyTab:       "tab",
	KeyLinefeed:  "linefeed",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdn",
	KeyBackspace: "backspace",
	KeyResize:    "resize",
}

// IsConfirm reports whether k commits a selection. Some terminals deliver a
// bare linefeed instead of the enter key, so both count.
func IsConfirm(k Key) bool {
	return k == KeyEnter || k == KeyLinefeed
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= 0 && k <= unicode.MaxRune && unicode.IsPrint(rune(k)) {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey accepts one of the names printed by Key.String or a single
// printable character.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return 0, fmt.Errorf("empty key name")
	}
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if unicode.IsPrint(r) {
			return Key(r), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// FromEvent translates a tcell key event. Keys without a mapping report false.
func FromEvent(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune()), true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyCtrlJ:
		return KeyLinefeed, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyESC:
		return KeyEscape, true
	case tcell.KeyHome:
		return KeyHome, true
	case tcell.KeyEnd:
		return KeyEnd, true
	case tcell.KeyPgUp:
		return KeyPgUp, true
	case tcell.KeyPgDn:
		return KeyPgDn, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	}
	if k := ev.Key(); k > 0 && k < 0x20 {
		return Key(k), true
	}
	return 0, false
}
