package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

// MnemonicMarker precedes the hot key character in a menu label.
const MnemonicMarker = "&"

var ErrMenuLabel = errors.New("invalid menu label")

// MenuAction runs when its mnemonic is pressed. A nil action consumes the key
// and does nothing.
type MenuAction func(k term.Key) error

type MenuItem struct {
	Label  string
	Action MenuAction
}

type menuEntry struct {
	before string
	hot    rune
	after  string
	action MenuAction
}

// Quit is a MenuAction that ends Run.
func Quit(term.Key) error { return ErrQuit }

func compileMenu(items []MenuItem) ([]menuEntry, map[term.Key]int, error) {
	entries := make([]menuEntry, 0, len(items))
	keys := map[term.Key]int{}
	for i, item := range items {
		e, err := parseLabel(item.Label)
		if err != nil {
			return nil, nil, err
		}
		e.action = item.Action
		lower := term.Key(unicode.ToLower(e.hot))
		upper := term.Key(unicode.ToUpper(e.hot))
		if prev, ok := keys[lower]; ok {
			return nil, nil, fmt.Errorf("%w: %q reuses mnemonic %q of %q", ErrMenuLabel, item.Label, e.hot, items[prev].Label)
		}
		keys[lower] = i
		keys[upper] = i
		entries = append(entries, e)
	}
	return entries, keys, nil
}

func parseLabel(label string) (menuEntry, error) {
	switch n := strings.Count(label, MnemonicMarker); {
	case n == 0:
		return menuEntry{}, fmt.Errorf("%w: %q has no %s marker", ErrMenuLabel, label, MnemonicMarker)
	case n > 1:
		return menuEntry{}, fmt.Errorf("%w: %q has %d %s markers", ErrMenuLabel, label, n, MnemonicMarker)
	}
	before, rest, _ := strings.Cut(label, MnemonicMarker)
	hot, size := utf8.DecodeRuneInString(rest)
	if rest == "" || hot == utf8.RuneError || !unicode.IsPrint(hot) || unicode.IsSpace(hot) {
		return menuEntry{}, fmt.Errorf("%w: %q has no character after %s", ErrMenuLabel, label, MnemonicMarker)
	}
	return menuEntry{before: before, hot: hot, after: rest[size:]}, nil
}
