package app

import (
	"errors"
	"testing"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

func TestCompileMenuBindsEveryItem(t *testing.T) {
	entries, keys, err := compileMenu([]MenuItem{
		{Label: "&File"},
		{Label: "Te&st"},
		{Label: "&Quit", Action: Quit},
	})
	if err != nil {
		t.Fatalf("compileMenu: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries=%d", len(entries))
	}
	want := map[term.Key]int{'f': 0, 'F': 0, 's': 1, 'S': 1, 'q': 2, 'Q': 2}
	for k, idx := range want {
		if keys[k] != idx {
			t.Fatalf("key %q -> %d want %d", rune(k), keys[k], idx)
		}
	}
	e := entries[1]
	if e.before != "Te" || e.hot != 's' || e.after != "t" {
		t.Fatalf("entry=%#v", e)
	}
}

func TestCompileMenuRejectsMalformedLabels(t *testing.T) {
	tests := map[string][]MenuItem{
		"missing marker":    {{Label: "File"}},
		"two markers":       {{Label: "&Fi&le"}},
		"trailing marker":   {{Label: "File&"}},
		"space hot key":     {{Label: "& File"}},
		"duplicate hot key": {{Label: "&File"}, {Label: "&find"}},
	}
	for name, items := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := compileMenu(items); !errors.Is(err, ErrMenuLabel) {
				t.Fatalf("expected ErrMenuLabel, got %v", err)
			}
		})
	}
}

func TestNewRejectsFocusKeyClash(t *testing.T) {
	_, err := New(newFakeScreen(24, 80), "x", []MenuItem{{Label: "&Next"}}, WithFocusKey(term.Key('n')))
	if !errors.Is(err, ErrMenuLabel) {
		t.Fatalf("expected ErrMenuLabel, got %v", err)
	}
}
