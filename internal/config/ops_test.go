package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

func TestDefaults(t *testing.T) {
	cfg := Config{Version: CurrentVersion}
	if k, err := cfg.Key(); err != nil || k != term.KeyTab {
		t.Fatalf("Key=%v,%v", k, err)
	}
	if p, err := cfg.TermPalette(); err != nil || len(p) != 0 {
		t.Fatalf("TermPalette=%v,%v", p, err)
	}
	if l, err := cfg.Level(); err != nil || l != slog.LevelInfo {
		t.Fatalf("Level=%v,%v", l, err)
	}
	if d, err := cfg.Poll(); err != nil || d != 0 {
		t.Fatalf("Poll=%v,%v", d, err)
	}
}

func TestSetAppliesValidValues(t *testing.T) {
	var cfg Config
	for _, kv := range [][2]string{
		{"focusKey", "esc"},
		{"logPath", "/var/tmp/ui.log"},
		{"logLevel", "debug"},
		{"resizePoll", "500ms"},
		{"palette.1", "yellow, blue"},
		{"palette.3", "white,red"},
	} {
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s): %v", kv[0], err)
		}
	}
	if k, _ := cfg.Key(); k != term.KeyEscape {
		t.Fatalf("Key=%v", k)
	}
	if d, _ := cfg.Poll(); d != 500*time.Millisecond {
		t.Fatalf("Poll=%v", d)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Fatalf("Level=%v", l)
	}
	p, err := cfg.TermPalette()
	if err != nil {
		t.Fatalf("TermPalette: %v", err)
	}
	if p[1].Fg != tcell.ColorYellow || p[1].Bg != tcell.ColorBlue || p[3].Bg != tcell.ColorRed {
		t.Fatalf("palette=%v", p)
	}

	if err := cfg.Set("palette.3", ""); err != nil {
		t.Fatalf("clear palette: %v", err)
	}
	if _, ok := cfg.Palette["3"]; ok {
		t.Fatalf("palette.3 not cleared")
	}
	if err := cfg.Set("focusKey", ""); err != nil {
		t.Fatalf("clear focusKey: %v", err)
	}
	if k, _ := cfg.Key(); k != term.KeyTab {
		t.Fatalf("Key after reset=%v", k)
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"focusKey", "ctrl-meta-hyper"},
		{"logLevel", "loud"},
		{"resizePoll", "-1s"},
		{"resizePoll", "often"},
		{"palette.x", "red,blue"},
		{"palette.1", "red"},
		{"palette.1", "mauve-ish,blue"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			var cfg Config
			if err := cfg.Set(tt.key, tt.value); err == nil {
				t.Fatalf("expected error")
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("rejected value leaked into config: %v", err)
			}
		})
	}
}

func TestSetUnknownKey(t *testing.T) {
	var cfg Config
	if err := cfg.Set("colour", "red"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}
