package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

var ErrUnknownKey = errors.New("unknown config key")

const palettePrefix = "palette."

// Keys lists the settable keys. Palette entries are set as palette.<pair>.
func Keys() []string {
	return []string{"focusKey", "logPath", "logLevel", "resizePoll", palettePrefix + "<pair>"}
}

// Set assigns one setting from its string form. An empty value restores the
// default.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch {
	case key == "focusKey":
		if value != "" {
			if _, err := term.ParseKey(value); err != nil {
				return fmt.Errorf("focusKey: %w", err)
			}
		}
		c.FocusKey = value
	case key == "logPath":
		c.LogPath = value
	case key == "logLevel":
		if _, err := logger.ParseLevel(value); err != nil {
			return fmt.Errorf("logLevel: %w", err)
		}
		c.LogLevel = value
	case key == "resizePoll":
		if _, err := parsePoll(value); err != nil {
			return fmt.Errorf("resizePoll: %w", err)
		}
		c.ResizePoll = value
	case strings.HasPrefix(key, palettePrefix):
		return c.setPalette(strings.TrimPrefix(key, palettePrefix), value)
	default:
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}

// setPalette takes "fg,bg", e.g. "yellow,blue".
func (c *Config) setPalette(pair, value string) error {
	if _, err := parsePair(pair); err != nil {
		return err
	}
	if value == "" {
		delete(c.Palette, pair)
		return nil
	}
	fg, bg, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("palette.%s: want fg,bg, got %q", pair, value)
	}
	colors := Colors{Fg: strings.TrimSpace(fg), Bg: strings.TrimSpace(bg)}
	if _, err := term.ParseColorPair(colors.Fg, colors.Bg); err != nil {
		return fmt.Errorf("palette.%s: %w", pair, err)
	}
	if c.Palette == nil {
		c.Palette = map[string]Colors{}
	}
	c.Palette[pair] = colors
	return nil
}

func (c Config) Validate() error {
	if _, err := c.Key(); err != nil {
		return err
	}
	if _, err := c.TermPalette(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Poll(); err != nil {
		return err
	}
	return nil
}

// Key is the focus cycling key, Tab unless configured.
func (c Config) Key() (term.Key, error) {
	if c.FocusKey == "" {
		return term.KeyTab, nil
	}
	k, err := term.ParseKey(c.FocusKey)
	if err != nil {
		return 0, fmt.Errorf("focusKey: %w", err)
	}
	return k, nil
}

// TermPalette resolves the configured colour names. Pairs that are not
// configured keep their defaults when the palette is applied.
func (c Config) TermPalette() (term.Palette, error) {
	p := term.Palette{}
	pairs := make([]string, 0, len(c.Palette))
	for pair := range c.Palette {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)
	for _, pair := range pairs {
		n, err := parsePair(pair)
		if err != nil {
			return nil, err
		}
		colors := c.Palette[pair]
		cp, err := term.ParseColorPair(colors.Fg, colors.Bg)
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", pair, err)
		}
		p[n] = cp
	}
	return p, nil
}

func (c Config) Level() (slog.Level, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("logLevel: %w", err)
	}
	return level, nil
}

// Poll is the resize polling interval; zero disables polling.
func (c Config) Poll() (time.Duration, error) {
	d, err := parsePoll(c.ResizePoll)
	if err != nil {
		return 0, fmt.Errorf("resizePoll: %w", err)
	}
	return d, nil
}

func parsePoll(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative interval %s", s)
	}
	return d, nil
}

func parsePair(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: palette pair %q is not a non-negative number", ErrUnknownKey, s)
	}
	return n, nil
}
