package config

const CurrentVersion = 1

// Config holds user settings. Empty fields mean the built-in default.
type Config struct {
	Version  int    `json:"version"`
	FocusKey string `json:"focusKey,omitempty"`
	// Palette maps a colour pair number to its colours.
	Palette    map[string]Colors `json:"palette,omitempty"`
	LogPath    string            `json:"logPath,omitempty"`
	LogLevel   string            `json:"logLevel,omitempty"`
	ResizePoll string            `json:"resizePoll,omitempty"`
}

type Colors struct {
	Fg string `json:"fg"`
	Bg string `json:"bg"`
}
