//go:build !windows

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// WinsizeProbe reads the kernel's idea of the window size for f.
func WinsizeProbe(f *os.File) SizeProbe {
	return func() (int, int, error) {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			return 0, 0, fmt.Errorf("TIOCGWINSZ: %w", err)
		}
		return int(ws.Row), int(ws.Col), nil
	}
}
