//go:build windows

package term

import (
	"errors"
	"os"
)

func WinsizeProbe(_ *os.File) SizeProbe {
	return func() (int, int, error) {
		return 0, 0, errors.New("winsize probe unsupported on windows")
	}
}
