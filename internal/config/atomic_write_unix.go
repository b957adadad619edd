//go:build !windows

package config

import (
	"fmt"
	"os"
)

func chmodTemp(f *os.File, perm os.FileMode) error { return f.Chmod(perm) }

func replaceFile(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
