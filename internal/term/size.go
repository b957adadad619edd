package term

import (
	"errors"
	"sync"
)

var ErrNoSize = errors.New("terminal size unknown")

// SizeProbe reports the terminal size or an error when it cannot be read.
type SizeProbe func() (rows, cols int, err error)

// SizeCache asks each probe in turn and remembers the last good answer, so a
// failing query degrades to the previous size instead of an error.
type SizeCache struct {
	mu     sync.Mutex
	probes []SizeProbe
	rows   int
	cols   int
	known  bool
	misses int
}

func NewSizeCache(probes ...SizeProbe) *SizeCache {
	return &SizeCache{probes: probes}
}

func (c *SizeCache) Size() (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, probe := range c.probes {
		rows, cols, err := probe()
		if err != nil || rows <= 0 || cols <= 0 {
			continue
		}
		c.rows, c.cols, c.known = rows, cols, true
		return rows, cols, nil
	}
	c.misses++
	if c.known {
		return c.rows, c.cols, nil
	}
	return 0, 0, ErrNoSize
}

// Misses counts queries answered from the cache (or not at all).
func (c *SizeCache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
