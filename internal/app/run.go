package app

import (
	"context"
	"errors"
	"time"

	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
)

// Run paints the screen and processes keys from in until a menu action
// returns ErrQuit, the input closes or ctx is cancelled. Keys are handled one
// at a time on the calling goroutine.
func (a *App) Run(ctx context.Context, in term.Input) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			in.Interrupt()
		case <-done:
		}
	}()

	if a.resizePoll > 0 {
		go a.pollResize(in, a.resizePoll, done)
	}

	a.Draw(true)
	for {
		k, err := in.ReadKey()
		if err != nil {
			switch {
			case errors.Is(err, term.ErrInterrupted):
				return ctx.Err()
			case errors.Is(err, term.ErrClosed):
				return nil
			default:
				return err
			}
		}
		if err := a.ProcessCharacter(k); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// pollResize only posts events; the resize itself is handled by Run like any
// other key.
func (a *App) pollResize(in term.Input, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastRows, lastCols, _ := a.scr.Size()
	for {
		select {
		case <-ticker.C:
			rows, cols, err := a.scr.Size()
			if err != nil {
				continue
			}
			if rows != lastRows || cols != lastCols {
				logger.Get().Debug("resize detected by poll", "rows", rows, "cols", cols)
				lastRows, lastCols = rows, cols
				in.PostResize()
			}
		case <-done:
			return
		}
	}
}
