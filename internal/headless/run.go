// Package headless runs a countdown without the terminal UI, printing the
// clock whenever the displayed value changes. It is used when stdout is not
// a terminal.
package headless

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/akyairhashvil/tminus/internal/countdown"
	"github.com/akyairhashvil/tminus/internal/tui"
)

type Options struct {
	Clock countdown.Clock
	// Trigger defaults to a ticker with Period.
	Trigger countdown.Trigger
	Period  time.Duration
}

// Run counts seconds down to zero, writing one HH:MM:SS line per change. It
// returns nil at zero and ctx.Err() when cancelled first.
func Run(ctx context.Context, w io.Writer, seconds int, opts Options) error {
	fires := make(chan struct{}, 1)
	notify := func() {
		select {
		case fires <- struct{}{}:
		default:
		}
	}
	trigger := opts.Trigger
	if trigger == nil {
		trigger = countdown.NewTicker(opts.Period)
	}

	engine := countdown.NewEngine(opts.Clock, trigger, notify)
	defer engine.Dispose()
	engine.Load(seconds)
	if err := engine.Start(); err != nil {
		return err
	}
	slog.Info("headless countdown started", "seconds", seconds)

	last := engine.Remaining()
	if _, err := fmt.Fprintln(w, tui.FormatClock(last)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			engine.Pause()
			slog.Info("headless countdown interrupted", "remaining", engine.Remaining())
			return ctx.Err()
		case <-fires:
			remaining := engine.Recompute()
			if remaining != last {
				last = remaining
				if _, err := fmt.Fprintln(w, tui.FormatClock(remaining)); err != nil {
					return err
				}
			}
			if engine.State() != countdown.Running {
				slog.Info("headless countdown finished", "total", engine.Total())
				return nil
			}
		}
	}
}
