package countdown

import (
	"context"
	"sync"
	"time"
)

// Ticker is a Trigger backed by a background goroutine and a time.Ticker.
type Ticker struct {
	period time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTicker returns a Ticker firing every period. Non-positive periods fall
// back to one second.
func NewTicker(period time.Duration) *Ticker {
	if period <= 0 {
		period = time.Second
	}
	return &Ticker{period: period}
}

func (t *Ticker) Period() time.Duration {
	return t.period
}

// Start launches the tick goroutine. A running ticker is restarted.
func (t *Ticker) Start(fire func()) {
	t.Stop()

	t.mu.Lock()
	defer t.mu.Unlock()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel, t.done = cancel, done

	go func() {
		defer close(done)
		tk := time.NewTicker(t.period)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				// Both channels may be ready; cancellation wins.
				if ctx.Err() != nil {
					return
				}
				fire()
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
