package game

import (
	"context"
	"sync"
	"time"
)

// Ticker runs a function every period on its own goroutine until stopped.
// A tick already in flight may still run after Stop returns, so the
// function must check whatever state it depends on.
type Ticker struct {
	period time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewTicker creates a stopped ticker.
func NewTicker(period time.Duration) *Ticker {
	return &Ticker{period: period}
}

// Start begins calling fn every period. It returns false if the ticker is
// already active. Cancelling ctx stops the ticker as well.
func (t *Ticker) Start(ctx context.Context, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go t.loop(ctx, fn)
	return true
}

// Stop cancels ticking. It never blocks, so it is safe to call from fn.
// It returns false if the ticker was already stopped.
func (t *Ticker) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return false
	}
	t.cancel()
	t.cancel = nil
	return true
}

// Active reports whether the ticker is running.
func (t *Ticker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Ticker) loop(ctx context.Context, fn func()) {
	tk := time.NewTicker(t.period)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			// Re-check so a stop that raced with the tick wins.
			if ctx.Err() != nil {
				return
			}
			fn()
		}
	}
}
