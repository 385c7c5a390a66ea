package game

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerStartStop(t *testing.T) {
	ticks := make(chan struct{}, 16)
	fn := func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}
	tk := NewTicker(time.Millisecond)

	if !tk.Start(context.Background(), fn) {
		t.Fatal("Start() = false, want true")
	}
	if tk.Start(context.Background(), fn) {
		t.Error("second Start() = true, want false")
	}

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}

	if !tk.Stop() {
		t.Error("Stop() = false, want true")
	}
	if tk.Stop() {
		t.Error("second Stop() = true, want false")
	}
	if tk.Active() {
		t.Error("Active() after Stop = true")
	}
}

func TestTickerStopsFiring(t *testing.T) {
	var n atomic.Int32
	tk := NewTicker(time.Millisecond)
	tk.Start(context.Background(), func() { n.Add(1) })
	time.Sleep(20 * time.Millisecond)
	tk.Stop()

	// Allow one tick that raced with Stop to finish.
	time.Sleep(10 * time.Millisecond)
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Errorf("ticks after Stop: %d -> %d", after, got)
	}
}

func TestTickerRestartUsesNewFunc(t *testing.T) {
	var first, second atomic.Int32
	tk := NewTicker(time.Millisecond)
	ctx := context.Background()

	tk.Start(ctx, func() { first.Add(1) })
	tk.Stop()
	time.Sleep(10 * time.Millisecond)
	before := first.Load()

	tk.Start(ctx, func() { second.Add(1) })
	defer tk.Stop()

	deadline := time.Now().Add(time.Second)
	for second.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if second.Load() == 0 {
		t.Fatal("restarted ticker never fired")
	}
	if got := first.Load(); got != before {
		t.Errorf("old func ticked after restart: %d -> %d", before, got)
	}
}

func TestTickerContextCancel(t *testing.T) {
	var n atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	tk := NewTicker(time.Millisecond)
	tk.Start(ctx, func() { n.Add(1) })
	cancel()

	time.Sleep(10 * time.Millisecond)
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Errorf("ticks after cancel: %d -> %d", after, got)
	}
}
