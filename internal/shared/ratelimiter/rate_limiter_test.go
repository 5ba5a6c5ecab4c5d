package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Hour)
	for i := 0; i < 3; i++ {
		if err := rl.WaitIfNeeded(context.Background()); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}
	if rl.count != 3 {
		t.Errorf("expected count 3, got %d", rl.count)
	}
}

func TestRateLimiter_WaitsForWindow(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 50*time.Millisecond)
	start := time.Now()
	_ = rl.WaitIfNeeded(context.Background())
	if err := rl.WaitIfNeeded(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("expected second call to wait for the window, waited %v", elapsed)
	}
	if rl.count != 1 {
		t.Errorf("expected count reset to 1, got %d", rl.count)
	}
}

func TestRateLimiter_ContextCancelledWhileWaiting(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	_ = rl.WaitIfNeeded(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := rl.WaitIfNeeded(ctx); err != context.DeadlineExceeded {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if rl.count != 1 {
		t.Errorf("expected cancelled call not to be counted, got %d", rl.count)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }
	rl.lastReset = now

	_ = rl.WaitIfNeeded(context.Background())
	now = now.Add(time.Minute)
	if err := rl.WaitIfNeeded(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rl.count != 1 {
		t.Errorf("expected fresh window count 1, got %d", rl.count)
	}
}

func TestRateLimiter_DisabledWhenLimitNotPositive(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, time.Hour)
	for i := 0; i < 10; i++ {
		if err := rl.WaitIfNeeded(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
