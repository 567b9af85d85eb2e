package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestFixedWindowLimiter_RedisNil_Allows(t *testing.T) {
	l := NewFixedWindowLimiter(nil)

	d, err := l.AllowFixedWindow(context.Background(), "k", 10, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("expected allowed when redis disabled")
	}
	if d.Remaining != 10 {
		t.Fatalf("unexpected remaining: %d", d.Remaining)
	}
}

func TestFixedWindowLimiter_LimitZero_Allows(t *testing.T) {
	l := NewFixedWindowLimiter(nil)

	d, _ := l.AllowFixedWindow(context.Background(), "k", 0, time.Minute)
	if !d.Allowed {
		t.Fatalf("limit=0 should allow")
	}
}

func TestFixedWindowLimiter_BlocksAfterLimit(t *testing.T) {
	s := miniredis.RunT(t)
	c := New(s.Addr(), "", 0)
	defer c.Close()

	l := NewFixedWindowLimiter(c)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		d, err := l.AllowFixedWindow(ctx, "rl:login:1.2.3.4", 5, 15*time.Minute)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i)
		}
		if d.Remaining != 5-i {
			t.Fatalf("attempt %d: unexpected remaining %d", i, d.Remaining)
		}
	}

	d, err := l.AllowFixedWindow(ctx, "rl:login:1.2.3.4", 5, 15*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Allowed {
		t.Fatalf("sixth attempt should be blocked")
	}
	if d.RetryAfter <= 0 {
		t.Fatalf("expected positive RetryAfter, got %v", d.RetryAfter)
	}
}

func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	c := New(s.Addr(), "", 0)
	defer c.Close()

	l := NewFixedWindowLimiter(c)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := l.AllowFixedWindow(ctx, "rl:login:1.2.3.4", 5, time.Minute); err != nil {
			t.Fatal(err)
		}
	}

	d, err := l.AllowFixedWindow(ctx, "rl:login:5.6.7.8", 5, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("another client should not be blocked")
	}
}

func TestFixedWindowLimiter_WindowExpiryResets(t *testing.T) {
	s := miniredis.RunT(t)
	c := New(s.Addr(), "", 0)
	defer c.Close()

	l := NewFixedWindowLimiter(c)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		if _, err := l.AllowFixedWindow(ctx, "k", 5, time.Minute); err != nil {
			t.Fatal(err)
		}
	}

	s.FastForward(2 * time.Minute)

	d, err := l.AllowFixedWindow(ctx, "k", 5, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Allowed || d.Count != 1 {
		t.Fatalf("expected fresh window, got %+v", d)
	}
}
