package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errLocked = errors.New("database is locked")

func isLocked(err error) bool { return errors.Is(err, errLocked) }

func TestDo_RetriesWhileLocked(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Policy{Attempts: 3}, isLocked, func() error {
		attempts++
		return errLocked
	})

	if !errors.Is(err, errLocked) {
		t.Fatalf("expected lock error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_StopsOnOtherErrors(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Policy{Attempts: 3}, isLocked, func() error {
		attempts++
		return errors.New("UNIQUE constraint failed")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_NilPredicateRunsOnce(t *testing.T) {
	attempts := 0
	_ = Do(context.Background(), Policy{Attempts: 5}, nil, func() error {
		attempts++
		return errLocked
	})

	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	attempts := 0
	_ = Do(context.Background(), Policy{}, isLocked, func() error {
		attempts++
		return errLocked
	})

	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_SucceedsOnceLockReleased(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Policy{Attempts: 3, Initial: time.Millisecond}, isLocked, func() error {
		attempts++
		if attempts == 1 {
			return errLocked
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, Policy{Attempts: 3}, isLocked, func() error {
		attempts++
		return errLocked
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Fatalf("expected 0 attempts, got %d", attempts)
	}
}

func TestBackoff(t *testing.T) {
	if d := (Policy{Ceiling: time.Second}).backoff(1); d != 0 {
		t.Fatalf("expected zero backoff without Initial, got %v", d)
	}

	p := Policy{Initial: 100 * time.Millisecond, Ceiling: 150 * time.Millisecond}
	for range 20 {
		if d := p.backoff(5); d < 0 || d > p.Ceiling {
			t.Fatalf("backoff %v outside [0, %v]", d, p.Ceiling)
		}
	}

	huge := Policy{Initial: time.Hour, Ceiling: 2 * time.Hour}
	if d := huge.backoff(80); d < 0 || d > huge.Ceiling {
		t.Fatalf("backoff %v outside [0, %v] after shift overflow", d, huge.Ceiling)
	}
}
