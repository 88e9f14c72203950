// Package retry re-runs local database writes that SQLite rejected because
// another sndprefs process held the lock.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Predicate reports whether a failed attempt may succeed if run again.
type Predicate func(error) bool

// Policy bounds how often and how long a write is retried.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// Initial is the backoff ceiling after the first failure. It doubles on
	// every later failure.
	Initial time.Duration
	// Ceiling caps the backoff. Zero means no cap.
	Ceiling time.Duration
}

// DefaultPolicy suits a lock held by a short preference write elsewhere:
// four tries spread over well under a second.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: 4,
		Initial:  50 * time.Millisecond,
		Ceiling:  time.Second,
	}
}

// Do runs op until it succeeds, fails with an error transient rejects, or the
// policy's attempts run out. The last error is returned. A nil transient
// runs op exactly once. Cancelling ctx stops waiting between attempts.
func Do(ctx context.Context, p Policy, transient Predicate, op func() error) error {
	attempts := max(p.Attempts, 1)
	if transient == nil {
		attempts = 1
	}

	var err error
	for n := 1; ; n++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err = op(); err == nil || n >= attempts || !transient(err) {
			return err
		}
		if !wait(ctx, p.backoff(n)) {
			return ctx.Err()
		}
	}
}

// backoff returns a random pause in [0, min(Initial*2^(n-1), Ceiling)] after
// the nth failure, so processes contending for the same database lock do
// not wake in step.
func (p Policy) backoff(n int) time.Duration {
	if p.Initial <= 0 {
		return 0
	}
	limit := p.Initial << max(n-1, 0)
	if limit <= 0 || (p.Ceiling > 0 && limit > p.Ceiling) {
		limit = p.Ceiling
	}
	if limit <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(limit) + 1))
}

// wait pauses for d, returning false if ctx ends first.
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
