package retry

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/holo-host/holo-auth/interfaces"
)

// DefaultBase is the wait after the first failure of a phase.
const DefaultBase = time.Second

// Operation is a single attempt.
type Operation[T any] func(ctx context.Context) (T, error)

// Policy configures Do.
type Policy struct {
	// Name identifies the retried operation in logs
	Name string

	// Base is the first wait, doubled after every failure. DefaultBase if zero.
	Base time.Duration

	// Permanent reports errors that must not be retried. Nil retries everything.
	Permanent func(error) bool

	Log *slog.Logger

	// Timer replaces the wall clock timer, used by tests
	Timer backoff.Timer
}

// NewBackOff returns an uncapped, unjittered doubling backoff starting at base.
func NewBackOff(base time.Duration) *backoff.ExponentialBackOff {
	if base <= 0 {
		base = DefaultBase
	}
	b := &backoff.ExponentialBackOff{
		InitialInterval:     base,
		RandomizationFactor: 0,
		Multiplier:          2,
		// Saturates instead of overflowing after ~63 doublings
		MaxInterval:    time.Duration(math.MaxInt64),
		MaxElapsedTime: 0,
		Stop:           backoff.Stop,
		Clock:          backoff.SystemClock,
	}
	b.Reset()
	return b
}

// Do calls op until it returns a nil error, the context is done, or Permanent
// matches the error. Each call of Do starts its backoff from Base.
func Do[T any](ctx context.Context, p Policy, op Operation[T]) (T, error) {
	log := p.Log
	if log == nil {
		log = slog.Default()
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		res, err := op(ctx)
		if err != nil && p.Permanent != nil && p.Permanent(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	notify := func(err error, next time.Duration) {
		log.Error("attempt failed",
			"op", p.Name,
			"attempt", attempt,
			"kind", interfaces.FailureKind(err),
			"err", err,
			"retry_in", next,
		)
	}

	b := backoff.WithContext(NewBackOff(p.Base), ctx)
	res, err := backoff.RetryNotifyWithTimerAndData(operation, b, notify, p.Timer)
	if err != nil {
		return res, err
	}

	if attempt > 1 {
		log.Info("attempt succeeded after retries", "op", p.Name, "attempts", attempt)
	}
	return res, nil
}
