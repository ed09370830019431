package dbretry

import (
	"context"
	"iter"

	"github.com/cenkalti/backoff/v5"
)

// Sequence produces a lazy, bounded series of attempts: at most MaxAttempts,
// every attempt except the last configured to suppress the retryable kinds,
// the last one suppressing nothing so the terminal error always propagates
// to the caller.
//
// A Sequence is single-use. Iterating it again, or past a successful
// attempt, is a usage error.
type Sequence struct {
	policy Policy
	scopes IScopeFactory
	setup  func(ctx context.Context) error

	started bool
}

// NewSequence creates a Sequence. scopes may be nil when the block manages
// its own transaction boundaries; setup may be nil when no per-attempt
// preparation is needed.
func NewSequence(scopes IScopeFactory, setup func(ctx context.Context) error, opts ...Option) *Sequence {
	return &Sequence{
		policy: newPolicy(opts...),
		scopes: scopes,
		setup:  setup,
	}
}

// Attempts returns a single-use iterator over the attempts. Nothing happens
// until the first attempt is consumed. Between two consecutive attempts the
// sequence blocks for the configured delay; the delay is skipped when no
// further attempt will be produced. Iteration stops at the first successful
// attempt, on context cancellation during the delay, or when the budget is
// exhausted.
func (s *Sequence) Attempts(ctx context.Context) iter.Seq[*Attempt] {
	return func(yield func(*Attempt) bool) {
		if s.started {
			panic("dbretry: sequence is not restartable")
		}
		s.started = true

		delays := s.policy.newBackOff()

		for ordinal := 1; ordinal <= s.policy.maxAttempts; ordinal++ {
			suppress := s.policy.retryOn
			if ordinal == s.policy.maxAttempts {
				// The last attempt must let its error propagate.
				suppress = nil
			}

			var scope IScope
			if s.scopes != nil {
				scope = s.scopes.Scope()
			}

			attempt := newAttempt(ordinal, suppress, s.setup, scope)
			if !yield(attempt) {
				return
			}
			if attempt.success {
				return
			}

			if ordinal < s.policy.maxAttempts {
				if err := s.sleep(ctx, delays); err != nil {
					return
				}
			}
		}
	}
}

func (s *Sequence) sleep(ctx context.Context, delays backoff.BackOff) error {
	d := delays.NextBackOff()
	if d == backoff.Stop || d <= 0 {
		return nil
	}

	timer := s.policy.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
