// Package dbretry executes a unit of transactional work at a chosen
// isolation level and retries it when the attempt fails with a transient
// consistency conflict. An isolation-level change is never issued while a
// transaction is mid-flight: open scopes are committed first, and the switch
// refuses to proceed when more scopes are open than the caller declared
// closable.
package dbretry

import (
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/coder/quartz"
)

// Defaults for the retry budget.
const (
	DefaultDelay       = 100 * time.Millisecond
	DefaultMaxAttempts = 3
)

// Policy is the retry budget for one Retrier or Sequence. It is built once
// from options and never mutated afterwards.
type Policy struct {
	retryOn             []ErrorMatcher
	delay               time.Duration
	maxAttempts         int
	transactionsToClose int

	newBackOff func() backoff.BackOff
	clock      quartz.Clock
	logger     ILogger
	name       string
}

// Option configures a Policy.
type Option func(*Policy)

// WithRetryOn adds error kinds that are safe to retry.
func WithRetryOn(matchers ...ErrorMatcher) Option {
	return func(p *Policy) {
		p.retryOn = append(p.retryOn, matchers...)
	}
}

// WithDelay sets the pause between consecutive attempts.
func WithDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.delay = d
	}
}

// WithMaxAttempts sets the attempt budget. Values below 1 are clamped to 1.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		p.maxAttempts = n
	}
}

// WithTransactionsToClose declares how many open scopes the isolation switch
// may commit before changing the level.
func WithTransactionsToClose(n int) Option {
	return func(p *Policy) {
		p.transactionsToClose = n
	}
}

// WithBackOff replaces the constant inter-attempt delay with a custom
// strategy. The factory is invoked once per sequence because sequences are
// not restartable. The strategy shapes pauses only; the attempt bound always
// comes from MaxAttempts.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(p *Policy) {
		p.newBackOff = newBackOff
	}
}

// WithClock injects the clock used for inter-attempt delays.
func WithClock(clock quartz.Clock) Option {
	return func(p *Policy) {
		p.clock = clock
	}
}

// WithLogger sets the retry-trail logger.
func WithLogger(logger ILogger) Option {
	return func(p *Policy) {
		p.logger = logger
	}
}

// WithName overrides the callee identity used in the retry trail. By default
// it is derived from the wrapped function.
func WithName(name string) Option {
	return func(p *Policy) {
		p.name = name
	}
}

func newPolicy(opts ...Option) Policy {
	p := Policy{
		delay:       DefaultDelay,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, o := range opts {
		o(&p)
	}

	if p.maxAttempts < 1 {
		p.maxAttempts = 1
	}
	if p.delay < 0 {
		p.delay = 0
	}
	if p.clock == nil {
		p.clock = quartz.NewReal()
	}
	if p.logger == nil {
		p.logger = nopLogger{}
	}
	if p.newBackOff == nil {
		d := p.delay
		p.newBackOff = func() backoff.BackOff {
			return backoff.NewConstantBackOff(d)
		}
	}

	return p
}
