package dbretry

import (
	"context"
	"iter"
	"reflect"
	"runtime"

	"go.opentelemetry.io/otel/trace"
)

// Retrier wraps a unit of work in a fresh top-level transactional scope at a
// chosen isolation level and retries it on the configured error kinds. Each
// attempt first collapses open scopes and configures the level of the next
// transaction.
type Retrier struct {
	policy   Policy
	scopes   IScopeFactory
	switcher *Switcher
}

// New creates a Retrier. session provides the nesting/commit/isolation
// capabilities and scopes produces one fresh top-level scope per attempt;
// both are typically the same object (e.g. *px.Session).
func New(session ISession, scopes IScopeFactory, opts ...Option) *Retrier {
	p := newPolicy(opts...)

	return &Retrier{
		policy:   p,
		scopes:   scopes,
		switcher: NewSwitcher(session, p.logger),
	}
}

// ReadCommitted runs f inside a READ COMMITTED transaction, retrying on the
// configured error kinds. Any open scopes are committed first.
func (r *Retrier) ReadCommitted(ctx context.Context, f func(ctx context.Context) error) error {
	return r.Do(ctx, ReadCommitted, f)
}

// RepeatableRead runs f inside a REPEATABLE READ transaction, retrying on
// the configured error kinds. Any open scopes are committed first.
func (r *Retrier) RepeatableRead(ctx context.Context, f func(ctx context.Context) error) error {
	return r.Do(ctx, RepeatableRead, f)
}

// Do runs f inside a fresh transaction at the given isolation level,
// retrying on the configured error kinds after the configured delay. The
// terminal error of an exhausted budget propagates unchanged. A
// *TransactionNestingError from the isolation switch surfaces immediately
// without consuming the budget.
func (r *Retrier) Do(ctx context.Context, level IsolationLevel, f func(ctx context.Context) error) error {
	callee := r.policy.name
	if callee == "" {
		callee = calleeName(f)
	}

	for attempt := range r.sequence(level).Attempts(ctx) {
		if err := attempt.Do(ctx, f); err != nil {
			if matchAny(r.policy.retryOn, err) {
				r.policy.logger.Errorf(ctx, "error in %s on attempt %d: %v; raising%s",
					callee, attempt.Ordinal(), err, traceSuffix(ctx))
			}
			return err
		}
		if attempt.Success() {
			return nil
		}

		r.policy.logger.Warningf(ctx, "error in %s on attempt %d: %v; retrying%s",
			callee, attempt.Ordinal(), attempt.Err(), traceSuffix(ctx))
	}

	// The sequence stopped early: the inter-attempt delay was interrupted.
	return ctx.Err()
}

// Attempts returns the generator form: a single-use iterator of attempts at
// the given level, for callers that bracket the block themselves via
// Attempt.Do (or Enter/Exit). Iteration must stop once an attempt succeeds.
func (r *Retrier) Attempts(ctx context.Context, level IsolationLevel) iter.Seq[*Attempt] {
	return r.sequence(level).Attempts(ctx)
}

func (r *Retrier) sequence(level IsolationLevel) *Sequence {
	setup := func(ctx context.Context) error {
		return r.switcher.SetIsolationLevel(ctx, level, r.policy.transactionsToClose)
	}

	return &Sequence{
		policy: r.policy,
		scopes: r.scopes,
		setup:  setup,
	}
}

// calleeName resolves the identity of the wrapped function for the retry trail.
func calleeName(f any) string {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "anonymous"
	}

	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return "anonymous"
	}

	return fn.Name()
}

// traceSuffix attaches the trace id when the context carries an active span.
func traceSuffix(ctx context.Context) string {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if !spanContext.TraceID().IsValid() {
		return ""
	}

	return " trace_id=" + spanContext.TraceID().String()
}
