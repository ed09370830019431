package dbretry

import "context"

// Attempt is one trial of a unit of work inside a transactional scope.
// An Attempt is created per iteration of a Sequence, mutated only by its own
// Enter/Exit, and discarded after Exit completes.
type Attempt struct {
	ordinal  int
	suppress []ErrorMatcher
	setup    func(ctx context.Context) error
	scope    IScope

	success bool
	err     error
}

func newAttempt(ordinal int, suppress []ErrorMatcher, setup func(ctx context.Context) error, scope IScope) *Attempt {
	return &Attempt{
		ordinal:  ordinal,
		suppress: suppress,
		setup:    setup,
		scope:    scope,
	}
}

// Ordinal returns the 1-based attempt number within its sequence.
func (a *Attempt) Ordinal() int {
	return a.ordinal
}

// Success reports whether the attempt finished without any error.
// Valid after Exit.
func (a *Attempt) Success() bool {
	return a.success
}

// Err returns the error observed by Exit, even when it was suppressed.
// Valid after Exit.
func (a *Attempt) Err() error {
	return a.err
}

// Enter runs the setup callback and enters the wrapped scope. An error
// raised here is never suppressed.
func (a *Attempt) Enter(ctx context.Context) error {
	if a.setup != nil {
		if err := a.setup(ctx); err != nil {
			return err
		}
	}

	if a.scope != nil {
		if err := a.scope.Enter(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Exit forwards the block error to the wrapped scope and classifies the
// surviving error against the suppress set. The scope's own exit can raise
// (e.g. a commit-time conflict); that error undergoes the same test. A
// suppressed error is swallowed and reported via the first return value;
// anything else propagates unchanged. success is set only when no error
// occurred at any stage.
func (a *Attempt) Exit(ctx context.Context, err error) (suppressed bool, _ error) {
	if a.scope != nil {
		err = a.scope.Exit(ctx, err)
	}
	a.err = err

	if err == nil {
		a.success = true
		return false, nil
	}

	if matchAny(a.suppress, err) {
		return true, nil
	}

	return false, err
}

// Do brackets block between Enter and Exit. It returns nil both on success
// and when the error was suppressed; consult Success to tell them apart.
func (a *Attempt) Do(ctx context.Context, block func(ctx context.Context) error) error {
	if err := a.Enter(ctx); err != nil {
		return err
	}

	_, err := a.Exit(ctx, block(ctx))
	return err
}
