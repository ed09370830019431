package dbretry

//go:generate mockgen -source interface.go -destination interface_mock.go -package dbretry

import "context"

// IScope is a single transactional scope with explicit begin and
// commit-or-rollback boundaries. Exit receives the error raised by the
// wrapped block (nil on clean exit) and returns the error that survives the
// scope: the block error itself, or an error raised by commit/rollback.
// Classification against retryable kinds is the Attempt's job, not the
// scope's.
type IScope interface {
	Enter(ctx context.Context) error
	Exit(ctx context.Context, err error) error
}

// IScopeFactory produces fresh top-level scopes, one per attempt.
type IScopeFactory interface {
	Scope() IScope
}

// ISession is the capability consumed from the storage collaborator.
// A session owns a single logical connection and must not be shared across
// concurrent callers.
type ISession interface {
	// CurrentNestingDepth returns the count of currently open, uncommitted scopes.
	CurrentNestingDepth() int
	// Commit commits the open transaction. On backends without true nested
	// transactions one commit collapses all virtual nesting.
	Commit(ctx context.Context) error
	// SetIsolationLevel configures the isolation level of the next
	// transaction opened on the session.
	SetIsolationLevel(ctx context.Context, level IsolationLevel) error
	// SupportsIsolationSwitch reports whether the backend supports
	// per-transaction isolation level configuration.
	SupportsIsolationSwitch() bool
}
