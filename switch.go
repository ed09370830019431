package dbretry

import "context"

// IsolationLevel is a transaction's concurrency-visibility mode. It applies
// to the next transaction opened on the session.
type IsolationLevel int

// Isolation levels supported by the switch protocol.
const (
	ReadCommitted IsolationLevel = iota + 1
	RepeatableRead
)

func (l IsolationLevel) String() string {
	switch l {
	case ReadCommitted:
		return "READ COMMITTED"
	case RepeatableRead:
		return "REPEATABLE READ"
	default:
		return "UNKNOWN"
	}
}

// Switcher changes the session isolation level. The level cannot be changed
// while a transaction is in progress, so open scopes are committed first,
// but only as many as the caller declared closable.
type Switcher struct {
	session ISession
	logger  ILogger
}

// NewSwitcher creates a Switcher. logger may be nil.
func NewSwitcher(session ISession, logger ILogger) *Switcher {
	if logger == nil {
		logger = nopLogger{}
	}

	return &Switcher{
		session: session,
		logger:  logger,
	}
}

// CommitOpenScopes commits the session's open scopes. If more than maxClose
// scopes are open it returns *TransactionNestingError and commits nothing.
func (s *Switcher) CommitOpenScopes(ctx context.Context, maxClose int) error {
	depth := s.session.CurrentNestingDepth()
	if depth > maxClose {
		return &TransactionNestingError{Depth: depth, MaxClose: maxClose}
	}

	// Backends without true nested transactions collapse all nesting with a
	// single commit.
	for s.session.CurrentNestingDepth() > 0 {
		if err := s.session.Commit(ctx); err != nil {
			return err
		}
	}

	return nil
}

// SetIsolationLevel commits open scopes and configures the isolation level
// of the next transaction. On backends without per-transaction isolation
// switching the change is skipped with a warning.
func (s *Switcher) SetIsolationLevel(ctx context.Context, level IsolationLevel, maxClose int) error {
	if err := s.CommitOpenScopes(ctx, maxClose); err != nil {
		return err
	}

	if !s.session.SupportsIsolationSwitch() {
		s.logger.Warningf(ctx, "backend unable to change transaction isolation level to %s", level)
		return nil
	}

	return s.session.SetIsolationLevel(ctx, level)
}
