// Package px implements the pgx-backed session for dbretry: transactional
// scopes with virtual nesting and per-transaction isolation level switching.
package px

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/symbolist/dbretry"
)

// Session owns a single logical connection and tracks its open transactional
// scopes. The outermost scope opens a real transaction; deeper scopes only
// increment the nesting counter, because the backend supports at most one
// active transaction per session.
//
// A Session must not be shared across concurrent callers.
type Session struct {
	conn    ITransactionBeginner
	enabled bool

	depth   int
	tx      pgx.Tx
	pending dbretry.IsolationLevel
}

var (
	_ dbretry.ISession      = (*Session)(nil)
	_ dbretry.IScopeFactory = (*Session)(nil)
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTransactionsDisabled turns every scope into a no-op. Useful in tests
// that manage transactions themselves.
func WithTransactionsDisabled() SessionOption {
	return func(s *Session) {
		s.enabled = false
	}
}

// NewSession creates a Session on top of conn.
func NewSession(conn ITransactionBeginner, opts ...SessionOption) *Session {
	s := &Session{
		conn:    conn,
		enabled: true,
	}
	for _, o := range opts {
		o(s)
	}

	return s
}

// CurrentNestingDepth returns the count of currently open, uncommitted scopes.
func (s *Session) CurrentNestingDepth() int {
	return s.depth
}

// SupportsIsolationSwitch reports whether the backend supports
// per-transaction isolation level configuration. Always true for PostgreSQL.
func (s *Session) SupportsIsolationSwitch() bool {
	return true
}

// SetIsolationLevel configures the isolation level of the next transaction
// opened on the session. The level cannot be changed while a transaction is
// in progress.
func (s *Session) SetIsolationLevel(_ context.Context, level dbretry.IsolationLevel) error {
	if s.depth > 0 {
		return fmt.Errorf("cannot switch isolation level: transaction in progress (depth %d)", s.depth)
	}

	s.pending = level
	return nil
}

// Commit commits the open transaction. PostgreSQL has no true nested
// transactions here, so one commit collapses all virtual nesting.
func (s *Session) Commit(ctx context.Context) error {
	if s.tx == nil {
		s.depth = 0
		return nil
	}

	err := s.tx.Commit(ctx)
	s.tx = nil
	s.depth = 0
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Tx returns the transaction opened by the outermost scope, or nil when no
// transaction is in progress. Use it to run queries inside the scope.
func (s *Session) Tx() pgx.Tx {
	return s.tx
}

// Scope returns a transactional scope bound to the session.
func (s *Session) Scope() dbretry.IScope {
	return &txScope{session: s}
}

func (s *Session) enter(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	if s.depth > 0 {
		s.depth++
		return nil
	}

	//nolint:exhaustruct // external type, only set necessary fields
	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgxLevel(s.pending),
	})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	s.tx = tx
	s.depth = 1

	return nil
}

func (s *Session) exit(ctx context.Context, err error) error {
	if !s.enabled {
		return err
	}

	if err != nil {
		if rbErr := s.rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr) //nolint:errorlint // ok for 2 errors
		}
		return err
	}

	if s.depth > 1 {
		s.depth--
		return nil
	}

	return s.Commit(ctx)
}

// rollback aborts the open transaction, collapsing all virtual nesting.
func (s *Session) rollback(ctx context.Context) error {
	if s.tx == nil {
		s.depth = 0
		return nil
	}

	err := s.tx.Rollback(ctx)
	s.tx = nil
	s.depth = 0
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}

	return nil
}

// txScope adapts a Session to dbretry.IScope.
type txScope struct {
	session *Session
}

func (t *txScope) Enter(ctx context.Context) error {
	return t.session.enter(ctx)
}

func (t *txScope) Exit(ctx context.Context, err error) error {
	return t.session.exit(ctx, err)
}

// pgxLevel maps the isolation level to pgx.
func pgxLevel(level dbretry.IsolationLevel) pgx.TxIsoLevel {
	switch level {
	case dbretry.RepeatableRead:
		return pgx.RepeatableRead
	case dbretry.ReadCommitted:
		return pgx.ReadCommitted
	default:
		return pgx.ReadCommitted
	}
}
