package px

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PooledSession is a Session bound to a connection checked out of a pool.
type PooledSession struct {
	*Session

	conn *pgxpool.Conn
}

// AcquireSession checks a connection out of the pool and wraps it in a
// Session. Each concurrent caller must acquire its own session.
func AcquireSession(ctx context.Context, pool *pgxpool.Pool, opts ...SessionOption) (*PooledSession, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	return &PooledSession{
		Session: NewSession(conn, opts...),
		conn:    conn,
	}, nil
}

// Release returns the connection to the pool. Any open transaction must be
// finished first.
func (p *PooledSession) Release() {
	p.conn.Release()
}
