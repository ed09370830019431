package dbretry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var errUniqueViolation = errors.New("unique violation")

// memStore is a shared table with a uniqueness constraint on the key.
// Writes become visible only at commit, like READ COMMITTED.
type memStore struct {
	mu   sync.Mutex
	rows map[string]struct{}
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]struct{})}
}

func (s *memStore) exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.rows[key]
	return ok
}

func (s *memStore) commit(keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		if _, ok := s.rows[k]; ok {
			return errUniqueViolation
		}
	}
	for _, k := range keys {
		s.rows[k] = struct{}{}
	}

	return nil
}

// memSession is one caller's connection to the store.
type memSession struct {
	store   *memStore
	depth   int
	level   IsolationLevel
	pending []string
}

func newMemSession(store *memStore) *memSession {
	return &memSession{store: store}
}

func (s *memSession) insert(key string) {
	s.pending = append(s.pending, key)
}

func (s *memSession) CurrentNestingDepth() int { return s.depth }

func (s *memSession) SupportsIsolationSwitch() bool { return true }

func (s *memSession) SetIsolationLevel(_ context.Context, level IsolationLevel) error {
	s.level = level
	return nil
}

func (s *memSession) Commit(_ context.Context) error {
	err := s.store.commit(s.pending)
	s.pending = nil
	s.depth = 0
	return err
}

func (s *memSession) Scope() IScope { return &memScope{session: s} }

type memScope struct {
	session *memSession
}

func (m *memScope) Enter(context.Context) error {
	m.session.depth++
	return nil
}

func (m *memScope) Exit(ctx context.Context, err error) error {
	s := m.session

	if err != nil {
		s.pending = nil
		s.depth = 0
		return err
	}
	if s.depth > 1 {
		s.depth--
		return nil
	}

	return s.Commit(ctx)
}

// TestGetOrCreateRace drives two independent sessions racing to get-or-create
// the same row under a uniqueness constraint at READ COMMITTED. The session
// committing first creates the row; the loser's commit conflicts, is
// suppressed, and the retry observes the existing row with no error surfaced.
func TestGetOrCreateRace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	const key = "alice@example.com"

	store := newMemStore()
	sessA := newMemSession(store)
	sessB := newMemSession(store)

	newRetrier := func(s *memSession) *Retrier {
		return New(s, s,
			WithRetryOn(Kind(errUniqueViolation)),
			WithMaxAttempts(2),
			WithDelay(time.Millisecond),
		)
	}

	var (
		bRead = make(chan struct{})
		aDone = make(chan struct{})

		createdA, createdB bool
		callsA, callsB     int
	)

	var g errgroup.Group

	g.Go(func() error {
		// A starts only after B has read and decided to insert.
		<-bRead
		defer close(aDone)

		return newRetrier(sessA).ReadCommitted(ctx, func(context.Context) error {
			callsA++
			if store.exists(key) {
				return nil
			}
			sessA.insert(key)
			createdA = true
			return nil
		})
	})

	g.Go(func() error {
		var once sync.Once

		return newRetrier(sessB).ReadCommitted(ctx, func(context.Context) error {
			callsB++
			if store.exists(key) {
				createdB = false
				return nil
			}

			// First pass: let A commit between our read and our commit so the
			// uniqueness conflict surfaces at commit time.
			once.Do(func() {
				close(bRead)
				<-aDone
			})

			sessB.insert(key)
			createdB = true
			return nil
		})
	})

	require.NoError(t, g.Wait())

	require.True(t, createdA)
	require.False(t, createdB)
	require.Equal(t, 1, callsA)
	require.Equal(t, 2, callsB)
	require.True(t, store.exists(key))
	require.Equal(t, ReadCommitted, sessA.level)
	require.Equal(t, ReadCommitted, sessB.level)
}
