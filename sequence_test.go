package dbretry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSequence_RetryableFailuresThenSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errConflict := errors.New("conflict")

	// Fails twice with a retryable error, then succeeds: exactly 3 attempts,
	// only the last reports success, none produced afterwards.
	seq := NewSequence(nil, nil,
		WithRetryOn(Kind(errConflict)),
		WithMaxAttempts(5),
		WithDelay(0),
	)

	calls := 0
	var ordinals []int
	for a := range seq.Attempts(ctx) {
		ordinals = append(ordinals, a.Ordinal())

		require.NoError(t, a.Do(ctx, func(context.Context) error {
			calls++
			if calls <= 2 {
				return errConflict
			}
			return nil
		}))
	}

	require.Equal(t, []int{1, 2, 3}, ordinals)
	require.Equal(t, 3, calls)
}

func TestSequence_BudgetExhaustion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errConflict := errors.New("conflict")

	// Always fails: exactly N attempts, and the Nth attempt's suppress set is
	// empty so the terminal error propagates unchanged.
	seq := NewSequence(nil, nil,
		WithRetryOn(Kind(errConflict)),
		WithMaxAttempts(3),
		WithDelay(0),
	)

	count := 0
	var lastErr error
	for a := range seq.Attempts(ctx) {
		count++
		lastErr = a.Do(ctx, func(context.Context) error { return errConflict })
		if lastErr != nil {
			break
		}
	}

	require.Equal(t, 3, count)
	require.Equal(t, errConflict, lastErr)
}

func TestSequence_SingleAttemptSuppressesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errConflict := errors.New("conflict")

	seq := NewSequence(nil, nil,
		WithRetryOn(Kind(errConflict)),
		WithMaxAttempts(1),
	)

	for a := range seq.Attempts(ctx) {
		err := a.Do(ctx, func(context.Context) error { return errConflict })
		require.Equal(t, errConflict, err)
	}
}

func TestSequence_NonRetryableAbortsImmediately(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errConflict := errors.New("conflict")
	errOther := errors.New("boom")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Exactly one scope is ever produced: attempt 2 is never created.
	scope := NewMockIScope(ctrl)
	scope.EXPECT().Enter(gomock.Any()).Return(nil)
	scope.EXPECT().Exit(gomock.Any(), errOther).Return(errOther)

	scopes := NewMockIScopeFactory(ctrl)
	scopes.EXPECT().Scope().Return(scope).Times(1)

	seq := NewSequence(scopes, nil,
		WithRetryOn(Kind(errConflict)),
		WithMaxAttempts(3),
		WithDelay(0),
	)

	count := 0
	for a := range seq.Attempts(ctx) {
		count++
		if err := a.Do(ctx, func(context.Context) error { return errOther }); err != nil {
			require.Equal(t, errOther, err)
			break
		}
	}

	require.Equal(t, 1, count)
}

func TestSequence_Lazy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scopes := NewMockIScopeFactory(ctrl)
	scopes.EXPECT().Scope().Times(0)

	setups := 0
	seq := NewSequence(scopes, func(context.Context) error {
		setups++
		return nil
	})

	// Obtaining the iterator without consuming it performs no setup calls,
	// no scope creation and no delays.
	_ = seq.Attempts(ctx)

	require.Zero(t, setups)
}

func TestSequence_NoDelayOnImmediateSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seq := NewSequence(nil, nil,
		WithMaxAttempts(5),
		WithDelay(500*time.Millisecond),
	)

	start := time.Now()
	for a := range seq.Attempts(ctx) {
		require.NoError(t, a.Do(ctx, func(context.Context) error { return nil }))
	}

	require.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestSequence_DelayBetweenAttempts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errConflict := errors.New("conflict")

	seq := NewSequence(nil, nil,
		WithRetryOn(Kind(errConflict)),
		WithMaxAttempts(2),
		WithDelay(30*time.Millisecond),
	)

	calls := 0
	start := time.Now()
	for a := range seq.Attempts(ctx) {
		require.NoError(t, a.Do(ctx, func(context.Context) error {
			calls++
			if calls == 1 {
				return errConflict
			}
			return nil
		}))
	}

	require.Equal(t, 2, calls)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSequence_NotRestartable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seq := NewSequence(nil, nil, WithMaxAttempts(1))

	for a := range seq.Attempts(ctx) {
		require.NoError(t, a.Do(ctx, func(context.Context) error { return nil }))
	}

	require.Panics(t, func() {
		for range seq.Attempts(ctx) { //nolint:revive // consuming for the panic
		}
	})
}

func TestSequence_ContextCancelDuringDelay(t *testing.T) {
	t.Parallel()

	errConflict := errors.New("conflict")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seq := NewSequence(nil, nil,
		WithRetryOn(Kind(errConflict)),
		WithMaxAttempts(3),
		WithDelay(10*time.Second),
	)

	count := 0
	for a := range seq.Attempts(ctx) {
		count++
		require.NoError(t, a.Do(ctx, func(context.Context) error { return errConflict }))
		cancel() // interrupt the inter-attempt delay
	}

	require.Equal(t, 1, count)
}
