package px

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/symbolist/dbretry"
)

// Helpers for classifying Postgres errors into retryable conflict kinds.
// https://www.postgresql.org/docs/16/errcodes-appendix.html

// Retryable matches transient consistency conflicts safe to retry without
// external intervention. Pass it to dbretry.WithRetryOn.
var Retryable = dbretry.ErrorMatcher(IsRetryableConflict)

// IsRetryableConflict checks if the error is transient contention: a unique
// constraint violation, a serialization failure or a deadlock.
func IsRetryableConflict(err error) bool {
	return IsUniqueViolation(err) || IsSerializationFailure(err) || IsDeadlockDetected(err)
}

// IsUniqueViolation checks if the error is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return true
		}
	}
	return false
}

// IsSerializationFailure checks if the error is a serialization failure
// (e.g. a REPEATABLE READ transaction lost a concurrent update race).
func IsSerializationFailure(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		if pgErr.Code == pgerrcode.SerializationFailure {
			return true
		}
	}
	return false
}

// IsDeadlockDetected checks if the error is a deadlock.
func IsDeadlockDetected(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		if pgErr.Code == pgerrcode.DeadlockDetected {
			return true
		}
	}
	return false
}

func toPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
