package dbretry

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrorMatcher reports whether an error belongs to a retryable kind.
type ErrorMatcher func(err error) bool

// Kind returns a matcher for errors matching target via errors.Is.
func Kind(target error) ErrorMatcher {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// TransactionNestingError is returned when more scopes are open than the
// caller declared closable. It signals a call-site contract violation and is
// never retried.
type TransactionNestingError struct {
	Depth    int
	MaxClose int
}

func (e *TransactionNestingError) Error() string {
	return fmt.Sprintf("cannot switch isolation level: %d open transactions, at most %d may be closed",
		e.Depth, e.MaxClose)
}

// matchAny reports whether err matches at least one of the matchers.
func matchAny(matchers []ErrorMatcher, err error) bool {
	if err == nil {
		return false
	}

	return lo.SomeBy(matchers, func(m ErrorMatcher) bool { return m(err) })
}
