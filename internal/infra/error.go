package infra

import (
	"fmt"
	"log/slog"

	"cellar-market/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict     RepositoryErrorKind = "CONFLICT"
)

// RepositoryError tags a storage failure with its kind, so callers can
// branch on it without looking at driver errors.
type RepositoryError struct {
	Kind  RepositoryErrorKind
	Op    string
	Cause error
}

func (e *RepositoryError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Cause)
}

func (e *RepositoryError) Unwrap() error { return e.Cause }

// WrapRepoErr builds a RepositoryError of the given kind, KindDBFailure when
// omitted. DB failures are logged here once; the other kinds are ordinary
// outcomes such as a sold-out listing.
func WrapRepoErr(op string, cause error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if k == KindDBFailure {
		attrs := []any{slog.String("op", op)}
		if cause != nil {
			attrs = append(attrs, slog.String("error", cause.Error()))
		}
		slog.Error("repository failure", attrs...)
	}
	if cause != nil {
		cause = errs.Wrap(cause, op)
	}
	re := &RepositoryError{Kind: k, Op: op, Cause: cause}
	if k == KindDBFailure {
		return errs.Mark(re, errs.ErrDatabaseOperationFailed)
	}
	return re
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var re *RepositoryError
	return errs.As(err, &re) && re.Kind == kind
}
