package infra

import (
	"errors"
	"log/slog"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

const (
	pgErrUniqueViolation    = "23505"
	pgErrForeignKeyViolated = "23503"
	pgErrExclusionViolation = "23P01"
)

// WrapRepoErr wraps err with msg. The kind is taken from kinds when given and
// otherwise classified from the Postgres error code.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if kind == KindDBFailure {
		slog.Error("Repository error: "+msg,
			slog.String("kind", string(kind)),
			slog.Any("error", err))
	} else {
		slog.Debug("Repository error: "+msg, slog.String("kind", string(kind)))
	}

	wrapped := errs.Wrap(err, msg)
	switch kind {
	case KindNotFound:
		wrapped = errs.Mark(wrapped, errs.ErrNotFound)
	case KindConflict, KindDuplicateKey:
		wrapped = errs.Mark(wrapped, errs.ErrConflict)
	}

	return RepositoryError{Kind: kind, msg: msg, err: wrapped}
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return KindDuplicateKey
		case pgErrForeignKeyViolated:
			return KindForeignKeyViolated
		case pgErrExclusionViolation:
			return KindConflict
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
