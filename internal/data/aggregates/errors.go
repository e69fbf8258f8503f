package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/openshelf/catalog-backend/internal/domain/catalog"
)

var (
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("catalog validation")
	// ErrConflict indicates a concurrency conflict on a row another writer owns.
	ErrConflict = errors.New("catalog conflict")
	// ErrDuplicate indicates a same-scope naming collision.
	ErrDuplicate = errors.New("catalog duplicate")
)

// ValidationError tags an error as validation failure.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// ConflictError tags an error as conflict failure.
func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// DuplicateError tags an error as a naming collision.
func DuplicateError(msg string) error {
	return errors.Join(ErrDuplicate, errors.New(strings.TrimSpace(msg)))
}

// MapError translates storage-engine failures into catalog error codes.
// Already-typed *catalog.Error values pass through unchanged, so translating
// twice is safe. Constraint violations surface as validation failures: the
// row locks taken by the aggregates mean a constraint firing at commit is a
// caller-input problem (dangling reference, duplicate key), not a crash.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*catalog.Error); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrValidation):
		return catalog.Wrap(catalog.CodeValidation, op, err)
	case errors.Is(err, ErrConflict):
		return catalog.Wrap(catalog.CodeConflict, op, err)
	case errors.Is(err, ErrDuplicate):
		return catalog.Wrap(catalog.CodeDuplicate, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return catalog.Wrap(catalog.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return catalog.Wrap(catalog.CodeInternal, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch code {
		case "23505":
			return catalog.Wrap(catalog.CodeValidation, op, err) // unique_violation
		case "23503":
			return catalog.Wrap(catalog.CodeValidation, op, err) // foreign_key_violation
		case "40001", "40P01", "55P03":
			return catalog.Wrap(catalog.CodeConflict, op, err) // serialization/deadlock/lock_not_available
		}
		if strings.HasPrefix(code, "23") {
			return catalog.Wrap(catalog.CodeValidation, op, err) // remaining integrity_constraint_violation class
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "violates foreign key"):
		return catalog.Wrap(catalog.CodeValidation, op, err)
	case strings.Contains(msg, "deadlock"), strings.Contains(msg, "serialization"):
		return catalog.Wrap(catalog.CodeConflict, op, err)
	default:
		return catalog.Wrap(catalog.CodeInternal, op, err)
	}
}
