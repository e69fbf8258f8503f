package aggregates

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/openshelf/catalog-backend/internal/domain/catalog"
)

func TestMapErrorNil(t *testing.T) {
	if got := MapError("op", nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMapErrorPassThroughTyped(t *testing.T) {
	orig := catalog.NewError(catalog.CodeNotFound, "Catalog.Linkage.Match", "product not found", nil)
	got := MapError("other.op", orig)
	if got != orig {
		t.Fatalf("typed error should pass through unchanged, got %v", got)
	}
	// Translating twice must not change the code.
	if !catalog.IsCode(MapError("third.op", got), catalog.CodeNotFound) {
		t.Fatalf("double translation changed the code: %v", got)
	}
}

func TestMapErrorSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want catalog.ErrorCode
	}{
		{ValidationError("bad input"), catalog.CodeValidation},
		{ConflictError("row changed"), catalog.CodeConflict},
		{DuplicateError("name taken"), catalog.CodeDuplicate},
	}
	for _, tc := range cases {
		got := MapError("op", tc.err)
		if !catalog.IsCode(got, tc.want) {
			t.Fatalf("want code %q, got %v", tc.want, got)
		}
	}
}

func TestMapErrorRecordNotFound(t *testing.T) {
	got := MapError("op", gorm.ErrRecordNotFound)
	if !catalog.IsCode(got, catalog.CodeNotFound) {
		t.Fatalf("want not_found, got %v", got)
	}
}

func TestMapErrorConstraintViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	if got := MapError("op", unique); !catalog.IsCode(got, catalog.CodeValidation) {
		t.Fatalf("unique violation should map to validation, got %v", got)
	}
	fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	if got := MapError("op", fk); !catalog.IsCode(got, catalog.CodeValidation) {
		t.Fatalf("fk violation should map to validation, got %v", got)
	}
	check := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
	if got := MapError("op", check); !catalog.IsCode(got, catalog.CodeValidation) {
		t.Fatalf("check violation should map to validation, got %v", got)
	}
}

func TestMapErrorConcurrencyFailures(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03"} {
		err := &pgconn.PgError{Code: code}
		if got := MapError("op", err); !catalog.IsCode(got, catalog.CodeConflict) {
			t.Fatalf("sqlstate %s should map to conflict, got %v", code, got)
		}
	}
}

func TestMapErrorContextAndFallback(t *testing.T) {
	if got := MapError("op", context.Canceled); !catalog.IsCode(got, catalog.CodeInternal) {
		t.Fatalf("context.Canceled should map to internal, got %v", got)
	}
	if got := MapError("op", context.DeadlineExceeded); !catalog.IsCode(got, catalog.CodeInternal) {
		t.Fatalf("DeadlineExceeded should map to internal, got %v", got)
	}
	if got := MapError("op", errors.New("connection refused")); !catalog.IsCode(got, catalog.CodeInternal) {
		t.Fatalf("unknown error should map to internal, got %v", got)
	}
}

func TestMapErrorStringSniff(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "idx_supplier_item_sku"`)
	if got := MapError("op", err); !catalog.IsCode(got, catalog.CodeValidation) {
		t.Fatalf("duplicate-key text should map to validation, got %v", got)
	}
	if got := MapError("op", errors.New("deadlock detected")); !catalog.IsCode(got, catalog.CodeConflict) {
		t.Fatalf("deadlock text should map to conflict, got %v", got)
	}
}

func TestWriteErrorStatus(t *testing.T) {
	if got := writeErrorStatus(nil); got != "success" {
		t.Fatalf("nil status: %q", got)
	}
	err := catalog.NewError(catalog.CodeDuplicate, "op", "dup", nil)
	if got := writeErrorStatus(err); got != "duplicate" {
		t.Fatalf("duplicate status: %q", got)
	}
	if got := writeErrorStatus(errors.New("raw")); got != "failure" {
		t.Fatalf("untyped status: %q", got)
	}
}
