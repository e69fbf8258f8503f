package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes catalog failure semantics across write paths.
type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeNotFound   ErrorCode = "not_found"
	CodeConflict   ErrorCode = "conflict"
	CodeDuplicate  ErrorCode = "duplicate"
	CodeExhausted  ErrorCode = "exhausted"
	CodeInternal   ErrorCode = "internal"
)

// Error is the canonical catalog error wrapper. Callers never see raw
// storage-engine error shapes; everything is translated into one of these.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a catalog error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with catalog error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or wrapped err) carries the given catalog code.
func IsCode(err error, code ErrorCode) bool {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return false
	}
	return cerr.Code == code
}

// CodeOf extracts the catalog error code when available.
func CodeOf(err error) ErrorCode {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return ""
	}
	return cerr.Code
}
