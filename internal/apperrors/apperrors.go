// Package apperrors defines the error taxonomy the handlers map onto HTTP
// responses: NotFound, Conflict, StoreFailure and ValidationFailure.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Kind tags an Error with its place in the taxonomy.
type Kind int

const (
	NotFound Kind = iota
	Conflict
	StoreFailure
	ValidationFailure
)

// Error is a tagged API error. Services produce these; handlers serialize
// them into the uniform {status, message} envelope.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus returns the status code for the error's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ValidationFailure:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// StatusWord returns the envelope status field: "fail" for client-side
// outcomes, "error" for store failures.
func (e *Error) StatusWord() string {
	if e.Kind == StoreFailure {
		return "error"
	}
	return "fail"
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a ValidationFailure error.
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: ValidationFailure, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a raw persistence error. The diagnostic text is kept in the
// message so a 500 response carries it.
func Store(err error) *Error {
	return &Error{Kind: StoreFailure, Message: err.Error()}
}

// Storef builds a StoreFailure with a formatted diagnostic message.
func Storef(format string, args ...interface{}) *Error {
	return &Error{Kind: StoreFailure, Message: fmt.Sprintf(format, args...)}
}

// From returns err as an *Error, wrapping anything untagged as a store
// failure.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Store(err)
}

// IsNotFound reports whether err is the gateway's row-absent signal.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey reports whether err is a uniqueness violation surfaced by
// the store. Postgres reports SQLSTATE 23505 ("duplicate key value violates
// unique constraint"), SQLite "UNIQUE constraint failed".
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
