// Package apperr is the error signal shared by services and handlers.
//
// Services raise an *Error only for expected conditions (a keyed row that does
// not exist). Every other failure travels as a plain error and is normalized
// by a Translator at the HTTP boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	Internal Kind = iota
	NotFound
	Conflict
	Invalid
)

// Status maps a kind to the HTTP status it is answered with.
func (k Kind) Status() int {
	switch k {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Invalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	return e.Kind.Status()
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidWrap(err error, message string) *Error {
	return &Error{Kind: Invalid, Message: message + ": " + err.Error(), Err: err}
}

// KindOf reports the kind carried by err, Internal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Postgres SQLSTATE codes we classify when running strict.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Translator turns any error into an *Error. With Strict off, database
// failures keep the historical 500 answer and their raw message.
type Translator struct {
	Strict bool
}

func (t Translator) Translate(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	if t.Strict {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return &Error{Kind: Conflict, Message: pgErr.Message, Err: err}
			case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
				return &Error{Kind: Invalid, Message: pgErr.Message, Err: err}
			}
		}
	}

	return &Error{Kind: Internal, Message: err.Error(), Err: err}
}
