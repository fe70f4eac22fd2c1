// Package domainerrors provides coded errors shared by services, stores and
// transports.
//
// Services return these so callers can branch on the Code without string
// matching. Stores return sentinel errors (pkg/platform/sentinel) instead and
// let the service translate them.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeForbidden: the caller lacks the privilege or identity the operation requires.
	CodeForbidden Code = "forbidden"
	// CodeUnauthorized: the transport could not identify the caller at all.
	CodeUnauthorized Code = "unauthorized"
	// CodeNotFound: a referenced club or membership does not exist.
	CodeNotFound Code = "not_found"
	// CodeValidation: an argument is outside its allowed range (years, name length).
	CodeValidation Code = "validation_error"
	// CodeArithmetic: checked arithmetic overflowed or divided by zero.
	CodeArithmetic Code = "arithmetic_error"
	// CodeTransferFailed: the fee gateway refused to move funds.
	CodeTransferFailed Code = "transfer_failed"

	CodeBadRequest         Code = "bad_request"
	CodeInvalidInput       Code = "invalid_input"
	CodeConflict           Code = "conflict"
	CodeInvariantViolation Code = "invariant_violation"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
)

// Error is a domain error carrying a Code, a caller-safe message and an
// optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error. A nil err yields nil
// so call sites can wrap unconditionally.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any domain error in err's chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost domain code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Is reports whether err is a domain error with the given code.
// It is an alias of HasCode kept for call-site readability.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// ToHTTPStatus maps a domain code to the HTTP status a transport should use.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeForbidden:
		return http.StatusForbidden
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeInvalidInput, CodeBadRequest:
		return http.StatusBadRequest
	case CodeArithmetic, CodeInvariantViolation:
		return http.StatusUnprocessableEntity
	case CodeTransferFailed:
		return http.StatusPaymentRequired
	case CodeConflict:
		return http.StatusConflict
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
