// Package errors provides the code-tagged error type used across camelsnake.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a DomainError.
type ErrorCode string

// Available ErrorCode values.
const (
	CodeResolve     ErrorCode = "RESOLVE"
	CodeStale       ErrorCode = "STALE"
	CodeUnrenamable ErrorCode = "UNRENAMABLE"
	CodeSyntax      ErrorCode = "SYNTAX"
	CodeConflict    ErrorCode = "CONFLICT"
	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeValidation  ErrorCode = "VALIDATION"
	CodeInternal    ErrorCode = "INTERNAL"
)

// Context keys.
const (
	CtxPath   = "path"
	CtxOffset = "offset"
	CtxSymbol = "symbol"
)

// DomainError carries a code, a message and optional context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]any
}

// WithContext attaches a key/value pair and returns the receiver.
func (e *DomainError) WithContext(key string, value any) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}

	e.Context[key] = value

	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}

	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a DomainError.
func New(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

// Wrap creates a DomainError around err.
func Wrap(err error, code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg, Err: err}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}

	return false
}

// IsResolve reports whether err is a resolver failure: the occurrence is
// skipped and the run goes on.
func IsResolve(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}

	switch de.Code {
	case CodeResolve, CodeStale, CodeUnrenamable, CodeSyntax, CodeConflict, CodeValidation:
		return true
	default:
		return false
	}
}
