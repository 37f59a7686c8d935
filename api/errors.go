// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-seq.

package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFound is the index reported by searches that miss.
const NotFound = -1

// Common errors used across the library.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrFull             = errors.New("container is full")
	ErrEmpty            = errors.New("container is empty")
	ErrOutOfRange       = errors.New("index out of range")
	ErrNotFound         = errors.New("element not found")
	ErrAlreadyExists    = errors.New("element already exists")
	ErrScratchExhausted = errors.New("scratch space exhausted")
	ErrNotSupported     = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeFull
	ErrCodeEmpty
	ErrCodeOutOfRange
	ErrCodeNotFound
	ErrCodeAlreadyExists
	ErrCodeScratchExhausted
	ErrCodeNotSupported
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid argument"
	case ErrCodeFull:
		return "full"
	case ErrCodeEmpty:
		return "empty"
	case ErrCodeOutOfRange:
		return "out of range"
	case ErrCodeNotFound:
		return "not found"
	case ErrCodeAlreadyExists:
		return "already exists"
	case ErrCodeScratchExhausted:
		return "scratch exhausted"
	case ErrCodeNotSupported:
		return "not supported"
	default:
		return "internal"
	}
}

var sentinelCodes = []struct {
	err  error
	code ErrorCode
}{
	{ErrInvalidArgument, ErrCodeInvalidArgument},
	{ErrFull, ErrCodeFull},
	{ErrEmpty, ErrCodeEmpty},
	{ErrOutOfRange, ErrCodeOutOfRange},
	{ErrNotFound, ErrCodeNotFound},
	{ErrAlreadyExists, ErrCodeAlreadyExists},
	{ErrScratchExhausted, ErrCodeScratchExhausted},
	{ErrNotSupported, ErrCodeNotSupported},
}

// CodeOf classifies err, looking through wrapping and *Error values.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return ErrCodeInternal
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the error the value was built from, if any.
func (e *Error) Unwrap() error { return e.cause }

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap builds a structured error around cause, which is usually one of
// the package sentinels or an error wrapping one. The code is taken from
// cause.
func Wrap(cause error, message string) *Error {
	e := NewError(CodeOf(cause), message)
	e.cause = cause
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
