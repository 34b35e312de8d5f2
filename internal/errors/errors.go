package errors

import (
	"context"
	"errors"
	"fmt"
)

// Error is a coded error with optional cause and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap adds multiple metadata entries
func (e *Error) WithMetaMap(meta map[string]interface{}) *Error {
	for k, v := range meta {
		e.WithMeta(k, v)
	}
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err, keeping its code and a copy of its metadata.
// Errors from outside this package become Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return WrapWithCode(err, GetCode(err), message)
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, keeping a copy of its metadata
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
	var existingErr *Error
	if errors.As(err, &existingErr) {
		wrapped.WithMetaMap(existingErr.Meta)
	}
	return wrapped
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// FromContext wraps a context error as Canceled or DeadlineExceeded
func FromContext(err error, message string) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapWithCode(err, CodeDeadlineExceeded, message)
	}
	return WrapWithCode(err, CodeCanceled, message)
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func Aborted(message string) *Error { return New(CodeAborted, message) }

func Abortedf(format string, args ...interface{}) *Error {
	return Newf(CodeAborted, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func Unavailablef(format string, args ...interface{}) *Error {
	return Newf(CodeUnavailable, format, args...)
}

func DataLoss(message string) *Error { return New(CodeDataLoss, message) }

func DataLossf(format string, args ...interface{}) *Error {
	return Newf(CodeDataLoss, format, args...)
}
