package errors

import (
	"errors"
)

// As is errors.As from the standard library
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is errors.Is from the standard library
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost *Error in the chain, Internal for
// foreign errors and OK for nil
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage returns the message without code or cause
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return err.Error()
}

func hasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}

func IsFailedPrecondition(err error) bool {
	return hasCode(err, CodeFailedPrecondition)
}

func IsAborted(err error) bool {
	return hasCode(err, CodeAborted)
}

func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

func IsUnavailable(err error) bool {
	return hasCode(err, CodeUnavailable)
}

func IsDataLoss(err error) bool {
	return hasCode(err, CodeDataLoss)
}

func IsCanceled(err error) bool {
	return hasCode(err, CodeCanceled)
}

func IsDeadlineExceeded(err error) bool {
	return hasCode(err, CodeDeadlineExceeded)
}
