package errors

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Exit codes follow the BSD sysexits convention
const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitDataErr     = 65
	ExitNoInput     = 66
	ExitUnavailable = 69
	ExitSoftware    = 70
	ExitTempFail    = 75
	ExitConfig      = 78
	ExitInterrupted = 130
)

// ExitCode returns the process exit status a command reports for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument:
		return ExitUsage
	case CodeDataLoss:
		return ExitDataErr
	case CodeNotFound:
		return ExitNoInput
	case CodeUnavailable, CodeDeadlineExceeded:
		return ExitUnavailable
	case CodeCanceled:
		return ExitInterrupted
	case CodeAborted:
		return ExitTempFail
	case CodeFailedPrecondition:
		return ExitConfig
	default:
		return ExitSoftware
	}
}
