package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Process exit statuses, following the BSD sysexits conventions
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 64
	ExitNoInput     = 66
	ExitUnavailable = 69
	ExitSoftware    = 70
	ExitTempFail    = 75
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI reports for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument, CodeFailedPrecondition, CodeAlreadyExists:
		return ExitUsage
	case CodeNotFound:
		return ExitNoInput
	case CodeUnavailable:
		return ExitUnavailable
	case CodeCanceled, CodeDeadlineExceeded:
		return ExitTempFail
	case CodeInternal:
		return ExitSoftware
	default:
		return ExitFailure
	}
}
