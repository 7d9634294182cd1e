package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. These are the only failure kinds that cross the
// pipeline boundary; everything else degrades to a nil field or a warning.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrFileMissing        = errors.New("backing file missing")
	ErrConflict           = errors.New("document already processing")
	ErrTimeout            = errors.New("attempt deadline exceeded")
	ErrBackendUnavailable = errors.New("extraction backend unavailable")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDatabase           = errors.New("database error")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Retryable reports whether a failed attempt may be resubmitted by the
// scheduler. Conflicts are not retryable: another attempt already owns the
// document.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrConflict):
		return false
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrFileMissing):
		return false
	default:
		return true
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func ConflictError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
