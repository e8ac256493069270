// Package errors defines the error kinds the SFS core surfaces, per the
// error handling design in spec.md §7.
package errors

import "fmt"

// DriverError is implemented by every error this module returns from an
// exported operation. It lets callers attach additional context: an error
// built with WithMessage still matches its sentinel under [errors.Is],
// while one built with WrapError unwraps to the wrapped error instead.
type DriverError interface {
	error
	WithMessage(message string) DriverError
	WrapError(err error) DriverError
	Unwrap() error
}

// SfsError is a sentinel error kind, one per error kind in spec.md §7.
type SfsError string

const (
	// ErrNameInvalid: empty or over-long name passed to Fopen.
	ErrNameInvalid = SfsError("name is empty or exceeds the maximum filename length")
	// ErrNoSpace: inode table, directory table, fdt, or bitmap exhausted.
	ErrNoSpace = SfsError("no space left on device")
	// ErrFileTooLarge: write would exceed MaxFileBytes.
	ErrFileTooLarge = SfsError("file too large")
	// ErrNotFound: name absent from the directory table.
	ErrNotFound = SfsError("no such file")
	// ErrBadHandle: fdt slot not in use.
	ErrBadHandle = SfsError("bad file handle")
	// ErrBadRange: fseek target outside [0, MaxFileBytes].
	ErrBadRange = SfsError("seek position out of range")
	// ErrInternal: an on-disk invariant was violated; indicates prior
	// corruption rather than a caller mistake.
	ErrInternal = SfsError("internal file system invariant violated")
	// ErrIOFailed: the block device adapter returned an error.
	ErrIOFailed = SfsError("input/output error")
	// ErrAlreadyInProgress: an operation conflicts with one already under
	// way. No operation in this module returns it.
	ErrAlreadyInProgress = SfsError("operation already in progress")
)

// Error implements the error interface.
func (e SfsError) Error() string {
	return string(e)
}

// WithMessage attaches a custom message to the sentinel, producing a
// DriverError whose Unwrap() returns the sentinel e.
func (e SfsError) WithMessage(message string) DriverError {
	return customDriverError{
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

// WrapError wraps another error under this sentinel's message. The result's
// Unwrap() returns err, so errors.Is matches err rather than e.
func (e SfsError) WrapError(err error) DriverError {
	return customDriverError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: err,
	}
}

// Unwrap lets errors.Is(err, SomeSfsError) work even when e carries no
// additional context.
func (e SfsError) Unwrap() error {
	return nil
}

// -----------------------------------------------------------------------------

type customDriverError struct {
	message       string
	originalError error
}

func (e customDriverError) Error() string {
	return e.message
}

func (e customDriverError) WithMessage(message string) DriverError {
	return customDriverError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customDriverError) WrapError(err error) DriverError {
	return customDriverError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: err,
	}
}

func (e customDriverError) Unwrap() error {
	return e.originalError
}
