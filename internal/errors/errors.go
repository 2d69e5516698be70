// Package errors provides the error type returned by dependency extraction.
package errors

import (
	"errors"
	"fmt"
)

// ErrExtraction is the sentinel every ExtractionError matches with errors.Is.
var ErrExtraction = errors.New("dependency extraction error")

// Code is the machine readable identifier of an ExtractionError.
const Code = "dependency-extraction-error"

// ExtractionError reports a failure to extract dependencies from a path.
type ExtractionError struct {
	// Path is the file or directory the failure relates to.
	Path string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *ExtractionError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrExtraction
}

// Is reports whether target is ErrExtraction.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// Code returns the machine readable identifier of the error.
func (e *ExtractionError) Code() string {
	return Code
}

// New creates an ExtractionError without an underlying cause.
func New(path, message string) *ExtractionError {
	return &ExtractionError{
		Path:    path,
		Message: message,
	}
}

// Wrap wraps err with the path and message of the failed operation.
func Wrap(err error, path, message string) *ExtractionError {
	return &ExtractionError{
		Path:    path,
		Message: message,
		Cause:   err,
	}
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, path, format string, args ...any) *ExtractionError {
	return Wrap(err, path, fmt.Sprintf(format, args...))
}

// IsExtraction reports whether err is, or wraps, an ExtractionError.
func IsExtraction(err error) bool {
	return errors.Is(err, ErrExtraction)
}

// PathOf returns the path of the outermost ExtractionError in err's chain.
func PathOf(err error) (string, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Path, true
	}
	return "", false
}
