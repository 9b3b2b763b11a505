package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodePermissionDenied indicates the caller does not have permission
	CodePermissionDenied Code = "permission_denied"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeAlignmentViolation indicates a record whose tag arrays and change list differ in length
	CodeAlignmentViolation Code = "alignment_violation"

	// CodeUnknownTagKey indicates a type or subtype with no entry in the type table
	CodeUnknownTagKey Code = "unknown_tag_key"

	// CodeMissingScore indicates a technique, form or characteristic with no resolvable score
	CodeMissingScore Code = "missing_score"

	// CodeUnsupportedMode indicates a change mode outside the known enumeration
	CodeUnsupportedMode Code = "unsupported_mode"

	// CodeMissingOption indicates an empty option on a subtype that declares an option placeholder
	CodeMissingOption Code = "missing_option"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if errors.As(err, &coded) {
		return &Error{
			Code:    coded.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(coded.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// PermissionDeniedf creates a formatted permission denied error
func PermissionDeniedf(format string, args ...any) *Error {
	return Newf(CodePermissionDenied, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// AlignmentViolationf creates a formatted alignment violation error
func AlignmentViolationf(format string, args ...any) *Error {
	return Newf(CodeAlignmentViolation, format, args...)
}

// UnknownTagKeyf creates a formatted unknown tag key error
func UnknownTagKeyf(format string, args ...any) *Error {
	return Newf(CodeUnknownTagKey, format, args...)
}

// MissingScoref creates a formatted missing score error
func MissingScoref(format string, args ...any) *Error {
	return Newf(CodeMissingScore, format, args...)
}

// UnsupportedModef creates a formatted unsupported mode error
func UnsupportedModef(format string, args ...any) *Error {
	return Newf(CodeUnsupportedMode, format, args...)
}

// MissingOptionf creates a formatted missing option error
func MissingOptionf(format string, args ...any) *Error {
	return Newf(CodeMissingOption, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsPermissionDenied checks if the error is a permission denied error
func IsPermissionDenied(err error) bool {
	return Is(err, CodePermissionDenied)
}

// IsAlignmentViolation checks if the error is an alignment violation
func IsAlignmentViolation(err error) bool {
	return Is(err, CodeAlignmentViolation)
}

// IsUnknownTagKey checks if the error is an unknown tag key error
func IsUnknownTagKey(err error) bool {
	return Is(err, CodeUnknownTagKey)
}

// IsMissingScore checks if the error is a missing score error
func IsMissingScore(err error) bool {
	return Is(err, CodeMissingScore)
}

// IsUnsupportedMode checks if the error is an unsupported mode error
func IsUnsupportedMode(err error) bool {
	return Is(err, CodeUnsupportedMode)
}

// IsMissingOption checks if the error is a missing option error
func IsMissingOption(err error) bool {
	return Is(err, CodeMissingOption)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
