package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ResolveError is the unified error type for binding resolution and
// activation failures.
type ResolveError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Skippable indicates whether candidate probing may continue past
	// this error.
	Skippable bool `json:"skippable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *ResolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *ResolveError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *ResolveError) WithCause(cause error) *ResolveError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *ResolveError) WithDetail(key string, value any) *ResolveError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new ResolveError with automatic skippable detection.
func New(code ErrorCode, message string) *ResolveError {
	return &ResolveError{
		Code:      code,
		Message:   message,
		Skippable: IsSkippableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidConfig creates a ResolveError for a configuration value outside
// the accepted set. The message names every accepted value so the failure
// is actionable without consulting documentation.
func InvalidConfig(setting, got string, accepted []string) *ResolveError {
	return &ResolveError{
		Code: ErrCodeConfigInvalid,
		Message: fmt.Sprintf("%s has the unrecognized value %q; valid values are %s",
			setting, got, quoteList(accepted)),
		Skippable: false,
		Details:   map[string]any{"setting": setting, "value": got, "accepted": accepted},
	}
}

// Unavailable creates a ResolveError for a binding driver that is not
// installed in this process.
func Unavailable(binding string) *ResolveError {
	return &ResolveError{
		Code:      ErrCodeBindingUnavailable,
		Message:   fmt.Sprintf("binding %q is not installed", binding),
		Skippable: true,
		Details:   map[string]any{"binding": binding},
	}
}

// UnsupportedVersion creates a ResolveError for a binding below its
// minimum supported version.
func UnsupportedVersion(binding, got, minimum string) *ResolveError {
	return &ResolveError{
		Code:      ErrCodeVersionUnsupported,
		Message:   fmt.Sprintf("binding %q version %s is not supported (minimum %s)", binding, got, minimum),
		Skippable: true,
		Details:   map[string]any{"binding": binding, "version": got, "minimum": minimum},
	}
}

// Exhausted creates a ResolveError for a fully consumed candidate list.
func Exhausted(tried []string) *ResolveError {
	return &ResolveError{
		Code:      ErrCodeCandidatesExhausted,
		Message:   fmt.Sprintf("failed to activate any binding (tried %s)", quoteList(tried)),
		Skippable: false,
		Details:   map[string]any{"tried": tried},
	}
}

// Internal creates a ResolveError for an unexpected internal failure.
func Internal(message string) *ResolveError {
	return &ResolveError{
		Code:      ErrCodeInternal,
		Message:   message,
		Skippable: false,
	}
}

// --- Predicates ---

// AsResolveError extracts a *ResolveError from an error chain.
func AsResolveError(err error) (*ResolveError, bool) {
	var re *ResolveError
	ok := stderrors.As(err, &re)
	return re, ok
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	re, ok := AsResolveError(err)
	return ok && re.Code == code
}

// IsInvalidConfig reports whether err is a configuration error.
func IsInvalidConfig(err error) bool { return HasCode(err, ErrCodeConfigInvalid) }

// IsUnavailable reports whether err is a missing-binding error.
func IsUnavailable(err error) bool { return HasCode(err, ErrCodeBindingUnavailable) }

// IsUnsupportedVersion reports whether err is a version-gate error.
func IsUnsupportedVersion(err error) bool { return HasCode(err, ErrCodeVersionUnsupported) }

// IsExhausted reports whether err is an exhausted-candidates error.
func IsExhausted(err error) bool { return HasCode(err, ErrCodeCandidatesExhausted) }

// IsSkippable reports whether candidate probing may continue past err.
// Non-ResolveError values are never skippable.
func IsSkippable(err error) bool {
	re, ok := AsResolveError(err)
	return ok && re.Skippable
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
