package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors (never skippable)
const (
	// ErrCodeConfigInvalid indicates an externally supplied configuration
	// value is not in the accepted set.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// Activation errors
const (
	// ErrCodeBindingUnavailable indicates the requested binding driver is
	// not installed in this process.
	ErrCodeBindingUnavailable ErrorCode = "BINDING_UNAVAILABLE"
	// ErrCodeVersionUnsupported indicates the binding was found but is
	// below the minimum supported version.
	ErrCodeVersionUnsupported ErrorCode = "VERSION_UNSUPPORTED"
	// ErrCodeCandidatesExhausted indicates every candidate binding was
	// probed and none could be activated.
	ErrCodeCandidatesExhausted ErrorCode = "CANDIDATES_EXHAUSTED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var skippableCodes = map[ErrorCode]bool{
	ErrCodeBindingUnavailable: true,
	ErrCodeVersionUnsupported: true,
}

// IsSkippableCode reports whether candidate-list probing may continue past
// an error carrying this code. Only missing-binding and version-gate
// failures are skippable, and only while probing; the same errors are
// terminal when the binding identity was explicit.
func IsSkippableCode(code ErrorCode) bool {
	return skippableCodes[code]
}
