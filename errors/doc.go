// Package errors provides the unified error taxonomy for qtkit binding
// resolution. It implements structured error types with machine-readable
// codes and skippable detection, so the facade builder can tell apart
// failures that end resolution from failures that merely move probing to
// the next candidate binding.
package errors
