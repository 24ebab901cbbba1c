// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that callers and scripts
// can make programmatic decisions (retry, fix input, re-login) without
// parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required parameters, wrong argument count, unparseable
	// values. The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown ticket ID, unknown product, missing stock item. Retrying
	// with the same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the caller lacks permission or the
	// session token was rejected. The caller should log in again.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with existing
	// state: occupied umbrella slot, illegal status transition,
	// already-exists. The server is the authority on these rules.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, server unavailable. The caller may retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, unparseable responses. The caller should report the
	// error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. It wraps
// an inner error, preserving the full chain for errors.Is/errors.As
// while adding category metadata and an optional remediation hint.
// Use the category-specific constructors (Validation, NotFound, etc.)
// rather than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional remediation suggestion appended to the
	// message on a separate line.
	Hint string
}

// Error returns the underlying error message, with the hint appended
// when present.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint attaches a remediation hint and returns the receiver, so
// constructors chain: cli.Validation("...").WithHint("...").
func (e *ToolError) WithHint(format string, args ...any) *ToolError {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the caller lacks permission.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the operation conflicts with existing state.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
