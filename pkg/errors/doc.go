// Package errors provides structured error types used across the catalog
// tooling so callers can branch on a stable code instead of message text.
//
// The registry itself never returns errors for lookups: an unknown code is
// reported as absence. Structured errors show up where something is actually
// wrong, such as an invalid embedded catalog or a CLI request for a code that
// does not exist.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeNotFound,
//	    "personality type not found",
//	    map[string]any{
//	        "code": code,
//	    },
//	)
package errors
