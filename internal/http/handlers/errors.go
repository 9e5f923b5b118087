// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// These symbolic constants are mapped to HTTP responses via the fail() helper
// and give clients a stable, machine-readable error taxonomy that supplements
// human-readable messages. Generic codes mirror common HTTP status semantics;
// domain-specific codes cover business errors that a status alone cannot
// convey. Every error response carries both an HTTP status and one of these
// codes.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeDuplicateMSISDN  = "duplicate_msisdn"
	ErrCodeIDMismatch       = "id_mismatch"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
