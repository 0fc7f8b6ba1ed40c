// Package handlers defines the HTTP-layer error codes used across all API
// endpoints.
//
// This file centralizes the symbolic error code constants mapped to HTTP
// responses via the `fail()` helper. These codes give clients a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Generic codes (bad_request, unauthorized, not_found, ...) mirror the
//     common HTTP status semantics to aid interoperability.
//   - Domain-specific codes (invalid_action, quiz_incomplete, ...) are
//     reserved for business-logic errors that status alone cannot convey.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeInvalidAction    = "invalid_action"
	ErrCodeQuizIncomplete   = "quiz_incomplete"
	ErrCodeMissingColumn    = "missing_column"
	ErrCodeImportFailed     = "import_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
