// Package services implements the business logic around the perfume
// catalog: rating aggregation, recommendation selection, catalog search,
// admin curation, and bulk import. This file centralizes the service-level
// error values so they can be consistently returned by service methods and
// checked by callers.
//
// These errors are for internal use by the service layer; translation into
// user-facing messages or HTTP status codes happens at the handler layer.
package services

import "errors"

var (
	// ErrPerfumeNotFound indicates that no perfume with the requested id
	// exists in the catalog.
	ErrPerfumeNotFound = errors.New("perfume not found")

	// ErrInvalidAction is returned when a feedback action is neither
	// "like" nor "dislike".
	ErrInvalidAction = errors.New(`action must be "like" or "dislike"`)

	// ErrMissingColumn is returned when a bulk-import workbook lacks one of
	// the required columns. The whole import aborts before any row is
	// added; the wrapped message names the missing column.
	ErrMissingColumn = errors.New("required column missing")

	// ErrEmptyWorkbook is returned when a bulk-import workbook has no
	// header row to validate.
	ErrEmptyWorkbook = errors.New("workbook has no header row")
)
