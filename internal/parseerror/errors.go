// Package parseerror defines the typed errors of the parsing pipeline. Each
// error carries a stable code attached at the pipeline boundary; nothing in
// here is retried or swallowed internally.
package parseerror

import (
	"errors"
	"fmt"
	"time"

	"ecakir/fintext/internal/models"
)

// Stable error codes surfaced to callers.
const (
	CodeExtractionTimeout      = "EXTRACTION_TIMEOUT"
	CodeExtractionUnparseable  = "EXTRACTION_UNPARSEABLE"
	CodeExtractionIncomplete   = "EXTRACTION_INCOMPLETE"
	CodeTypeUndetermined       = "TYPE_UNDETERMINED"
	CodeDefaultCategoryMissing = "DEFAULT_CATEGORY_MISSING"
	CodeInternal               = "INTERNAL"
)

// TimeoutError reports that the extraction collaborator did not answer
// within the configured deadline. Retryable by the caller.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("extraction timed out after %s: %v", e.Timeout, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Code() string { return CodeExtractionTimeout }

// UnparseableError reports that the extraction response was not in the
// expected shape.
type UnparseableError struct {
	Snippet string
	Err     error
}

func (e *UnparseableError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("extraction response not parseable: %v. Response snippet: %q", e.Err, e.Snippet)
	}
	return fmt.Sprintf("extraction response not parseable: %v", e.Err)
}

func (e *UnparseableError) Unwrap() error { return e.Err }

func (e *UnparseableError) Code() string { return CodeExtractionUnparseable }

// IncompleteError reports that the response parsed but lacked a field the
// pipeline cannot proceed without. Distinct from UnparseableError so the
// caller can prompt the user to rephrase.
type IncompleteError struct {
	Field string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("extraction response missing required field %q", e.Field)
}

func (e *IncompleteError) Code() string { return CodeExtractionIncomplete }

// TypeUndeterminedError guards the fallback-category lookup against an absent
// transaction type. Unreachable while the incomplete-extraction check holds.
type TypeUndeterminedError struct{}

func (e *TypeUndeterminedError) Error() string {
	return "transaction type could not be determined"
}

func (e *TypeUndeterminedError) Code() string { return CodeTypeUndetermined }

// DefaultCategoryMissingError reports an account whose seeded default
// category for the given type is gone. This is an integrity problem for
// operator follow-up, not a user-facing "try again".
type DefaultCategoryMissingError struct {
	UserID string
	Type   models.TransactionType
	Name   string
}

func (e *DefaultCategoryMissingError) Error() string {
	return fmt.Sprintf("default category %q (%s) missing for user %s", e.Name, e.Type, e.UserID)
}

func (e *DefaultCategoryMissingError) Code() string { return CodeDefaultCategoryMissing }

// coded is implemented by every error in this package.
type coded interface {
	Code() string
}

// CodeOf extracts the stable code from err, or CodeInternal for anything
// outside the taxonomy.
func CodeOf(err error) string {
	var c coded
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeInternal
}

// Retryable reports whether the caller may usefully retry the whole pipeline.
func Retryable(err error) bool {
	return CodeOf(err) == CodeExtractionTimeout
}
