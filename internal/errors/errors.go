// Package errors defines the quoting error taxonomy.
// Every client-correctable failure carries a stable code the front-end
// switches on; anything else is internal and surfaced opaquely.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the category of quoting error
type Code string

const (
	// CodeMissingProduct indicates no product token and no implicit signal
	CodeMissingProduct Code = "MISSING_PRODUCT"

	// CodeBadDimensions indicates length or width missing/non-numeric
	CodeBadDimensions Code = "BAD_DIMENSIONS"

	// CodeInvalidTier indicates the tier has no slice in the chase cover matrix
	CodeInvalidTier Code = "INVALID_TIER"

	// CodeInvalidMetal indicates the metal is absent from the resolved tier slice
	CodeInvalidMetal Code = "INVALID_METAL"

	// CodeSizeBucketUnresolved indicates no size category fits the dimensions
	CodeSizeBucketUnresolved Code = "SIZE_BUCKET_UNRESOLVED"

	// CodeNoFactorFound indicates a missing multi-flue metal/product factor row
	CodeNoFactorFound Code = "NO_FACTOR_FOUND"

	// CodeMissingShroudConfig indicates a missing model/metal/tier table entry
	CodeMissingShroudConfig Code = "MISSING_SHROUD_CONFIG"

	// CodeUnknownProduct indicates classification fell through all families
	CodeUnknownProduct Code = "UNKNOWN_PRODUCT"

	// CodeInternal indicates an unexpected internal failure
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is a quoting domain error with a stable code and optional details
type Error struct {
	Code    Code                   `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the code to a response status.
// Everything in the taxonomy is client-correctable except CodeInternal.
func (e *Error) HTTPStatus() int {
	if e.Code == CodeInternal {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// WithDetail attaches a detail key/value and returns the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new formatted error
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure
func Internal(message string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: message, Cause: cause}
}

// AsError extracts an *Error from err's chain, if present
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode checks whether err carries a specific code
func IsCode(err error, code Code) bool {
	if e, ok := AsError(err); ok {
		return e.Code == code
	}
	return false
}
