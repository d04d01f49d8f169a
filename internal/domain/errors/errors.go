// Package errors provides domain-specific error types.
//
// Every failure that reaches the HTTP layer is classified here exactly once:
// client mistakes map to 4xx, missing server settings and upstream failures
// map to 500 with the underlying message kept in Details.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for domain errors.
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
)

// DomainError represents a classified failure.
type DomainError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func newError(code string, status int, message, details string, err error) *DomainError {
	if details == "" && err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       code,
		Message:    message,
		Details:    details,
		HTTPStatus: status,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports that no document matched a single-document lookup.
func NewNotFoundError(resource, identifier string) *DomainError {
	return newError(ErrCodeNotFound, http.StatusNotFound, resource+" not found", identifier, nil)
}

// NewValidationError reports a malformed name, identifier, query, limit or body.
func NewValidationError(message, details string) *DomainError {
	return newError(ErrCodeValidation, http.StatusBadRequest, message, details, nil)
}

// NewBadRequestError reports a request that could not be read at all.
func NewBadRequestError(message, details string) *DomainError {
	return newError(ErrCodeBadRequest, http.StatusBadRequest, message, details, nil)
}

// NewForbiddenError reports a missing or mismatched admin secret.
func NewForbiddenError(message string) *DomainError {
	return newError(ErrCodeForbidden, http.StatusForbidden, message, "", nil)
}

// NewInternalError wraps a store or upstream failure. The underlying message
// is surfaced in Details.
func NewInternalError(message string, err error) *DomainError {
	return newError(ErrCodeInternal, http.StatusInternalServerError, message, "", err)
}

// NewConfigurationError reports a missing or invalid server-side setting.
func NewConfigurationError(setting string, err error) *DomainError {
	return newError(ErrCodeConfiguration, http.StatusInternalServerError, setting+" is not configured", "", err)
}

// GetDomainError extracts the domain error from an error chain.
func GetDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	domainErr, ok := GetDomainError(err)
	return ok && domainErr.Code == code
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool { return hasCode(err, ErrCodeForbidden) }
