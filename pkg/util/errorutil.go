package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewInvalidCredentials is returned by login when no active admin matches the
// supplied credentials.
func NewInvalidCredentials(message string) error {
	if message == "" {
		message = "invalid admin credentials"
	}
	return NewDomainError("INVALID_CREDENTIALS", message, http.StatusUnauthorized, nil)
}

// NewSubmissionFailed wraps a failed ticket creation.
func NewSubmissionFailed(err error) error {
	return &DomainError{
		Code:       "SUBMISSION_FAILED",
		Message:    "could not submit ticket",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewFetchFailed wraps a failed ticket read.
func NewFetchFailed(err error) error {
	return &DomainError{
		Code:       "FETCH_FAILED",
		Message:    "could not load tickets",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUpdateFailed wraps a failed ticket mutation.
func NewUpdateFailed(err error) error {
	return &DomainError{
		Code:       "UPDATE_FAILED",
		Message:    "could not update ticket",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewCommentFailed wraps a failed comment write.
func NewCommentFailed(err error) error {
	return &DomainError{
		Code:       "COMMENT_FAILED",
		Message:    "could not add comment",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewStatsFailed wraps a failed statistics query.
func NewStatsFailed(err error) error {
	return &DomainError{
		Code:       "STATS_FAILED",
		Message:    "could not compute statistics",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
