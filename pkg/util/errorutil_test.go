package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "title"})
	mapped := ToDomainError(original)
	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Errorf("mapped = %+v", mapped)
	}
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewSubmissionFailed(errors.New("timeout")))
	mapped := ToDomainError(wrapped)
	if mapped.Code != "SUBMISSION_FAILED" {
		t.Errorf("code = %q, want SUBMISSION_FAILED", mapped.Code)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("mapped = %+v", mapped)
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("mapped = %+v", mapped)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Error("nil error should map to nil")
	}
}

func TestErrorTaxonomyCodes(t *testing.T) {
	tests := []struct {
		err        error
		wantCode   string
		wantStatus int
	}{
		{NewSubmissionFailed(errors.New("x")), "SUBMISSION_FAILED", http.StatusInternalServerError},
		{NewFetchFailed(errors.New("x")), "FETCH_FAILED", http.StatusInternalServerError},
		{NewUpdateFailed(errors.New("x")), "UPDATE_FAILED", http.StatusInternalServerError},
		{NewCommentFailed(errors.New("x")), "COMMENT_FAILED", http.StatusInternalServerError},
		{NewStatsFailed(errors.New("x")), "STATS_FAILED", http.StatusInternalServerError},
		{NewInvalidCredentials(""), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{NewUnauthorized("no"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewNotFound("ticket", nil), "NOT_FOUND", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			var domainErr *DomainError
			if !errors.As(tt.err, &domainErr) {
				t.Fatalf("not a DomainError: %T", tt.err)
			}
			if domainErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", domainErr.Code, tt.wantCode)
			}
			if domainErr.HTTPStatus != tt.wantStatus {
				t.Errorf("status = %d, want %d", domainErr.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewFetchFailed(cause)
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}
