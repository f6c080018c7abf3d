package router

import (
	"errors"
	"net/http"
	"testing"

	"campushub/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"course not found", apperrors.CourseNotFoundError, http.StatusNotFound},
		{"grade not found", apperrors.GradeNotFoundError, http.StatusNotFound},
		{"unauthenticated", apperrors.UnauthenticatedError, http.StatusUnauthorized},
		{"forbidden", apperrors.ForbiddenError, http.StatusForbidden},
		{"conflict", apperrors.NewConflictError("duplicate enrollment", "s1"), http.StatusBadRequest},
		{"validation", apperrors.NewValidationError("missing field"), http.StatusBadRequest},
		{"unknown error", errors.New("firestore exploded"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := classifyError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

// Conflicts surface the id of the record that caused them so callers can act
// on it; internal errors must not leak detail.
func TestClassifyErrorBodies(t *testing.T) {
	_, resp := classifyError(apperrors.NewConflictError("another news item is already visible", "news-42"))
	assert.Equal(t, "news-42", resp.ConflictingID)

	_, resp = classifyError(errors.New("connection reset by peer"))
	assert.Equal(t, "an unexpected error occurred", resp.Message)
}
