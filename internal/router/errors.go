package router

import (
	"errors"
	"net/http"

	"campushub/internal/apperrors"
	"campushub/internal/authz"

	"github.com/go-chi/render"
	"github.com/golang/glog"
)

// errorResponse is the uniform error body returned by every handler.
type errorResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ConflictingID string `json:"conflictingId,omitempty"`
}

// classifyError maps a repository or validation error onto an HTTP status and
// response body. Unrecognized errors become a generic 500 so internal detail
// never reaches the client.
func classifyError(err error) (int, errorResponse) {
	var conflict *apperrors.ConflictError
	var validation *apperrors.ValidationError

	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, errorResponse{Message: err.Error()}
	case errors.Is(err, apperrors.UnauthenticatedError):
		return http.StatusUnauthorized, errorResponse{Message: err.Error()}
	case errors.Is(err, apperrors.ForbiddenError):
		return http.StatusForbidden, errorResponse{Message: err.Error()}
	case errors.As(err, &conflict):
		return http.StatusBadRequest, errorResponse{Message: conflict.Message, ConflictingID: conflict.ConflictingID}
	case errors.As(err, &validation):
		return http.StatusBadRequest, errorResponse{Message: validation.Message}
	}

	return http.StatusInternalServerError, errorResponse{Message: "an unexpected error occurred"}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := classifyError(err)
	if status == http.StatusInternalServerError {
		glog.Warningf("internal error handling %s %s: %v\n", r.Method, r.URL.Path, err)
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}

// renderDenied writes the 403 response for a policy denial.
func renderDenied(w http.ResponseWriter, r *http.Request, d authz.Decision) {
	render.Status(r, http.StatusForbidden)
	render.JSON(w, r, errorResponse{Message: d.Reason})
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{Message: message})
}

func renderSuccess(w http.ResponseWriter, r *http.Request, message string) {
	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
