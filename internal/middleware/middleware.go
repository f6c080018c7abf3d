package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type paramKey string

const (
	// CourseIDKey is the context key CourseCtx stores the course id under.
	CourseIDKey paramKey = "courseID"
	// AssignmentIDKey is the context key AssignmentCtx stores the assignment id under.
	AssignmentIDKey paramKey = "assignmentID"
)

func CourseCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			courseID := chi.URLParam(r, "courseID")

			ctx := context.WithValue(r.Context(), CourseIDKey, courseID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AssignmentCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assignmentID := chi.URLParam(r, "assignmentID")

			ctx := context.WithValue(r.Context(), AssignmentIDKey, assignmentID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CourseIDFromContext returns the course id placed by CourseCtx.
func CourseIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CourseIDKey).(string)
	return id
}

// AssignmentIDFromContext returns the assignment id placed by AssignmentCtx.
func AssignmentIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(AssignmentIDKey).(string)
	return id
}
