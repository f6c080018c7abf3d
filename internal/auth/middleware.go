package auth

import (
	"context"
	"net/http"

	"campushub/internal/authz"
	"campushub/internal/config"
	"campushub/internal/models"
	repo "campushub/internal/repository"

	"github.com/go-chi/render"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// RequireAuth is a middleware that rejects requests without a valid session cookie. The User associated with the
// request is added to the request context, and can be accessed via GetUserFromRequest.
func RequireAuth() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userFromCookie(r)
			if err != nil {
				rejectUnauthorizedRequest(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}

// RequireAdmin rejects requests from non-admin users. Must be mounted after
// RequireAuth.
func RequireAdmin() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := GetUserFromRequest(r)
			if err != nil {
				rejectUnauthorizedRequest(w, r)
				return
			}

			if user.Role != models.RoleAdmin {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, map[string]interface{}{
					"success": false,
					"message": "you do not have permission to perform this action",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth attaches the user to the request context when a valid session
// cookie is present, and passes the request through anonymously otherwise.
// Used for routes with public reads, like published news.
func OptionalAuth() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, err := userFromCookie(r); err == nil {
				r = r.WithContext(withUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromRequest returns a User if it exists within the request context. Only works with routes that implement the
// RequireAuth or OptionalAuth middleware.
func GetUserFromRequest(r *http.Request) (*models.User, error) {
	user, ok := r.Context().Value(currentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, UserNotFoundError
	}

	return user, nil
}

// PrincipalFromRequest derives the authorization principal for the request.
// Requests without an authenticated user get the anonymous principal.
func PrincipalFromRequest(r *http.Request) authz.Principal {
	user, err := GetUserFromRequest(r)
	if err != nil {
		return authz.Anonymous
	}

	return authz.Principal{ID: user.ID, Role: user.Role}
}

// Helpers

func userFromCookie(r *http.Request) (*models.User, error) {
	tokenCookie, err := r.Cookie(config.Config.SessionCookieName)
	if err != nil {
		return nil, err
	}

	// Verify the session cookie. An additional check detects whether the
	// user's Firebase session was revoked, or the user deleted/disabled.
	return repo.Repository.VerifySessionCookie(tokenCookie)
}

func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

func rejectUnauthorizedRequest(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]interface{}{
		"success": false,
		"message": "you must be authenticated to access this resource",
	})
}
