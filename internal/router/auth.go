package router

import (
	"encoding/json"
	"net/http"

	"campushub/internal/auth"
	"campushub/internal/config"
	"campushub/internal/models"
	repo "campushub/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

const sessionIDCookieName = "campushub-sid"

func AuthRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Routes that require authentication
	router.Route("/", func(r chi.Router) {
		r.Use(auth.RequireAuth())

		// Information about the current user
		r.Get("/me", getMeHandler)
		r.Get("/sessions", listSessionsHandler)
		r.Post("/revokeSessions", revokeSessionsHandler)

		// Update the current user's information
		r.Post("/update", updateUserHandler)
		r.With(auth.RequireAdmin()).Post("/updateRole", updateUserRoleHandler)
		r.With(auth.RequireAdmin()).Get("/", listUsersHandler)

		r.Get("/{userID}", getUserHandler)
	})

	// Alter the current session. No auth middlewares required.
	router.Post("/session", createSessionHandler)
	router.Post("/signout", signOutHandler)

	return router
}

// GET: /me
func getMeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, struct {
		*models.Profile
		ID string `json:"id"`
	}{user.Profile, user.ID})
}

// GET: /{userID}
func getUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := repo.Repository.GetUserByID(userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, user)
}

// GET: /
func listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := repo.Repository.ListUsers()
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, users)
}

// POST: /update
func updateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	req.UserID = user.ID

	if err := repo.Repository.UpdateUser(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully edited user "+req.UserID)
}

// POST: /updateRole
func updateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.SetRoleByEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	if err := repo.Repository.SetUserRoleByEmail(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully updated role for "+req.Email)
}

// GET: /sessions
func listSessionsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	sessions, err := repo.Repository.ListSessionsForUser(user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, sessions)
}

// POST: /revokeSessions
func revokeSessionsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := repo.Repository.RevokeAllSessions(user.ID); err != nil {
		renderError(w, r, err)
		return
	}

	clearSessionCookies(w)
	renderSuccess(w, r, "successfully revoked all sessions")
}

// POST: /session
func createSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	// Create the session cookie. This also verifies the ID token; the
	// session cookie will carry the same claims.
	cookie, uid, err := repo.Repository.MintSessionCookie(req.Token)
	if err != nil {
		renderError(w, r, err)
		return
	}

	session, err := repo.Repository.CreateSession(uid, r.UserAgent())
	if err != nil {
		glog.Warningf("error recording session: %v\n", err)
	}

	expiresIn := config.Config.SessionCookieExpiration
	http.SetCookie(w, &http.Cookie{
		Name:     config.Config.SessionCookieName,
		Value:    cookie,
		MaxAge:   int(expiresIn.Seconds()),
		HttpOnly: true,
		SameSite: cookieSameSite(),
		Secure:   config.Config.IsHTTPS,
		Path:     "/",
	})
	if session != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionIDCookieName,
			Value:    session.ID,
			MaxAge:   int(expiresIn.Seconds()),
			HttpOnly: true,
			SameSite: cookieSameSite(),
			Secure:   config.Config.IsHTTPS,
			Path:     "/",
		})
	}

	renderSuccess(w, r, "success")
}

// POST: /signout
func signOutHandler(w http.ResponseWriter, r *http.Request) {
	if sid, err := r.Cookie(sessionIDCookieName); err == nil {
		if err := repo.Repository.DeleteSession(sid.Value); err != nil {
			glog.Warningf("error deleting session record: %v\n", err)
		}
	}

	clearSessionCookies(w)
	renderSuccess(w, r, "success")
}

// Helpers

func cookieSameSite() http.SameSite {
	if config.Config.IsHTTPS {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{config.Config.SessionCookieName, sessionIDCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: cookieSameSite(),
			Secure:   config.Config.IsHTTPS,
			Path:     "/",
		})
	}
}
