package router

import (
	"encoding/json"
	"net/http"

	"campushub/internal/auth"
	"campushub/internal/authz"
	"campushub/internal/models"
	repo "campushub/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func NewsRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Published news is public; OptionalAuth lets admins see drafts too.
	router.With(auth.OptionalAuth()).Get("/", listNewsHandler)
	router.With(auth.OptionalAuth()).Get("/{newsID}", getNewsHandler)

	admin := router.With(auth.RequireAuth(), auth.RequireAdmin())
	admin.Post("/create", createNewsHandler)
	admin.Post("/edit/{newsID}", editNewsHandler)
	admin.Post("/delete/{newsID}", deleteNewsHandler)
	admin.Post("/setVisibility/{newsID}", setNewsVisibilityHandler)

	return router
}

// GET: /
func listNewsHandler(w http.ResponseWriter, r *http.Request) {
	principal := auth.PrincipalFromRequest(r)
	includeUnpublished := principal.Role == models.RoleAdmin

	items, err := repo.Repository.ListNews(includeUnpublished)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, items)
}

// GET: /{newsID}
func getNewsHandler(w http.ResponseWriter, r *http.Request) {
	news, err := repo.Repository.GetNewsByID(chi.URLParam(r, "newsID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	rel := repo.NewsRelationships(news)
	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceNews, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	render.JSON(w, r, news)
}

// POST: /create
func createNewsHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateNewsRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.Author = user

	news, err := repo.Repository.CreateNews(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, news)
}

// POST: /edit/{newsID}
func editNewsHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.EditNewsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.NewsID = chi.URLParam(r, "newsID")

	if _, err := repo.Repository.GetNewsByID(req.NewsID); err != nil {
		renderError(w, r, err)
		return
	}

	if err := repo.Repository.EditNews(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully edited news item "+req.NewsID)
}

// POST: /delete/{newsID}
func deleteNewsHandler(w http.ResponseWriter, r *http.Request) {
	newsID := chi.URLParam(r, "newsID")

	if _, err := repo.Repository.GetNewsByID(newsID); err != nil {
		renderError(w, r, err)
		return
	}

	if err := repo.Repository.DeleteNews(&models.DeleteNewsRequest{NewsID: newsID}); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully deleted news item "+newsID)
}

// POST: /setVisibility/{newsID}
func setNewsVisibilityHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.SetNewsVisibilityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.NewsID = chi.URLParam(r, "newsID")

	// The single-visible-item invariant is enforced transactionally in the
	// repository; a conflict surfaces here as a 400 with the conflicting id.
	if err := repo.Repository.SetNewsVisibility(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully updated news visibility")
}
