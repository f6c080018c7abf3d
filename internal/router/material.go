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

func MaterialRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth())

	router.Post("/create", createMaterialHandler)
	router.Get("/course/{courseID}", listMaterialsHandler)
	router.Get("/{materialID}", getMaterialHandler)
	router.Post("/edit/{materialID}", editMaterialHandler)
	router.Post("/delete/{materialID}", deleteMaterialHandler)

	return router
}

// materialRelationships resolves a material's access relationships through
// its parent course. A material whose course has been deleted is reported as
// not found, never served.
func materialRelationships(materialID string) (*models.CourseMaterial, authz.Relationships, error) {
	material, err := repo.Repository.GetMaterialByID(materialID)
	if err != nil {
		return nil, authz.Relationships{}, err
	}

	rel, err := repo.Repository.CourseRelationships(material.CourseID)
	if err != nil {
		return nil, authz.Relationships{}, err
	}

	return material, rel, nil
}

// POST: /create
func createMaterialHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateMaterialRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.UploadedBy = user

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionCreate, authz.ResourceMaterial, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	material, err := repo.Repository.CreateMaterial(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, material)
}

// GET: /course/{courseID}
func listMaterialsHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	rel, err := repo.Repository.CourseRelationships(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceMaterial, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	materials, err := repo.Repository.ListMaterialsForCourse(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, materials)
}

// GET: /{materialID}
func getMaterialHandler(w http.ResponseWriter, r *http.Request) {
	material, rel, err := materialRelationships(chi.URLParam(r, "materialID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceMaterial, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	render.JSON(w, r, material)
}

// POST: /edit/{materialID}
func editMaterialHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.EditMaterialRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.MaterialID = chi.URLParam(r, "materialID")

	_, rel, err := materialRelationships(req.MaterialID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionUpdate, authz.ResourceMaterial, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.EditMaterial(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully edited material "+req.MaterialID)
}

// POST: /delete/{materialID}
func deleteMaterialHandler(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialID")

	_, rel, err := materialRelationships(materialID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionDelete, authz.ResourceMaterial, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.DeleteMaterial(&models.DeleteMaterialRequest{MaterialID: materialID}); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully deleted material "+materialID)
}
