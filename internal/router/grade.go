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

func GradeRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth())

	router.Post("/create", createGradeHandler)
	router.Get("/me", listMyGradesHandler)
	router.Get("/course/{courseID}", listCourseGradesHandler)
	router.Get("/{gradeID}", getGradeHandler)

	return router
}

// POST: /create
func createGradeHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateGradeRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.GradedBy = user

	if req.StudentID == "" {
		renderBadRequest(w, r, "studentID must be a non-empty string")
		return
	}

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionCreate, authz.ResourceGrade, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	grade, err := repo.Repository.CreateGrade(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, grade)
}

// GET: /me
func listMyGradesHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	grades, err := repo.Repository.ListGradesForStudent(user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, grades)
}

// GET: /course/{courseID}
func listCourseGradesHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	rel, err := repo.Repository.CourseRelationships(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	// The full gradebook is instructor/admin territory; students read their
	// own grades through /me or /{gradeID}.
	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionCreate, authz.ResourceGrade, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	grades, err := repo.Repository.ListGradesForCourse(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, grades)
}

// GET: /{gradeID}
func getGradeHandler(w http.ResponseWriter, r *http.Request) {
	grade, err := repo.Repository.GetGradeByID(chi.URLParam(r, "gradeID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	rel, err := repo.Repository.GradeRelationships(grade)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceGrade, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	render.JSON(w, r, grade)
}
