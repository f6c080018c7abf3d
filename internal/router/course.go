package router

import (
	"encoding/json"
	"net/http"

	"campushub/internal/auth"
	"campushub/internal/authz"
	mw "campushub/internal/middleware"
	"campushub/internal/models"
	repo "campushub/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func CourseRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth())

	router.Get("/", listCoursesHandler)
	router.Post("/create", createCourseHandler)

	router.Route("/{courseID}", func(r chi.Router) {
		r.Use(mw.CourseCtx())
		r.Get("/", getCourseHandler)
		r.Post("/edit", editCourseHandler)
		r.Post("/delete", deleteCourseHandler)
		r.Post("/enroll", enrollStudentHandler)
		r.Post("/unenroll", unenrollStudentHandler)
	})

	return router
}

// GET: /
func listCoursesHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	courses, err := repo.Repository.ListCoursesForUser(user)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, courses)
}

// POST: /create
func createCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateCourseRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.CreatedBy = user

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionCreate, authz.ResourceCourse, authz.Relationships{}); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	course, err := repo.Repository.CreateCourse(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, course)
}

// GET: /{courseID}
func getCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := mw.CourseIDFromContext(r.Context())

	rel, err := repo.Repository.CourseRelationships(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceCourse, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	course, err := repo.Repository.GetCourseByID(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, course)
}

// POST: /{courseID}/edit
func editCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.EditCourseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.CourseID = mw.CourseIDFromContext(r.Context())

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionUpdate, authz.ResourceCourse, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.EditCourse(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully edited course "+req.CourseID)
}

// POST: /{courseID}/delete
func deleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := mw.CourseIDFromContext(r.Context())

	rel, err := repo.Repository.CourseRelationships(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionDelete, authz.ResourceCourse, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.DeleteCourse(&models.DeleteCourseRequest{CourseID: courseID}); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully deleted course "+courseID)
}

// POST: /{courseID}/enroll
func enrollStudentHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.EnrollStudentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.CourseID = mw.CourseIDFromContext(r.Context())

	if req.StudentID == "" {
		renderBadRequest(w, r, "studentID must be a non-empty string")
		return
	}

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionEnroll, authz.ResourceCourse, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.EnrollStudent(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully enrolled student in course "+req.CourseID)
}

// POST: /{courseID}/unenroll
func unenrollStudentHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.UnenrollStudentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.CourseID = mw.CourseIDFromContext(r.Context())

	if req.StudentID == "" {
		renderBadRequest(w, r, "studentID must be a non-empty string")
		return
	}

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionUnenroll, authz.ResourceCourse, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.UnenrollStudent(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully removed student from course "+req.CourseID)
}
