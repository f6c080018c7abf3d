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

func AssignmentRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth())

	router.Post("/create", createAssignmentHandler)
	router.Get("/course/{courseID}", listAssignmentsHandler)

	router.Route("/{assignmentID}", func(r chi.Router) {
		r.Use(mw.AssignmentCtx())
		r.Get("/", getAssignmentHandler)
		r.Post("/edit", editAssignmentHandler)
		r.Post("/delete", deleteAssignmentHandler)
		r.Post("/submit", createSubmissionHandler)
		r.Get("/submissions", listSubmissionsHandler)
		r.Post("/grade", gradeSubmissionHandler)
	})

	return router
}

// assignmentRelationships resolves an assignment's access relationships
// through its parent course, failing with not-found for orphaned records.
func assignmentRelationships(assignmentID string) (*models.Assignment, authz.Relationships, error) {
	assignment, err := repo.Repository.GetAssignmentByID(assignmentID)
	if err != nil {
		return nil, authz.Relationships{}, err
	}

	rel, err := repo.Repository.CourseRelationships(assignment.CourseID)
	if err != nil {
		return nil, authz.Relationships{}, err
	}

	return assignment, rel, nil
}

// POST: /create
func createAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionCreate, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	assignment, err := repo.Repository.CreateAssignment(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, assignment)
}

// GET: /course/{courseID}
func listAssignmentsHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	rel, err := repo.Repository.CourseRelationships(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	assignments, err := repo.Repository.ListAssignmentsForCourse(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, assignments)
}

// GET: /{assignmentID}
func getAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	assignment, rel, err := assignmentRelationships(mw.AssignmentIDFromContext(r.Context()))
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	render.JSON(w, r, assignment)
}

// POST: /{assignmentID}/edit
func editAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.EditAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.AssignmentID = mw.AssignmentIDFromContext(r.Context())

	_, rel, err := assignmentRelationships(req.AssignmentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionUpdate, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.EditAssignment(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully edited assignment "+req.AssignmentID)
}

// POST: /{assignmentID}/delete
func deleteAssignmentHandler(w http.ResponseWriter, r *http.Request) {
	assignmentID := mw.AssignmentIDFromContext(r.Context())

	_, rel, err := assignmentRelationships(assignmentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionDelete, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.DeleteAssignment(&models.DeleteAssignmentRequest{AssignmentID: assignmentID}); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully deleted assignment "+assignmentID)
}

// POST: /{assignmentID}/submit
func createSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateSubmissionRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.AssignmentID = mw.AssignmentIDFromContext(r.Context())
	req.CreatedBy = user

	assignment, rel, err := assignmentRelationships(req.AssignmentID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	rel.Deadline = &assignment.DueDate

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionSubmit, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	submission, err := repo.Repository.CreateSubmission(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, submission)
}

// GET: /{assignmentID}/submissions
func listSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	assignmentID := mw.AssignmentIDFromContext(r.Context())

	_, rel, err := assignmentRelationships(assignmentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionGrade, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	submissions, err := repo.Repository.ListSubmissions(assignmentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, submissions)
}

// POST: /{assignmentID}/grade
func gradeSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.GradeSubmissionRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.AssignmentID = mw.AssignmentIDFromContext(r.Context())
	req.GradedBy = user

	if req.StudentID == "" {
		renderBadRequest(w, r, "studentID must be a non-empty string")
		return
	}

	_, rel, err := assignmentRelationships(req.AssignmentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionGrade, authz.ResourceAssignment, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.GradeSubmission(req); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully graded submission for assignment "+req.AssignmentID)
}
