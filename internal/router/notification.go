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

func NotificationRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth())

	router.Post("/create", createNotificationHandler)
	router.Get("/course/{courseID}", listNotificationsHandler)
	router.Get("/{notificationID}", getNotificationHandler)
	router.Post("/markRead/{notificationID}", markNotificationReadHandler)

	return router
}

// notificationRelationships resolves a notification's access relationships
// through its parent course.
func notificationRelationships(notificationID string) (*models.Notification, authz.Relationships, error) {
	notification, err := repo.Repository.GetNotificationByID(notificationID)
	if err != nil {
		return nil, authz.Relationships{}, err
	}

	rel, err := repo.Repository.CourseRelationships(notification.CourseID)
	if err != nil {
		return nil, authz.Relationships{}, err
	}

	return notification, rel, nil
}

// POST: /create
func createNotificationHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateNotificationRequest

	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}
	req.Sender = user

	rel, err := repo.Repository.CourseRelationships(req.CourseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionCreate, authz.ResourceNotification, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	notification, err := repo.Repository.CreateNotification(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, notification)
}

// GET: /course/{courseID}
func listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	rel, err := repo.Repository.CourseRelationships(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceNotification, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	notifications, err := repo.Repository.ListNotificationsForCourse(courseID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, notifications)
}

// GET: /{notificationID}
func getNotificationHandler(w http.ResponseWriter, r *http.Request) {
	notification, rel, err := notificationRelationships(chi.URLParam(r, "notificationID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceNotification, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	render.JSON(w, r, notification)
}

// POST: /markRead/{notificationID}
func markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	notificationID := chi.URLParam(r, "notificationID")
	_, rel, err := notificationRelationships(notificationID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionMarkRead, authz.ResourceNotification, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	err = repo.Repository.MarkNotificationRead(&models.MarkNotificationReadRequest{
		NotificationID: notificationID,
		UserID:         user.ID,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully marked notification as read")
}
