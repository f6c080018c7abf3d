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

func MessageRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.RequireAuth())

	router.Post("/send", sendMessageHandler)
	router.Get("/inbox", listInboxHandler)
	router.Get("/sent", listSentHandler)
	router.Get("/{messageID}", getMessageHandler)
	router.Post("/markRead/{messageID}", markMessageReadHandler)
	router.Post("/delete/{messageID}", deleteMessageHandler)

	return router
}

// POST: /send
func sendMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.SendMessageRequest

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

	if req.RecipientID == "" {
		renderBadRequest(w, r, "recipientID must be a non-empty string")
		return
	}

	message, err := repo.Repository.CreateMessage(req)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, message)
}

// GET: /inbox
func listInboxHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	messages, err := repo.Repository.ListInbox(user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, messages)
}

// GET: /sent
func listSentHandler(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	messages, err := repo.Repository.ListSent(user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, messages)
}

// GET: /{messageID}
func getMessageHandler(w http.ResponseWriter, r *http.Request) {
	message, err := repo.Repository.GetMessageByID(chi.URLParam(r, "messageID"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	// Messages are private between sender and recipient; admins included.
	rel := repo.MessageRelationships(message)
	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionRead, authz.ResourceMessage, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	render.JSON(w, r, message)
}

// POST: /markRead/{messageID}
func markMessageReadHandler(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	message, err := repo.Repository.GetMessageByID(messageID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	rel := repo.MessageRelationships(message)
	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionMarkRead, authz.ResourceMessage, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.MarkMessageRead(messageID); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully marked message as read")
}

// POST: /delete/{messageID}
func deleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	message, err := repo.Repository.GetMessageByID(messageID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	rel := repo.MessageRelationships(message)
	if d := authz.Authorize(auth.PrincipalFromRequest(r), authz.ActionDelete, authz.ResourceMessage, rel); !d.Allowed {
		renderDenied(w, r, d)
		return
	}

	if err := repo.Repository.DeleteMessage(&models.DeleteMessageRequest{MessageID: messageID}); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, "successfully deleted message "+messageID)
}
