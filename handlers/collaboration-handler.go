package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/animekoon434-afk/SyncTask/middleware"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/services"
)

type CollaborationHandler struct {
	Service *services.CollaborationService
}

func NewCollaborationHandler(service *services.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{Service: service}
}

func (h *CollaborationHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var input services.SendRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	request, err := h.Service.SendRequest(r.Context(), user, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Collaboration request sent", Data: request})
}

func (h *CollaborationHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	requests, err := h.Service.GetPendingRequests(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: requests})
}

func (h *CollaborationHandler) GetSentRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	requests, err := h.Service.GetSentRequests(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: requests})
}

func (h *CollaborationHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var body struct {
		UserEmail string `json:"userEmail"`
		UserName  string `json:"userName"`
		UserImage string `json:"userImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		overlayMeta(&user, body.UserEmail, body.UserName, body.UserImage)
	}

	request, err := h.Service.AcceptRequest(r.Context(), mux.Vars(r)["requestId"], user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Collaboration request accepted", Data: request})
}

func (h *CollaborationHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	if _, err := h.Service.DeclineRequest(r.Context(), mux.Vars(r)["requestId"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Collaboration request declined"})
}

func overlayMeta(user *models.UserMeta, email, name, image string) {
	if email != "" {
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	if image != "" {
		user.Image = image
	}
}
