package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/animekoon434-afk/SyncTask/middleware"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/services"
)

type InviteHandler struct {
	Service     *services.InviteService
	FrontendURL string
}

func NewInviteHandler(service *services.InviteService, frontendURL string) *InviteHandler {
	return &InviteHandler{Service: service, FrontendURL: frontendURL}
}

func (h *InviteHandler) SendInvite(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var input services.SendInviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	invite, err := h.Service.SendInvite(r.Context(), user, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Invite sent", Data: invite})
}

func (h *InviteHandler) GetPendingInvites(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	invites, err := h.Service.GetPendingInvites(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: invites})
}

func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	h.applyActingMeta(r, &user)

	invite, err := h.Service.AcceptInvite(r.Context(), mux.Vars(r)["inviteId"], user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Invite accepted", Data: invite})
}

func (h *InviteHandler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	if _, err := h.Service.DeclineInvite(r.Context(), mux.Vars(r)["inviteId"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Invite declined"})
}

func (h *InviteHandler) CreateInviteLink(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var body struct {
		ProjectID string `json:"projectId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	link, err := h.Service.CreateInviteLink(r.Context(), body.ProjectID, user)
	if err != nil {
		respondError(w, err)
		return
	}

	// The shareable URL is composed here; only the token is persisted.
	respondJSON(w, http.StatusOK, Response{Success: true, Data: map[string]interface{}{
		"link":      link,
		"inviteUrl": fmt.Sprintf("%s/join/%s", h.FrontendURL, link.Token),
	}})
}

// GetInviteLinkInfo serves the public, unauthenticated link preview.
func (h *InviteHandler) GetInviteLinkInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetInviteLinkInfo(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: info})
}

func (h *InviteHandler) AcceptInviteLink(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	h.applyActingMeta(r, &user)

	project, err := h.Service.AcceptInviteLink(r.Context(), mux.Vars(r)["token"], user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "You have joined the project", Data: project})
}

// applyActingMeta overlays display fields sent by the client on top of the
// token identity. The user id always comes from the token.
func (h *InviteHandler) applyActingMeta(r *http.Request, user *models.UserMeta) {
	var body struct {
		UserEmail string `json:"userEmail"`
		UserName  string `json:"userName"`
		UserImage string `json:"userImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return
	}
	overlayMeta(user, body.UserEmail, body.UserName, body.UserImage)
}
