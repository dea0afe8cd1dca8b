package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/animekoon434-afk/SyncTask/middleware"
	"github.com/animekoon434-afk/SyncTask/services"
)

// UserHandler fronts the external identity provider: account search for the
// invite picker and signup invitations for addresses without an account.
type UserHandler struct {
	Service *services.IdentityService
}

func NewUserHandler(service *services.IdentityService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	users, err := h.Service.SearchUsers(r.Context(), user.ID, r.URL.Query().Get("email"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: users})
}

func (h *UserHandler) SendInvitation(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	if err := h.Service.SendInvitation(r.Context(), user.ID, body.Email); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: fmt.Sprintf("Invitation sent to %s", body.Email)})
}
