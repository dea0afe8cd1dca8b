package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/services"
)

// Response is the uniform API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// respondError maps a service error onto the HTTP taxonomy and writes the
// envelope. Unrecognized errors are logged and reported as internal.
func respondError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: %v", err)
		message = "internal server error"
	}
	respondJSON(w, status, Response{Success: false, Message: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrInviteNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrLinkNotFound),
		errors.Is(err, services.ErrNotProjectOwner),
		errors.Is(err, services.ErrNotTaskOwner),
		errors.Is(err, services.ErrNotCollaborator):
		return http.StatusNotFound
	case errors.Is(err, services.ErrProjectAccessDenied),
		errors.Is(err, services.ErrNotRecipient):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrProjectIDRequired),
		errors.Is(err, services.ErrRecipientRequired),
		errors.Is(err, services.ErrCollaboratorRequired),
		errors.Is(err, services.ErrSearchTermRequired),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrSearchTooShort),
		errors.Is(err, services.ErrAlreadyCollaborator),
		errors.Is(err, services.ErrInvitePending),
		errors.Is(err, services.ErrRequestPending),
		errors.Is(err, services.ErrNoLongerPending),
		errors.Is(err, services.ErrOwnerCannotLeave),
		errors.Is(err, services.ErrAlreadyOwner),
		errors.Is(err, services.ErrAlreadyMember):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
