package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/animekoon434-afk/SyncTask/middleware"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input services.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	project, err := h.Service.CreateProject(r.Context(), user, input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Project created successfully", Data: project})
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	projects, err := h.Service.ListProjects(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: projects})
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	project, err := h.Service.GetProject(r.Context(), mux.Vars(r)["projectId"], user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: project})
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	project, err := h.Service.UpdateProject(r.Context(), mux.Vars(r)["projectId"], user.ID, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Project updated successfully", Data: project})
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	if err := h.Service.DeleteProject(r.Context(), mux.Vars(r)["projectId"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Project and all its tasks deleted successfully"})
}

func (h *ProjectHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var body struct {
		CollaboratorID string `json:"collaboratorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	project, err := h.Service.RemoveCollaborator(r.Context(), mux.Vars(r)["projectId"], user.ID, body.CollaboratorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Collaborator removed successfully", Data: project})
}

func (h *ProjectHandler) LeaveProject(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	if err := h.Service.LeaveProject(r.Context(), mux.Vars(r)["projectId"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "You have left the project"})
}
