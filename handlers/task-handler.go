package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/animekoon434-afk/SyncTask/middleware"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/services"
)

type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var input services.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	todo, err := h.Service.CreateTask(r.Context(), user, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Task added successfully", Data: todo})
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	projectID := r.URL.Query().Get("projectId")
	todos, err := h.Service.ListTasks(r.Context(), projectID, user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: todos})
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	todo, err := h.Service.GetTask(r.Context(), mux.Vars(r)["id"], user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: todo})
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var patch models.TodoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Message: "invalid request payload"})
		return
	}

	todo, err := h.Service.UpdateTask(r.Context(), mux.Vars(r)["id"], user, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Task updated successfully", Data: todo})
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	if err := h.Service.DeleteTask(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Task deleted successfully"})
}

func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	query := r.URL.Query()
	todos, err := h.Service.SearchTasks(r.Context(), query.Get("projectId"), user.ID, query.Get("search"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: todos})
}
