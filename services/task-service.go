package services

import (
	"context"
	"strings"
	"time"

	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/repositories"
)

type TaskService struct {
	todos    repositories.TodoRepository
	projects repositories.ProjectRepository
}

func NewTaskService(todos repositories.TodoRepository, projects repositories.ProjectRepository) *TaskService {
	return &TaskService{todos: todos, projects: projects}
}

type CreateTaskInput struct {
	ProjectID   string              `json:"projectId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
}

// CreateTask creates a task in the given project. The creator becomes the
// task owner for the task-sharing flow.
func (s *TaskService) CreateTask(ctx context.Context, creator models.UserMeta, input CreateTaskInput) (*models.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.ProjectID == "" {
		return nil, ErrProjectIDRequired
	}
	projectID, err := parseObjectID(input.ProjectID)
	if err != nil {
		return nil, err
	}

	project, err := hasAccess(ctx, s.projects, projectID, creator.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectAccessDenied
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Status:         status,
		Priority:       priority,
		ProjectID:      projectID,
		CreatedBy:      creator.ID,
		CreatedByName:  creator.Name,
		CreatedByImage: creator.Image,
		Collaborators:  []models.Collaborator{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.todos.Insert(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// ListTasks returns the project's tasks, newest first, for project members.
func (s *TaskService) ListTasks(ctx context.Context, projectID, userID string) ([]models.Todo, error) {
	id, err := parseObjectID(projectID)
	if err != nil {
		return nil, err
	}

	project, err := hasAccess(ctx, s.projects, id, userID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectAccessDenied
	}

	return s.todos.ListByProject(ctx, id)
}

// GetTask loads the task and checks access against the project id stored on
// the task itself, not against caller input.
func (s *TaskService) GetTask(ctx context.Context, taskID, userID string) (*models.Todo, error) {
	todo, err := s.findAccessible(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTask rewrites the provided fields and stamps the updater.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, updater models.UserMeta, patch models.TodoPatch) (*models.Todo, error) {
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}
	if patch.Priority != nil && !models.ValidPriority(*patch.Priority) {
		return nil, ErrInvalidPriority
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrTitleRequired
	}

	todo, err := s.findAccessible(ctx, taskID, updater.ID)
	if err != nil {
		return nil, err
	}

	patch.UpdatedBy = updater.ID
	patch.UpdatedByName = updater.Name
	patch.UpdatedByImage = updater.Image

	updated, err := s.todos.Update(ctx, todo.ID, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}
	return updated, nil
}

// DeleteTask hard-deletes the task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	todo, err := s.findAccessible(ctx, taskID, userID)
	if err != nil {
		return err
	}

	deleted, err := s.todos.Delete(ctx, todo.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

// SearchTasks runs a case-insensitive substring match on titles within the
// project.
func (s *TaskService) SearchTasks(ctx context.Context, projectID, userID, term string) ([]models.Todo, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrSearchTermRequired
	}
	id, err := parseObjectID(projectID)
	if err != nil {
		return nil, err
	}

	project, err := hasAccess(ctx, s.projects, id, userID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectAccessDenied
	}

	return s.todos.Search(ctx, id, strings.TrimSpace(term))
}

// findAccessible loads a task and verifies the user can reach it through
// its project. Access failure is reported as Forbidden, distinct from the
// task itself being absent.
func (s *TaskService) findAccessible(ctx context.Context, taskID, userID string) (*models.Todo, error) {
	id, err := parseObjectID(taskID)
	if err != nil {
		return nil, err
	}

	todo, err := s.todos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, ErrTaskNotFound
	}

	project, err := hasAccess(ctx, s.projects, todo.ProjectID, userID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectAccessDenied
	}
	return todo, nil
}
