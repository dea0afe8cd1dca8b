package services

import (
	"context"
	"strings"
	"time"

	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/repositories"
)

type ProjectService struct {
	projects repositories.ProjectRepository
	todos    repositories.TodoRepository
}

func NewProjectService(projects repositories.ProjectRepository, todos repositories.TodoRepository) *ProjectService {
	return &ProjectService{projects: projects, todos: todos}
}

type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateProject creates a project owned by the acting user, with an empty
// collaborator list.
func (s *ProjectService) CreateProject(ctx context.Context, owner models.UserMeta, input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	color := input.Color
	if color == "" {
		color = models.DefaultProjectColor
	}

	now := time.Now().UTC()
	project := &models.Project{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		OwnerID:       owner.ID,
		OwnerEmail:    owner.Email,
		OwnerName:     owner.Name,
		OwnerImage:    owner.Image,
		Color:         color,
		Collaborators: []models.Collaborator{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s created by user %s", project.ID.Hex(), owner.ID)
	return project, nil
}

// ListProjects returns all projects the user owns or collaborates on,
// newest first.
func (s *ProjectService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projects.ListForUser(ctx, userID)
}

// GetProject fetches a single project the user has access to. Existence and
// access failures are merged into one not-found error.
func (s *ProjectService) GetProject(ctx context.Context, projectID, userID string) (*models.Project, error) {
	id, err := parseObjectID(projectID)
	if err != nil {
		return nil, err
	}

	project, err := hasAccess(ctx, s.projects, id, userID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// UpdateProject applies the owner-editable fields. Only the owner may
// update; non-owners get the merged not-found error.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID, userID string, patch models.ProjectPatch) (*models.Project, error) {
	id, err := parseObjectID(projectID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrNameRequired
	}

	project, err := s.projects.UpdateOwned(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotProjectOwner
	}
	return project, nil
}

// DeleteProject removes the project and cascades to its tasks. The cascade
// is two separate store operations; the project is removed first so the
// tasks cannot be reached through it while the delete is in flight.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID string) error {
	id, err := parseObjectID(projectID)
	if err != nil {
		return err
	}

	deleted, err := s.projects.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotProjectOwner
	}

	count, err := s.todos.DeleteByProject(ctx, id)
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_CASCADE_FAILED, Description: Project %s deleted but task cascade failed: %v", projectID, err)
		return err
	}

	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s and %d tasks deleted by user %s", projectID, count, userID)
	return nil
}

// RemoveCollaborator removes the collaborator from the project. Owner-only;
// removing someone who is not a collaborator is a no-op.
func (s *ProjectService) RemoveCollaborator(ctx context.Context, projectID, userID, collaboratorID string) (*models.Project, error) {
	if collaboratorID == "" {
		return nil, ErrCollaboratorRequired
	}
	id, err := parseObjectID(projectID)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.OwnerID != userID {
		return nil, ErrNotProjectOwner
	}

	if err := s.projects.RemoveCollaborator(ctx, id, collaboratorID); err != nil {
		return nil, err
	}
	return s.projects.FindByID(ctx, id)
}

// LeaveProject removes the acting user from the collaborator list. Owners
// cannot leave their own project; they must delete it instead.
func (s *ProjectService) LeaveProject(ctx context.Context, projectID, userID string) error {
	id, err := parseObjectID(projectID)
	if err != nil {
		return err
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotCollaborator
	}
	if project.OwnerID == userID {
		return ErrOwnerCannotLeave
	}
	if !project.HasCollaborator(userID) {
		return ErrNotCollaborator
	}

	if err := s.projects.RemoveCollaborator(ctx, id, userID); err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: PROJECT_LEFT, Description: User %s left project %s", userID, projectID)
	return nil
}
