package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/animekoon434-afk/SyncTask/models"
)

// The repositories own all MongoDB access. Lookups return (nil, nil) when no
// document matches; conditional writes report whether a document matched so
// the services can distinguish "no access" from store failure.

type ProjectRepository interface {
	Insert(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	ListForUser(ctx context.Context, userID string) ([]models.Project, error)
	UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerID string, patch models.ProjectPatch) (*models.Project, error)
	DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) (bool, error)
	AddCollaborator(ctx context.Context, id primitive.ObjectID, collaborator models.Collaborator) (bool, error)
	RemoveCollaborator(ctx context.Context, id primitive.ObjectID, collaboratorID string) error
}

type TodoRepository interface {
	Insert(ctx context.Context, todo *models.Todo) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Todo, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error)
	Search(ctx context.Context, projectID primitive.ObjectID, term string) ([]models.Todo, error)
	AddCollaborator(ctx context.Context, id primitive.ObjectID, collaborator models.Collaborator) (bool, error)
}

type InviteRepository interface {
	Insert(ctx context.Context, invite *models.ProjectInvite) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectInvite, error)
	FindPending(ctx context.Context, projectID primitive.ObjectID, toUserID string) (*models.ProjectInvite, error)
	ListPendingForUser(ctx context.Context, userID string) ([]models.ProjectInvite, error)
	// Transition flips a pending invite owned by toUserID to the given
	// status in one conditional update. Returns (nil, nil) when the invite
	// is absent, not addressed to the user, or no longer pending.
	Transition(ctx context.Context, id primitive.ObjectID, toUserID string, status models.InviteStatus) (*models.ProjectInvite, error)
}

type CollaborationRepository interface {
	Insert(ctx context.Context, request *models.CollaborationRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error)
	FindPending(ctx context.Context, taskID primitive.ObjectID, toUserID string) (*models.CollaborationRequest, error)
	ListPendingForUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error)
	ListSentByUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error)
	Transition(ctx context.Context, id primitive.ObjectID, toUserID string, status models.InviteStatus) (*models.CollaborationRequest, error)
}

type InviteLinkRepository interface {
	Insert(ctx context.Context, link *models.ProjectInviteLink) error
	FindActiveByToken(ctx context.Context, token string) (*models.ProjectInviteLink, error)
	FindActiveByCreator(ctx context.Context, projectID primitive.ObjectID, createdBy string) (*models.ProjectInviteLink, error)
	// Deactivate is an administrative lever; no workflow calls it.
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}
