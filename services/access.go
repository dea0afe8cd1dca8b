package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/repositories"
)

// hasAccess is the single access-control check: it returns the project when
// the user is its owner or a collaborator and (nil, nil) otherwise. Every
// task operation and the member-gated project operations go through it.
func hasAccess(ctx context.Context, projects repositories.ProjectRepository, projectID primitive.ObjectID, userID string) (*models.Project, error) {
	project, err := projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || !project.HasAccess(userID) {
		return nil, nil
	}
	return project, nil
}

// parseObjectID converts a hex id from the request path into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objectID, nil
}
