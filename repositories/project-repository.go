package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/animekoon434-afk/SyncTask/models"
)

type projectRepository struct {
	collection *mongo.Collection
}

func (r *projectRepository) Insert(ctx context.Context, project *models.Project) error {
	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *projectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return &project, nil
}

// ListForUser returns projects owned by the user or listing them as a
// collaborator, newest first.
func (r *projectRepository) ListForUser(ctx context.Context, userID string) ([]models.Project, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"ownerId": userID},
		bson.M{"collaborators.id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// UpdateOwned applies the patch only when the user owns the project, in a
// single conditional update. Returns (nil, nil) when nothing matched.
func (r *projectRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerID string, patch models.ProjectPatch) (*models.Project, error) {
	set := bson.M{"updatedAt": nowUTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}

	filter := bson.M{"_id": id, "ownerId": ownerID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project models.Project
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// AddCollaborator pushes the collaborator unless an entry with the same id
// already exists; the guard filter makes the push set-like and atomic.
func (r *projectRepository) AddCollaborator(ctx context.Context, id primitive.ObjectID, collaborator models.Collaborator) (bool, error) {
	filter := bson.M{
		"_id":              id,
		"collaborators.id": bson.M{"$ne": collaborator.ID},
	}
	update := bson.M{
		"$push": bson.M{"collaborators": collaborator},
		"$set":  bson.M{"updatedAt": nowUTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to add collaborator: %w", err)
	}
	return result.ModifiedCount > 0, nil
}

// RemoveCollaborator pulls the entry if present; removing an absent
// collaborator is a no-op.
func (r *projectRepository) RemoveCollaborator(ctx context.Context, id primitive.ObjectID, collaboratorID string) error {
	update := bson.M{
		"$pull": bson.M{"collaborators": bson.M{"id": collaboratorID}},
		"$set":  bson.M{"updatedAt": nowUTC()},
	}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to remove collaborator: %w", err)
	}
	return nil
}
