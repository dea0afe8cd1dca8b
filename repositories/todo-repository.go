package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/animekoon434-afk/SyncTask/models"
)

type todoRepository struct {
	collection *mongo.Collection
}

func (r *todoRepository) Insert(ctx context.Context, todo *models.Todo) error {
	result, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	todo.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *todoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	var todo models.Todo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &todo, nil
}

func (r *todoRepository) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	todos := []models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.TodoPatch) (*models.Todo, error) {
	set := bson.M{
		"updatedAt":      nowUTC(),
		"updatedBy":      patch.UpdatedBy,
		"updatedByName":  patch.UpdatedByName,
		"updatedByImage": patch.UpdatedByImage,
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo models.Todo
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *todoRepository) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete project tasks: %w", err)
	}
	return result.DeletedCount, nil
}

// Search matches the term case-insensitively against task titles within the
// project. The term is quoted so regex metacharacters search literally.
func (r *todoRepository) Search(ctx context.Context, projectID primitive.ObjectID, term string) ([]models.Todo, error) {
	filter := bson.M{
		"projectId": projectID,
		"title":     bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	defer cursor.Close(ctx)

	todos := []models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) AddCollaborator(ctx context.Context, id primitive.ObjectID, collaborator models.Collaborator) (bool, error) {
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
		return false, fmt.Errorf("failed to add task collaborator: %w", err)
	}
	return result.ModifiedCount > 0, nil
}
