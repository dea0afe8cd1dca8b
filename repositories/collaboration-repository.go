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

type collaborationRepository struct {
	collection *mongo.Collection
}

func (r *collaborationRepository) Insert(ctx context.Context, request *models.CollaborationRequest) error {
	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to insert collaboration request: %w", err)
	}
	request.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *collaborationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error) {
	var request models.CollaborationRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collaboration request: %w", err)
	}
	return &request, nil
}

func (r *collaborationRepository) FindPending(ctx context.Context, taskID primitive.ObjectID, toUserID string) (*models.CollaborationRequest, error) {
	filter := bson.M{
		"taskId":   taskID,
		"toUserId": toUserID,
		"status":   models.InviteStatusPending,
	}

	var request models.CollaborationRequest
	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending collaboration request: %w", err)
	}
	return &request, nil
}

func (r *collaborationRepository) ListPendingForUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	filter := bson.M{"toUserId": userID, "status": models.InviteStatusPending}
	return r.list(ctx, filter)
}

func (r *collaborationRepository) ListSentByUser(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	return r.list(ctx, bson.M{"fromUserId": userID})
}

func (r *collaborationRepository) list(ctx context.Context, filter bson.M) ([]models.CollaborationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaboration requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.CollaborationRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode collaboration requests: %w", err)
	}
	return requests, nil
}

// Transition mirrors the invite CAS: only a pending request addressed to
// toUserID can be resolved, exactly once.
func (r *collaborationRepository) Transition(ctx context.Context, id primitive.ObjectID, toUserID string, status models.InviteStatus) (*models.CollaborationRequest, error) {
	filter := bson.M{
		"_id":      id,
		"toUserId": toUserID,
		"status":   models.InviteStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": nowUTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var request models.CollaborationRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&request)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to transition collaboration request: %w", err)
	}
	return &request, nil
}
