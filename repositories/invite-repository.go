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

type inviteRepository struct {
	collection *mongo.Collection
}

func (r *inviteRepository) Insert(ctx context.Context, invite *models.ProjectInvite) error {
	result, err := r.collection.InsertOne(ctx, invite)
	if err != nil {
		return fmt.Errorf("failed to insert invite: %w", err)
	}
	invite.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *inviteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectInvite, error) {
	var invite models.ProjectInvite
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invite)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invite: %w", err)
	}
	return &invite, nil
}

func (r *inviteRepository) FindPending(ctx context.Context, projectID primitive.ObjectID, toUserID string) (*models.ProjectInvite, error) {
	filter := bson.M{
		"projectId": projectID,
		"toUserId":  toUserID,
		"status":    models.InviteStatusPending,
	}

	var invite models.ProjectInvite
	err := r.collection.FindOne(ctx, filter).Decode(&invite)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending invite: %w", err)
	}
	return &invite, nil
}

func (r *inviteRepository) ListPendingForUser(ctx context.Context, userID string) ([]models.ProjectInvite, error) {
	filter := bson.M{"toUserId": userID, "status": models.InviteStatusPending}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invites: %w", err)
	}
	defer cursor.Close(ctx)

	invites := []models.ProjectInvite{}
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, fmt.Errorf("failed to decode invites: %w", err)
	}
	return invites, nil
}

// Transition is the compare-and-swap on invite status: it matches only a
// pending invite addressed to toUserID, so a concurrent accept and decline
// cannot both succeed.
func (r *inviteRepository) Transition(ctx context.Context, id primitive.ObjectID, toUserID string, status models.InviteStatus) (*models.ProjectInvite, error) {
	filter := bson.M{
		"_id":      id,
		"toUserId": toUserID,
		"status":   models.InviteStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": nowUTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var invite models.ProjectInvite
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&invite)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to transition invite: %w", err)
	}
	return &invite, nil
}
