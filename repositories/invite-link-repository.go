package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/animekoon434-afk/SyncTask/models"
)

type inviteLinkRepository struct {
	collection *mongo.Collection
}

func (r *inviteLinkRepository) Insert(ctx context.Context, link *models.ProjectInviteLink) error {
	result, err := r.collection.InsertOne(ctx, link)
	if err != nil {
		return fmt.Errorf("failed to insert invite link: %w", err)
	}
	link.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *inviteLinkRepository) FindActiveByToken(ctx context.Context, token string) (*models.ProjectInviteLink, error) {
	var link models.ProjectInviteLink
	err := r.collection.FindOne(ctx, bson.M{"token": token, "isActive": true}).Decode(&link)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invite link: %w", err)
	}
	return &link, nil
}

func (r *inviteLinkRepository) FindActiveByCreator(ctx context.Context, projectID primitive.ObjectID, createdBy string) (*models.ProjectInviteLink, error) {
	filter := bson.M{
		"projectId": projectID,
		"createdBy": createdBy,
		"isActive":  true,
	}

	var link models.ProjectInviteLink
	err := r.collection.FindOne(ctx, filter).Decode(&link)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invite link: %w", err)
	}
	return &link, nil
}

func (r *inviteLinkRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": nowUTC()}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to deactivate invite link: %w", err)
	}
	return nil
}
