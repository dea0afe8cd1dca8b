package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the single application database.
const (
	collProjects    = "projects"
	collTodos       = "todos"
	collInvites     = "project_invites"
	collRequests    = "collaboration_requests"
	collInviteLinks = "project_invite_links"
)

// Store bundles the MongoDB client and the typed repositories. Built once in
// main and passed into the services; there is no ambient connection state.
type Store struct {
	client *mongo.Client

	Projects       ProjectRepository
	Todos          TodoRepository
	Invites        InviteRepository
	Collaborations CollaborationRepository
	InviteLinks    InviteLinkRepository
}

// Connect establishes the MongoDB connection, verifies it with a ping and
// ensures the indexes the query paths rely on.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return &Store{
		client:         client,
		Projects:       &projectRepository{collection: db.Collection(collProjects)},
		Todos:          &todoRepository{collection: db.Collection(collTodos)},
		Invites:        &inviteRepository{collection: db.Collection(collInvites)},
		Collaborations: &collaborationRepository{collection: db.Collection(collRequests)},
		InviteLinks:    &inviteLinkRepository{collection: db.Collection(collInviteLinks)},
	}, nil
}

// Disconnect tears down the MongoDB connection.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		collProjects: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "collaborators.id", Value: 1}}},
		},
		collTodos: {
			{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		collInvites: {
			{Keys: bson.D{{Key: "toUserId", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "fromUserId", Value: 1}, {Key: "status", Value: 1}}},
		},
		collRequests: {
			{Keys: bson.D{{Key: "toUserId", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "fromUserId", Value: 1}, {Key: "status", Value: 1}}},
		},
		collInviteLinks: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdBy", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
