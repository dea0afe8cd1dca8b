package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collaborator is a non-owner user granted access to a project. The id is
// the identity-provider user id, not a local ObjectID.
type Collaborator struct {
	ID    string `bson:"id" json:"id"`
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
}

type Project struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	OwnerID       string             `json:"ownerId" bson:"ownerId"`
	OwnerEmail    string             `json:"ownerEmail" bson:"ownerEmail"`
	OwnerName     string             `json:"ownerName" bson:"ownerName"`
	OwnerImage    string             `json:"ownerImage" bson:"ownerImage"`
	Color         string             `json:"color" bson:"color"`
	Collaborators []Collaborator     `json:"collaborators" bson:"collaborators"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DefaultProjectColor is applied when a project is created without a color.
const DefaultProjectColor = "#8B5CF6"

// HasCollaborator reports whether the given user id is in the collaborator
// list. The owner is never listed as a collaborator.
func (p *Project) HasCollaborator(userID string) bool {
	for _, c := range p.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}

// HasAccess reports whether the user is the owner or a collaborator.
func (p *Project) HasAccess(userID string) bool {
	return p.OwnerID == userID || p.HasCollaborator(userID)
}
