package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectInviteLink is a reusable join token for a project. It has no
// per-use state; IsActive is an administrative switch and is never flipped
// by the workflow itself.
type ProjectInviteLink struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Token         string             `json:"token" bson:"token"`
	ProjectID     primitive.ObjectID `json:"projectId" bson:"projectId"`
	ProjectName   string             `json:"projectName" bson:"projectName"`
	ProjectColor  string             `json:"projectColor" bson:"projectColor"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	CreatedByName string             `json:"createdByName" bson:"createdByName"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// InviteLinkInfo is the public view of a link, safe to return to an
// unauthenticated caller holding the token.
type InviteLinkInfo struct {
	ProjectName   string `json:"projectName"`
	ProjectColor  string `json:"projectColor"`
	CreatedByName string `json:"createdByName"`
}
