package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InviteStatus is shared by project invites and collaboration requests:
// pending -> accepted | declined, terminal once resolved.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// ProjectInvite is an owner-initiated invitation of a specific user to a
// project. Project name and color are snapshots taken at creation time.
type ProjectInvite struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID     primitive.ObjectID `json:"projectId" bson:"projectId"`
	ProjectName   string             `json:"projectName" bson:"projectName"`
	ProjectColor  string             `json:"projectColor" bson:"projectColor"`
	FromUserID    string             `json:"fromUserId" bson:"fromUserId"`
	FromUserEmail string             `json:"fromUserEmail" bson:"fromUserEmail"`
	FromUserName  string             `json:"fromUserName" bson:"fromUserName"`
	FromUserImage string             `json:"fromUserImage" bson:"fromUserImage"`
	ToUserID      string             `json:"toUserId" bson:"toUserId"`
	ToUserEmail   string             `json:"toUserEmail" bson:"toUserEmail"`
	Status        InviteStatus       `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
