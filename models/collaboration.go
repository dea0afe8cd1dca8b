package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollaborationRequest shares a single task with another user. This is the
// task-scoped predecessor of ProjectInvite; both mechanisms coexist and are
// deliberately kept separate.
type CollaborationRequest struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TaskID        primitive.ObjectID `json:"taskId" bson:"taskId"`
	TaskTitle     string             `json:"taskTitle" bson:"taskTitle"`
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
