package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Todo is a single task inside a project. CreatedBy is kept under the legacy
// "userId" key: the task-sharing flow treats the creator as the per-task
// owner, independent of project ownership.
type Todo struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Status         TaskStatus         `json:"status" bson:"status"`
	Priority       TaskPriority       `json:"priority" bson:"priority"`
	ProjectID      primitive.ObjectID `json:"projectId" bson:"projectId"`
	CreatedBy      string             `json:"createdBy" bson:"userId"`
	CreatedByName  string             `json:"createdByName" bson:"createdByName"`
	CreatedByImage string             `json:"createdByImage" bson:"createdByImage"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
	UpdatedByName  string             `json:"updatedByName" bson:"updatedByName"`
	UpdatedByImage string             `json:"updatedByImage" bson:"updatedByImage"`
	Collaborators  []Collaborator     `json:"collaborators" bson:"collaborators"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidStatus reports whether s is one of the three task states.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the three priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// HasCollaborator reports whether the user is in the task's collaborator list.
func (t *Todo) HasCollaborator(userID string) bool {
	for _, c := range t.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}
