package services

import (
	"context"
	"time"

	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/repositories"
)

// CollaborationService owns the task-scoped sharing flow. It predates the
// project-level invites and operates on per-task ownership (the creator),
// so the two workflows stay separate.
type CollaborationService struct {
	requests repositories.CollaborationRepository
	todos    repositories.TodoRepository
}

func NewCollaborationService(requests repositories.CollaborationRepository, todos repositories.TodoRepository) *CollaborationService {
	return &CollaborationService{requests: requests, todos: todos}
}

type SendRequestInput struct {
	TaskID      string `json:"taskId"`
	ToUserID    string `json:"toUserId"`
	ToUserEmail string `json:"toUserEmail"`
}

// SendRequest creates a pending collaboration request from the task owner.
// Same guard order as project invites, scoped to the task.
func (s *CollaborationService) SendRequest(ctx context.Context, from models.UserMeta, input SendRequestInput) (*models.CollaborationRequest, error) {
	if input.TaskID == "" {
		return nil, ErrInvalidID
	}
	if input.ToUserID == "" || input.ToUserEmail == "" {
		return nil, ErrRecipientRequired
	}
	taskID, err := parseObjectID(input.TaskID)
	if err != nil {
		return nil, err
	}

	task, err := s.todos.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.CreatedBy != from.ID {
		return nil, ErrNotTaskOwner
	}
	if task.HasCollaborator(input.ToUserID) {
		return nil, ErrAlreadyCollaborator
	}

	existing, err := s.requests.FindPending(ctx, taskID, input.ToUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRequestPending
	}

	now := time.Now().UTC()
	request := &models.CollaborationRequest{
		TaskID:        taskID,
		TaskTitle:     task.Title,
		FromUserID:    from.ID,
		FromUserEmail: from.Email,
		FromUserName:  from.Name,
		FromUserImage: from.Image,
		ToUserID:      input.ToUserID,
		ToUserEmail:   input.ToUserEmail,
		Status:        models.InviteStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.requests.Insert(ctx, request); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: COLLAB_REQUEST_SENT, Description: Collaboration request %s sent for task %s to user %s", request.ID.Hex(), input.TaskID, input.ToUserID)
	return request, nil
}

// GetPendingRequests returns requests awaiting the user's decision.
func (s *CollaborationService) GetPendingRequests(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	return s.requests.ListPendingForUser(ctx, userID)
}

// GetSentRequests returns requests the user sent, so the sender can track
// their outcome.
func (s *CollaborationService) GetSentRequests(ctx context.Context, userID string) ([]models.CollaborationRequest, error) {
	return s.requests.ListSentByUser(ctx, userID)
}

// AcceptRequest adds the recipient to the task's collaborators and then
// flips the request to accepted, in that order.
func (s *CollaborationService) AcceptRequest(ctx context.Context, requestID string, acting models.UserMeta) (*models.CollaborationRequest, error) {
	request, err := s.findPendingFor(ctx, requestID, acting.ID)
	if err != nil {
		return nil, err
	}

	collaborator := models.Collaborator{
		ID:    acting.ID,
		Email: firstNonEmpty(acting.Email, request.ToUserEmail),
		Name:  acting.Name,
		Image: acting.Image,
	}
	if _, err := s.todos.AddCollaborator(ctx, request.TaskID, collaborator); err != nil {
		return nil, err
	}

	accepted, err := s.requests.Transition(ctx, request.ID, acting.ID, models.InviteStatusAccepted)
	if err != nil {
		return nil, err
	}
	if accepted == nil {
		return nil, ErrNoLongerPending
	}

	logging.Logger.Infof("Event ID: COLLAB_REQUEST_ACCEPTED, Description: Collaboration request %s accepted by user %s", requestID, acting.ID)
	return accepted, nil
}

// DeclineRequest resolves a pending request to declined.
func (s *CollaborationService) DeclineRequest(ctx context.Context, requestID, actingUserID string) (*models.CollaborationRequest, error) {
	request, err := s.findPendingFor(ctx, requestID, actingUserID)
	if err != nil {
		return nil, err
	}

	declined, err := s.requests.Transition(ctx, request.ID, actingUserID, models.InviteStatusDeclined)
	if err != nil {
		return nil, err
	}
	if declined == nil {
		return nil, ErrNoLongerPending
	}
	return declined, nil
}

func (s *CollaborationService) findPendingFor(ctx context.Context, requestID, userID string) (*models.CollaborationRequest, error) {
	id, err := parseObjectID(requestID)
	if err != nil {
		return nil, err
	}

	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.ToUserID != userID {
		return nil, ErrNotRecipient
	}
	if request.Status != models.InviteStatusPending {
		return nil, ErrNoLongerPending
	}
	return request, nil
}
