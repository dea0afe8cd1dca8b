package services

import (
	"context"
	"fmt"
	"time"

	"github.com/animekoon434-afk/SyncTask/logging"
	"github.com/animekoon434-afk/SyncTask/models"
	"github.com/animekoon434-afk/SyncTask/repositories"
	"github.com/animekoon434-afk/SyncTask/utils"
)

// EmailSender delivers best-effort notification emails.
type EmailSender interface {
	Send(to, subject, body string) error
}

// InviteService owns the project-level invitation workflow: direct invites
// and reusable invite links.
type InviteService struct {
	invites  repositories.InviteRepository
	links    repositories.InviteLinkRepository
	projects repositories.ProjectRepository
	email    EmailSender
}

func NewInviteService(invites repositories.InviteRepository, links repositories.InviteLinkRepository, projects repositories.ProjectRepository, email EmailSender) *InviteService {
	return &InviteService{invites: invites, links: links, projects: projects, email: email}
}

type SendInviteInput struct {
	ProjectID   string `json:"projectId"`
	ToUserID    string `json:"toUserId"`
	ToUserEmail string `json:"toUserEmail"`
}

// SendInvite creates a pending invite from the project owner to a specific
// user. Guards, in order: owner relationship, recipient not already a
// collaborator, no other pending invite for the same (project, recipient).
func (s *InviteService) SendInvite(ctx context.Context, from models.UserMeta, input SendInviteInput) (*models.ProjectInvite, error) {
	if input.ProjectID == "" {
		return nil, ErrProjectIDRequired
	}
	if input.ToUserID == "" || input.ToUserEmail == "" {
		return nil, ErrRecipientRequired
	}
	projectID, err := parseObjectID(input.ProjectID)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.OwnerID != from.ID {
		return nil, ErrNotProjectOwner
	}
	if project.HasCollaborator(input.ToUserID) {
		return nil, ErrAlreadyCollaborator
	}

	existing, err := s.invites.FindPending(ctx, projectID, input.ToUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrInvitePending
	}

	now := time.Now().UTC()
	invite := &models.ProjectInvite{
		ProjectID:     projectID,
		ProjectName:   project.Name,
		ProjectColor:  project.Color,
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

	if err := s.invites.Insert(ctx, invite); err != nil {
		return nil, err
	}

	s.notifyInvitee(invite)

	logging.Logger.Infof("Event ID: INVITE_SENT, Description: Invite %s sent for project %s to user %s", invite.ID.Hex(), input.ProjectID, input.ToUserID)
	return invite, nil
}

// GetPendingInvites returns the user's pending invites, newest first.
func (s *InviteService) GetPendingInvites(ctx context.Context, userID string) ([]models.ProjectInvite, error) {
	return s.invites.ListPendingForUser(ctx, userID)
}

// AcceptInvite resolves a pending invite. The collaborator entry is pushed
// into the project before the status flips, so a failed membership write
// leaves the invite pending and retryable.
func (s *InviteService) AcceptInvite(ctx context.Context, inviteID string, acting models.UserMeta) (*models.ProjectInvite, error) {
	invite, err := s.findPendingFor(ctx, inviteID, acting.ID)
	if err != nil {
		return nil, err
	}

	collaborator := models.Collaborator{
		ID:    acting.ID,
		Email: firstNonEmpty(acting.Email, invite.ToUserEmail),
		Name:  acting.Name,
		Image: acting.Image,
	}
	if _, err := s.projects.AddCollaborator(ctx, invite.ProjectID, collaborator); err != nil {
		return nil, err
	}

	accepted, err := s.invites.Transition(ctx, invite.ID, acting.ID, models.InviteStatusAccepted)
	if err != nil {
		return nil, err
	}
	if accepted == nil {
		return nil, ErrNoLongerPending
	}

	logging.Logger.Infof("Event ID: INVITE_ACCEPTED, Description: Invite %s accepted by user %s", inviteID, acting.ID)
	return accepted, nil
}

// DeclineInvite resolves a pending invite to declined. Terminal; a later
// invite to the same user is allowed again.
func (s *InviteService) DeclineInvite(ctx context.Context, inviteID, actingUserID string) (*models.ProjectInvite, error) {
	invite, err := s.findPendingFor(ctx, inviteID, actingUserID)
	if err != nil {
		return nil, err
	}

	declined, err := s.invites.Transition(ctx, invite.ID, actingUserID, models.InviteStatusDeclined)
	if err != nil {
		return nil, err
	}
	if declined == nil {
		return nil, ErrNoLongerPending
	}
	return declined, nil
}

// CreateInviteLink returns the caller's active link for the project,
// minting one only if none exists. Any project member may create a link.
func (s *InviteService) CreateInviteLink(ctx context.Context, projectID string, acting models.UserMeta) (*models.ProjectInviteLink, error) {
	id, err := parseObjectID(projectID)
	if err != nil {
		return nil, err
	}

	project, err := hasAccess(ctx, s.projects, id, acting.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectAccessDenied
	}

	existing, err := s.links.FindActiveByCreator(ctx, id, acting.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	token, err := utils.GenerateInviteToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	link := &models.ProjectInviteLink{
		Token:         token,
		ProjectID:     id,
		ProjectName:   project.Name,
		ProjectColor:  project.Color,
		CreatedBy:     acting.ID,
		CreatedByName: acting.Name,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.links.Insert(ctx, link); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: INVITE_LINK_CREATED, Description: Invite link created for project %s by user %s", projectID, acting.ID)
	return link, nil
}

// GetInviteLinkInfo returns the public view of an active link. Reachable
// without authentication, so it exposes nothing beyond display fields.
func (s *InviteService) GetInviteLinkInfo(ctx context.Context, token string) (*models.InviteLinkInfo, error) {
	link, err := s.links.FindActiveByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return &models.InviteLinkInfo{
		ProjectName:   link.ProjectName,
		ProjectColor:  link.ProjectColor,
		CreatedByName: link.CreatedByName,
	}, nil
}

// AcceptInviteLink adds the acting user to the project behind an active
// link. The link is multi-use and stays active afterwards.
func (s *InviteService) AcceptInviteLink(ctx context.Context, token string, acting models.UserMeta) (*models.Project, error) {
	link, err := s.links.FindActiveByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}

	project, err := s.projects.FindByID(ctx, link.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.OwnerID == acting.ID {
		return nil, ErrAlreadyOwner
	}
	if project.HasCollaborator(acting.ID) {
		return nil, ErrAlreadyMember
	}

	collaborator := models.Collaborator{
		ID:    acting.ID,
		Email: acting.Email,
		Name:  acting.Name,
		Image: acting.Image,
	}
	if _, err := s.projects.AddCollaborator(ctx, link.ProjectID, collaborator); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: INVITE_LINK_ACCEPTED, Description: User %s joined project %s via invite link", acting.ID, link.ProjectID.Hex())
	return s.projects.FindByID(ctx, link.ProjectID)
}

// findPendingFor loads an invite and verifies the acting user is its
// recipient and that it is still pending. The final transition re-checks
// the status atomically; this pass exists to give precise errors.
func (s *InviteService) findPendingFor(ctx context.Context, inviteID, userID string) (*models.ProjectInvite, error) {
	id, err := parseObjectID(inviteID)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}
	if invite.ToUserID != userID {
		return nil, ErrNotRecipient
	}
	if invite.Status != models.InviteStatusPending {
		return nil, ErrNoLongerPending
	}
	return invite, nil
}

func (s *InviteService) notifyInvitee(invite *models.ProjectInvite) {
	if s.email == nil {
		return
	}
	subject := fmt.Sprintf("You have been invited to %s", invite.ProjectName)
	body := fmt.Sprintf("<p>%s invited you to collaborate on <b>%s</b>. Sign in to accept or decline.</p>",
		firstNonEmpty(invite.FromUserName, invite.FromUserEmail), invite.ProjectName)
	if err := s.email.Send(invite.ToUserEmail, subject, body); err != nil {
		logging.Logger.Warnf("Event ID: INVITE_EMAIL_FAILED, Description: Failed to send invite notification to %s: %v", invite.ToUserEmail, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
