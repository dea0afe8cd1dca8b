package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/animekoon434-afk/SyncTask/models"
)

// In-memory repository fakes mirroring the MongoDB semantics the services
// rely on: guarded collaborator pushes, conditional status transitions and
// newest-first listings.

type fakeProjectRepo struct {
	projects   map[primitive.ObjectID]*models.Project
	addCollErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[primitive.ObjectID]*models.Project{}}
}

func (r *fakeProjectRepo) Insert(_ context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	clone := *project
	clone.Collaborators = append([]models.Collaborator{}, project.Collaborators...)
	return &clone, nil
}

func (r *fakeProjectRepo) ListForUser(_ context.Context, userID string) ([]models.Project, error) {
	result := []models.Project{}
	for _, p := range r.projects {
		if p.HasAccess(userID) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeProjectRepo) UpdateOwned(_ context.Context, id primitive.ObjectID, ownerID string, patch models.ProjectPatch) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok || project.OwnerID != ownerID {
		return nil, nil
	}
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Color != nil {
		project.Color = *patch.Color
	}
	clone := *project
	return &clone, nil
}

func (r *fakeProjectRepo) DeleteOwned(_ context.Context, id primitive.ObjectID, ownerID string) (bool, error) {
	project, ok := r.projects[id]
	if !ok || project.OwnerID != ownerID {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

func (r *fakeProjectRepo) AddCollaborator(_ context.Context, id primitive.ObjectID, collaborator models.Collaborator) (bool, error) {
	if r.addCollErr != nil {
		return false, r.addCollErr
	}
	project, ok := r.projects[id]
	if !ok || project.HasCollaborator(collaborator.ID) {
		return false, nil
	}
	project.Collaborators = append(project.Collaborators, collaborator)
	return true, nil
}

func (r *fakeProjectRepo) RemoveCollaborator(_ context.Context, id primitive.ObjectID, collaboratorID string) error {
	project, ok := r.projects[id]
	if !ok {
		return nil
	}
	kept := project.Collaborators[:0]
	for _, c := range project.Collaborators {
		if c.ID != collaboratorID {
			kept = append(kept, c)
		}
	}
	project.Collaborators = kept
	return nil
}

type fakeTodoRepo struct {
	todos map[primitive.ObjectID]*models.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[primitive.ObjectID]*models.Todo{}}
}

func (r *fakeTodoRepo) Insert(_ context.Context, todo *models.Todo) error {
	todo.ID = primitive.NewObjectID()
	clone := *todo
	r.todos[todo.ID] = &clone
	return nil
}

func (r *fakeTodoRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, nil
	}
	clone := *todo
	clone.Collaborators = append([]models.Collaborator{}, todo.Collaborators...)
	return &clone, nil
}

func (r *fakeTodoRepo) ListByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Todo, error) {
	result := []models.Todo{}
	for _, t := range r.todos {
		if t.ProjectID == projectID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, id primitive.ObjectID, patch models.TodoPatch) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Status != nil {
		todo.Status = *patch.Status
	}
	if patch.Priority != nil {
		todo.Priority = *patch.Priority
	}
	todo.UpdatedBy = patch.UpdatedBy
	todo.UpdatedByName = patch.UpdatedByName
	todo.UpdatedByImage = patch.UpdatedByImage
	clone := *todo
	return &clone, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.todos[id]; !ok {
		return false, nil
	}
	delete(r.todos, id)
	return true, nil
}

func (r *fakeTodoRepo) DeleteByProject(_ context.Context, projectID primitive.ObjectID) (int64, error) {
	var count int64
	for id, t := range r.todos {
		if t.ProjectID == projectID {
			delete(r.todos, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeTodoRepo) Search(_ context.Context, projectID primitive.ObjectID, term string) ([]models.Todo, error) {
	result := []models.Todo{}
	for _, t := range r.todos {
		if t.ProjectID == projectID && strings.Contains(strings.ToLower(t.Title), strings.ToLower(term)) {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeTodoRepo) AddCollaborator(_ context.Context, id primitive.ObjectID, collaborator models.Collaborator) (bool, error) {
	todo, ok := r.todos[id]
	if !ok || todo.HasCollaborator(collaborator.ID) {
		return false, nil
	}
	todo.Collaborators = append(todo.Collaborators, collaborator)
	return true, nil
}

type fakeInviteRepo struct {
	invites map[primitive.ObjectID]*models.ProjectInvite
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: map[primitive.ObjectID]*models.ProjectInvite{}}
}

func (r *fakeInviteRepo) Insert(_ context.Context, invite *models.ProjectInvite) error {
	invite.ID = primitive.NewObjectID()
	clone := *invite
	r.invites[invite.ID] = &clone
	return nil
}

func (r *fakeInviteRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.ProjectInvite, error) {
	invite, ok := r.invites[id]
	if !ok {
		return nil, nil
	}
	clone := *invite
	return &clone, nil
}

func (r *fakeInviteRepo) FindPending(_ context.Context, projectID primitive.ObjectID, toUserID string) (*models.ProjectInvite, error) {
	for _, inv := range r.invites {
		if inv.ProjectID == projectID && inv.ToUserID == toUserID && inv.Status == models.InviteStatusPending {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) ListPendingForUser(_ context.Context, userID string) ([]models.ProjectInvite, error) {
	result := []models.ProjectInvite{}
	for _, inv := range r.invites {
		if inv.ToUserID == userID && inv.Status == models.InviteStatusPending {
			result = append(result, *inv)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeInviteRepo) Transition(_ context.Context, id primitive.ObjectID, toUserID string, status models.InviteStatus) (*models.ProjectInvite, error) {
	invite, ok := r.invites[id]
	if !ok || invite.ToUserID != toUserID || invite.Status != models.InviteStatusPending {
		return nil, nil
	}
	invite.Status = status
	clone := *invite
	return &clone, nil
}

type fakeCollaborationRepo struct {
	requests map[primitive.ObjectID]*models.CollaborationRequest
}

func newFakeCollaborationRepo() *fakeCollaborationRepo {
	return &fakeCollaborationRepo{requests: map[primitive.ObjectID]*models.CollaborationRequest{}}
}

func (r *fakeCollaborationRepo) Insert(_ context.Context, request *models.CollaborationRequest) error {
	request.ID = primitive.NewObjectID()
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeCollaborationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *request
	return &clone, nil
}

func (r *fakeCollaborationRepo) FindPending(_ context.Context, taskID primitive.ObjectID, toUserID string) (*models.CollaborationRequest, error) {
	for _, req := range r.requests {
		if req.TaskID == taskID && req.ToUserID == toUserID && req.Status == models.InviteStatusPending {
			clone := *req
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCollaborationRepo) ListPendingForUser(_ context.Context, userID string) ([]models.CollaborationRequest, error) {
	result := []models.CollaborationRequest{}
	for _, req := range r.requests {
		if req.ToUserID == userID && req.Status == models.InviteStatusPending {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeCollaborationRepo) ListSentByUser(_ context.Context, userID string) ([]models.CollaborationRequest, error) {
	result := []models.CollaborationRequest{}
	for _, req := range r.requests {
		if req.FromUserID == userID {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeCollaborationRepo) Transition(_ context.Context, id primitive.ObjectID, toUserID string, status models.InviteStatus) (*models.CollaborationRequest, error) {
	request, ok := r.requests[id]
	if !ok || request.ToUserID != toUserID || request.Status != models.InviteStatusPending {
		return nil, nil
	}
	request.Status = status
	clone := *request
	return &clone, nil
}

type fakeInviteLinkRepo struct {
	links map[primitive.ObjectID]*models.ProjectInviteLink
}

func newFakeInviteLinkRepo() *fakeInviteLinkRepo {
	return &fakeInviteLinkRepo{links: map[primitive.ObjectID]*models.ProjectInviteLink{}}
}

func (r *fakeInviteLinkRepo) Insert(_ context.Context, link *models.ProjectInviteLink) error {
	for _, l := range r.links {
		if l.Token == link.Token {
			return errors.New("duplicate token")
		}
	}
	link.ID = primitive.NewObjectID()
	clone := *link
	r.links[link.ID] = &clone
	return nil
}

func (r *fakeInviteLinkRepo) FindActiveByToken(_ context.Context, token string) (*models.ProjectInviteLink, error) {
	for _, l := range r.links {
		if l.Token == token && l.IsActive {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteLinkRepo) FindActiveByCreator(_ context.Context, projectID primitive.ObjectID, createdBy string) (*models.ProjectInviteLink, error) {
	for _, l := range r.links {
		if l.ProjectID == projectID && l.CreatedBy == createdBy && l.IsActive {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteLinkRepo) Deactivate(_ context.Context, id primitive.ObjectID) error {
	if link, ok := r.links[id]; ok {
		link.IsActive = false
	}
	return nil
}
