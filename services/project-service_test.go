package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animekoon434-afk/SyncTask/models"
)

var (
	owner    = models.UserMeta{ID: "user_owner", Email: "owner@synctask.io", Name: "Owner"}
	member   = models.UserMeta{ID: "user_member", Email: "member@synctask.io", Name: "Member"}
	stranger = models.UserMeta{ID: "user_stranger", Email: "stranger@synctask.io", Name: "Stranger"}
)

func newProjectService() (*ProjectService, *fakeProjectRepo, *fakeTodoRepo) {
	projects := newFakeProjectRepo()
	todos := newFakeTodoRepo()
	return NewProjectService(projects, todos), projects, todos
}

func seedProject(t *testing.T, svc *ProjectService, projects *fakeProjectRepo) *models.Project {
	t.Helper()
	project, err := svc.CreateProject(context.Background(), owner, CreateProjectInput{Name: "Roadmap"})
	require.NoError(t, err)
	added, err := projects.AddCollaborator(context.Background(), project.ID, models.Collaborator{ID: member.ID, Email: member.Email, Name: member.Name})
	require.NoError(t, err)
	require.True(t, added)
	return project
}

func TestCreateProjectDefaults(t *testing.T) {
	svc, _, _ := newProjectService()

	project, err := svc.CreateProject(context.Background(), owner, CreateProjectInput{Name: "  Roadmap  "})
	require.NoError(t, err)

	assert.Equal(t, "Roadmap", project.Name)
	assert.Equal(t, models.DefaultProjectColor, project.Color)
	assert.Equal(t, owner.ID, project.OwnerID)
	assert.NotNil(t, project.Collaborators)
	assert.Empty(t, project.Collaborators)
	assert.False(t, project.ID.IsZero())
}

func TestCreateProjectRequiresName(t *testing.T) {
	svc, _, _ := newProjectService()

	_, err := svc.CreateProject(context.Background(), owner, CreateProjectInput{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestGetProjectAccess(t *testing.T) {
	svc, projects, _ := newProjectService()
	project := seedProject(t, svc, projects)

	cases := []struct {
		name    string
		user    string
		wantErr error
	}{
		{"owner", owner.ID, nil},
		{"collaborator", member.ID, nil},
		{"stranger", stranger.ID, ErrProjectNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.GetProject(context.Background(), project.ID.Hex(), tc.user)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, project.ID, got.ID)
		})
	}
}

func TestGetProjectInvalidID(t *testing.T) {
	svc, _, _ := newProjectService()

	_, err := svc.GetProject(context.Background(), "not-an-id", owner.ID)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUpdateProjectOwnerOnly(t *testing.T) {
	svc, projects, _ := newProjectService()
	project := seedProject(t, svc, projects)

	name := "Roadmap v2"
	_, err := svc.UpdateProject(context.Background(), project.ID.Hex(), member.ID, models.ProjectPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotProjectOwner)

	updated, err := svc.UpdateProject(context.Background(), project.ID.Hex(), owner.ID, models.ProjectPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Roadmap v2", updated.Name)
}

func TestUpdateProjectRejectsBlankName(t *testing.T) {
	svc, projects, _ := newProjectService()
	project := seedProject(t, svc, projects)

	blank := "  "
	_, err := svc.UpdateProject(context.Background(), project.ID.Hex(), owner.ID, models.ProjectPatch{Name: &blank})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestDeleteProjectCascadesTasks(t *testing.T) {
	svc, projects, todos := newProjectService()
	project := seedProject(t, svc, projects)

	require.NoError(t, todos.Insert(context.Background(), &models.Todo{Title: "ship it", ProjectID: project.ID}))
	require.NoError(t, todos.Insert(context.Background(), &models.Todo{Title: "test it", ProjectID: project.ID}))

	err := svc.DeleteProject(context.Background(), project.ID.Hex(), member.ID)
	assert.ErrorIs(t, err, ErrNotProjectOwner)

	require.NoError(t, svc.DeleteProject(context.Background(), project.ID.Hex(), owner.ID))

	remaining, err := todos.ListByProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = svc.GetProject(context.Background(), project.ID.Hex(), owner.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRemoveCollaborator(t *testing.T) {
	svc, projects, _ := newProjectService()
	project := seedProject(t, svc, projects)

	_, err := svc.RemoveCollaborator(context.Background(), project.ID.Hex(), member.ID, member.ID)
	assert.ErrorIs(t, err, ErrNotProjectOwner)

	updated, err := svc.RemoveCollaborator(context.Background(), project.ID.Hex(), owner.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, updated.HasCollaborator(member.ID))

	// removing an already-absent collaborator stays a no-op
	again, err := svc.RemoveCollaborator(context.Background(), project.ID.Hex(), owner.ID, member.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Collaborators)
}

func TestLeaveProject(t *testing.T) {
	svc, projects, _ := newProjectService()
	project := seedProject(t, svc, projects)

	assert.ErrorIs(t, svc.LeaveProject(context.Background(), project.ID.Hex(), owner.ID), ErrOwnerCannotLeave)
	assert.ErrorIs(t, svc.LeaveProject(context.Background(), project.ID.Hex(), stranger.ID), ErrNotCollaborator)

	require.NoError(t, svc.LeaveProject(context.Background(), project.ID.Hex(), member.ID))

	refreshed, err := projects.FindByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.HasCollaborator(member.ID))
}

func TestListProjectsScopedToUser(t *testing.T) {
	svc, projects, _ := newProjectService()
	seedProject(t, svc, projects)
	_, err := svc.CreateProject(context.Background(), stranger, CreateProjectInput{Name: "Private"})
	require.NoError(t, err)

	mine, err := svc.ListProjects(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Roadmap", mine[0].Name)
}
