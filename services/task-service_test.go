package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animekoon434-afk/SyncTask/models"
)

type taskFixture struct {
	svc      *TaskService
	projects *fakeProjectRepo
	todos    *fakeTodoRepo
	project  *models.Project
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	projects := newFakeProjectRepo()
	todos := newFakeTodoRepo()

	project := &models.Project{
		Name:          "Roadmap",
		OwnerID:       owner.ID,
		Collaborators: []models.Collaborator{{ID: member.ID, Email: member.Email}},
	}
	require.NoError(t, projects.Insert(context.Background(), project))

	return &taskFixture{
		svc:      NewTaskService(todos, projects),
		projects: projects,
		todos:    todos,
		project:  project,
	}
}

func (f *taskFixture) create(t *testing.T, creator models.UserMeta, title string) *models.Todo {
	t.Helper()
	todo, err := f.svc.CreateTask(context.Background(), creator, CreateTaskInput{
		ProjectID: f.project.ID.Hex(),
		Title:     title,
	})
	require.NoError(t, err)
	return todo
}

func TestCreateTaskDefaultsAndValidation(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateTask(ctx, owner, CreateTaskInput{ProjectID: f.project.ID.Hex(), Title: "  "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = f.svc.CreateTask(ctx, owner, CreateTaskInput{Title: "orphan"})
	assert.ErrorIs(t, err, ErrProjectIDRequired)

	_, err = f.svc.CreateTask(ctx, stranger, CreateTaskInput{ProjectID: f.project.ID.Hex(), Title: "sneak in"})
	assert.ErrorIs(t, err, ErrProjectAccessDenied)

	_, err = f.svc.CreateTask(ctx, owner, CreateTaskInput{ProjectID: f.project.ID.Hex(), Title: "bad", Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.CreateTask(ctx, owner, CreateTaskInput{ProjectID: f.project.ID.Hex(), Title: "bad", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	todo := f.create(t, member, "First task")
	assert.Equal(t, models.StatusPending, todo.Status)
	assert.Equal(t, models.PriorityMedium, todo.Priority)
	assert.Equal(t, member.ID, todo.CreatedBy)
	assert.Empty(t, todo.Collaborators)
}

func TestGetTaskAccessDerivedFromProject(t *testing.T) {
	f := newTaskFixture(t)
	todo := f.create(t, owner, "Shared task")

	got, err := f.svc.GetTask(context.Background(), todo.ID.Hex(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, got.ID)

	_, err = f.svc.GetTask(context.Background(), todo.ID.Hex(), stranger.ID)
	assert.ErrorIs(t, err, ErrProjectAccessDenied)

	_, err = f.svc.GetTask(context.Background(), "62f0c0ffee62f0c0ffee62f0", owner.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTaskStampsUpdater(t *testing.T) {
	f := newTaskFixture(t)
	todo := f.create(t, owner, "Review PR")

	status := models.StatusCompleted
	updated, err := f.svc.UpdateTask(context.Background(), todo.ID.Hex(), member, models.TodoPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, member.ID, updated.UpdatedBy)
	assert.Equal(t, member.Name, updated.UpdatedByName)

	bad := models.TaskStatus("archived")
	_, err = f.svc.UpdateTask(context.Background(), todo.ID.Hex(), member, models.TodoPatch{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	blank := " "
	_, err = f.svc.UpdateTask(context.Background(), todo.ID.Hex(), member, models.TodoPatch{Title: &blank})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestDeleteTask(t *testing.T) {
	f := newTaskFixture(t)
	todo := f.create(t, owner, "Throwaway")

	assert.ErrorIs(t, f.svc.DeleteTask(context.Background(), todo.ID.Hex(), stranger.ID), ErrProjectAccessDenied)
	require.NoError(t, f.svc.DeleteTask(context.Background(), todo.ID.Hex(), member.ID))

	_, err := f.svc.GetTask(context.Background(), todo.ID.Hex(), owner.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSearchTasks(t *testing.T) {
	f := newTaskFixture(t)
	f.create(t, owner, "Fix login redirect")
	f.create(t, owner, "Polish login form")
	f.create(t, owner, "Write changelog")

	_, err := f.svc.SearchTasks(context.Background(), f.project.ID.Hex(), owner.ID, "  ")
	assert.ErrorIs(t, err, ErrSearchTermRequired)

	_, err = f.svc.SearchTasks(context.Background(), f.project.ID.Hex(), stranger.ID, "login")
	assert.ErrorIs(t, err, ErrProjectAccessDenied)

	found, err := f.svc.SearchTasks(context.Background(), f.project.ID.Hex(), member.ID, "LOGIN")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := f.svc.SearchTasks(context.Background(), f.project.ID.Hex(), member.ID, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListTasksMemberOnly(t *testing.T) {
	f := newTaskFixture(t)
	f.create(t, owner, "One")
	f.create(t, member, "Two")

	tasks, err := f.svc.ListTasks(context.Background(), f.project.ID.Hex(), member.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	_, err = f.svc.ListTasks(context.Background(), f.project.ID.Hex(), stranger.ID)
	assert.ErrorIs(t, err, ErrProjectAccessDenied)
}
