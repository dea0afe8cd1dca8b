package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/animekoon434-afk/SyncTask/handlers"
	"github.com/animekoon434-afk/SyncTask/middleware"
	"github.com/animekoon434-afk/SyncTask/utils"
)

type routerDeps struct {
	verifier      *utils.TokenVerifier
	project       *handlers.ProjectHandler
	task          *handlers.TaskHandler
	invite        *handlers.InviteHandler
	collaboration *handlers.CollaborationHandler
	user          *handlers.UserHandler
}

// newRouter wires every route. The invite-link info endpoint is the only
// public one; everything else sits behind the auth middleware.
func newRouter(deps routerDeps) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public route: invite link preview, reachable with only the token.
	api.HandleFunc("/invites/link/{token}", deps.invite.GetInviteLinkInfo).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.Auth(deps.verifier))

	// Projects
	authed.HandleFunc("/projects", deps.project.ListProjects).Methods(http.MethodGet)
	authed.HandleFunc("/projects", deps.project.CreateProject).Methods(http.MethodPost)
	authed.HandleFunc("/projects/{projectId}", deps.project.GetProject).Methods(http.MethodGet)
	authed.HandleFunc("/projects/{projectId}", deps.project.UpdateProject).Methods(http.MethodPatch)
	authed.HandleFunc("/projects/{projectId}", deps.project.DeleteProject).Methods(http.MethodDelete)
	authed.HandleFunc("/projects/{projectId}/collaborators", deps.project.RemoveCollaborator).Methods(http.MethodDelete)
	authed.HandleFunc("/projects/{projectId}/leave", deps.project.LeaveProject).Methods(http.MethodPost)

	// Project invites
	authed.HandleFunc("/invites", deps.invite.SendInvite).Methods(http.MethodPost)
	authed.HandleFunc("/invites/pending", deps.invite.GetPendingInvites).Methods(http.MethodGet)
	authed.HandleFunc("/invites/{inviteId}/accept", deps.invite.AcceptInvite).Methods(http.MethodPost)
	authed.HandleFunc("/invites/{inviteId}/decline", deps.invite.DeclineInvite).Methods(http.MethodPost)

	// Invite links
	authed.HandleFunc("/invites/link", deps.invite.CreateInviteLink).Methods(http.MethodPost)
	authed.HandleFunc("/invites/link/{token}/accept", deps.invite.AcceptInviteLink).Methods(http.MethodPost)

	// Task-scoped collaboration requests (legacy sharing flow)
	authed.HandleFunc("/requests", deps.collaboration.SendRequest).Methods(http.MethodPost)
	authed.HandleFunc("/requests/pending", deps.collaboration.GetPendingRequests).Methods(http.MethodGet)
	authed.HandleFunc("/requests/sent", deps.collaboration.GetSentRequests).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{requestId}/accept", deps.collaboration.AcceptRequest).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{requestId}/decline", deps.collaboration.DeclineRequest).Methods(http.MethodPost)

	// Todos
	authed.HandleFunc("/todos", deps.task.ListTasks).Methods(http.MethodGet)
	authed.HandleFunc("/todos", deps.task.CreateTask).Methods(http.MethodPost)
	authed.HandleFunc("/todos/search", deps.task.SearchTasks).Methods(http.MethodGet)
	authed.HandleFunc("/todos/{id}", deps.task.GetTask).Methods(http.MethodGet)
	authed.HandleFunc("/todos/{id}", deps.task.UpdateTask).Methods(http.MethodPatch)
	authed.HandleFunc("/todos/{id}", deps.task.DeleteTask).Methods(http.MethodDelete)

	// Identity provider
	authed.HandleFunc("/users/search", deps.user.SearchUsers).Methods(http.MethodGet)
	authed.HandleFunc("/invite", deps.user.SendInvitation).Methods(http.MethodPost)

	return r
}
