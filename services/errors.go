package services

import "errors"

// Service errors, mapped to the HTTP taxonomy by the handler layer.
// "Not found or not owner" style errors are deliberately merged so a caller
// cannot probe whether a resource exists.
var (
	// Validation (400)
	ErrNameRequired         = errors.New("project name is required")
	ErrTitleRequired        = errors.New("task title is required")
	ErrProjectIDRequired    = errors.New("project ID is required")
	ErrRecipientRequired    = errors.New("recipient ID and email are required")
	ErrCollaboratorRequired = errors.New("collaborator ID is required")
	ErrSearchTermRequired   = errors.New("search term is required")
	ErrInvalidID            = errors.New("invalid ID format")
	ErrInvalidStatus        = errors.New("invalid task status")
	ErrInvalidPriority      = errors.New("invalid task priority")
	ErrEmailRequired        = errors.New("email is required")
	ErrSearchTooShort       = errors.New("please provide at least 3 characters to search")

	// Conflict (400)
	ErrAlreadyCollaborator = errors.New("user is already a collaborator")
	ErrInvitePending       = errors.New("an invite is already pending for this user")
	ErrRequestPending      = errors.New("a pending request already exists for this user")

	// Invalid operation (400)
	ErrNoLongerPending  = errors.New("request is no longer pending")
	ErrOwnerCannotLeave = errors.New("owners cannot leave their own projects, delete the project instead")
	ErrAlreadyOwner     = errors.New("you are the owner of this project")
	ErrAlreadyMember    = errors.New("you are already a collaborator on this project")

	// Forbidden (403)
	ErrProjectAccessDenied = errors.New("you do not have access to this project")
	ErrNotRecipient        = errors.New("this request is not for you")

	// Not found (404)
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInviteNotFound  = errors.New("invite not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrLinkNotFound    = errors.New("invite link not found or inactive")
	ErrNotProjectOwner = errors.New("project not found or you are not the owner")
	ErrNotTaskOwner    = errors.New("task not found or you are not the owner")
	ErrNotCollaborator = errors.New("project not found or you are not a collaborator")
)
