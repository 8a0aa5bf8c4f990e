package store

import "errors"

// The store's error taxonomy. Handlers map these onto HTTP statuses;
// anything not wrapping one of them is an unexpected storage failure.
var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Informational no-op outcomes for collaborator adds. Not failures,
	// but callers need to distinguish them from an actual insert.
	ErrAlreadyCollaborator = errors.New("user is already a collaborator")
	ErrOwnerCollaborator   = errors.New("owner is already part of the board")
)
