package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoOwner indicates an owner-scoped operation with no active owner
	ErrNoOwner = errors.New("no active owner")
	// ErrEmailTaken indicates a signup with an already-registered email
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrBadCredentials indicates a failed signin
	ErrBadCredentials = errors.New("invalid email or password")
)
