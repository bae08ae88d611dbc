package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and handlers. Handlers translate these
// into HTTP status codes; anything else is treated as a store failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrValidation   = errors.New("validation failed")
)

// Conflict refinements so handlers can keep the distinct duplicate-key
// messages of the user administration surface.
var (
	ErrUsernameTaken = fmt.Errorf("username %w", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("email %w", ErrConflict)
)
