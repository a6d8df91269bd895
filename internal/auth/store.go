package auth

import (
	"context"

	"github.com/google/uuid"

	derrors "lawmate/pkg/domain-errors"
)

var (
	// ErrNotFound keeps user lookups consistent across implementations.
	ErrNotFound = derrors.New(derrors.CodeNotFound, "user not found")
	// ErrEmailTaken signals a duplicate registration attempt.
	ErrEmailTaken = derrors.New(derrors.CodeConflict, "email already in use")
)

// Store abstracts user persistence so the service can run against memory in
// development and Postgres in production.
type Store interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	ListByType(ctx context.Context, userType UserType) ([]*User, error)
}
