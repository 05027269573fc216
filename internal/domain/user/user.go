package user

import (
	"context"

	"github.com/google/uuid"
)

// User is the owning identity record. Registration and credentials are
// managed by the identity provider; this service only reads the public
// projection and removes the record on cascading profile delete.
type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// DeleteByID removes the identity record. Deleting an absent user is
	// not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
