// Package users stores the café's registry records. The only backend is an
// in-memory one; nothing survives a restart.
package users

import (
	"context"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/models"
)

// Repository owns the set of registered users and guarantees id uniqueness
// and stable, insertion-order listing.
type Repository interface {
	// Create inserts a new user. A colliding id is an invariant violation
	// and returns common.ErrorDuplicateUserID.
	Create(ctx context.Context, user *models.User) error

	// GetByID returns the user with the exact id, or common.ErrorUserNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Update persists changes to an existing user, or returns
	// common.ErrorUserNotFound.
	Update(ctx context.Context, user *models.User) error

	// Delete removes the user and everything it owns, or returns
	// common.ErrorUserNotFound leaving the set unchanged.
	Delete(ctx context.Context, id string) error

	// List returns all users in insertion order.
	List(ctx context.Context) ([]*models.User, error)
}
