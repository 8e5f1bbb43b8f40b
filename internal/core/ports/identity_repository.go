package ports

import (
	"context"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// IdentityRepository is the read-only registry of actors allowed to sign in.
type IdentityRepository interface {
	// FindByID returns domain.ErrIdentityNotFound when id is not registered.
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
	List(ctx context.Context) ([]domain.Identity, error)
}
