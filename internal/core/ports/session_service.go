package ports

import (
	"context"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// SessionService is the only writer of the session slot.
type SessionService interface {
	Login(ctx context.Context, origin, id, password string) (*domain.Identity, error)
	Logout(ctx context.Context, origin string) error
	Current(ctx context.Context, origin string) (*domain.Identity, error)
}

// AccessGuard evaluates protected navigations.
type AccessGuard interface {
	Evaluate(ctx context.Context, origin string, required domain.AccessLevel, from string) domain.Decision
}

// SessionWatcher re-evaluates a navigation every time the slot changes.
type SessionWatcher interface {
	Watch(ctx context.Context, origin string, required domain.AccessLevel, from string, emit func(domain.Decision) error) error
}
