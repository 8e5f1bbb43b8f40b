package ports

import (
	"context"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// ResetReason explains why a password reset request was not accepted.
type ResetReason string

const (
	ResetMalformedID ResetReason = "malformed_id"
	ResetNotFound    ResetReason = "not_found"
)

// ResetResult acknowledges a password reset request. No reset is performed.
type ResetResult struct {
	Accepted bool
	Reason   ResetReason
}

type IdentityService interface {
	Authenticate(ctx context.Context, id, password string) (*domain.Identity, error)
	RequestPasswordReset(ctx context.Context, id string) (ResetResult, error)
	DemoAccounts(ctx context.Context) ([]domain.Identity, error)
}
