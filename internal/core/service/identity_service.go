package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

// MinPasswordLength is the only password rule enforced by Authenticate.
const MinPasswordLength = 6

// IdentityService resolves credentials against the registry.
type IdentityService struct {
	repo ports.IdentityRepository
	log  zerolog.Logger
}

func NewIdentityService(repo ports.IdentityRepository, log zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, log: log}
}

// Authenticate returns the registered Identity for id. The password is not
// compared against any stored secret: any password of MinPasswordLength or
// more characters is accepted for a registered ID. A malformed id is
// rejected with ErrMalformedID before the store is consulted.
func (s *IdentityService) Authenticate(ctx context.Context, id, password string) (*domain.Identity, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrMalformedID
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return identity, nil
}

// RequestPasswordReset acknowledges a reset request. Nothing is sent.
func (s *IdentityService) RequestPasswordReset(ctx context.Context, id string) (ports.ResetResult, error) {
	if !domain.IsValidID(id) {
		return ports.ResetResult{Reason: ports.ResetMalformedID}, nil
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return ports.ResetResult{Reason: ports.ResetNotFound}, nil
		}
		return ports.ResetResult{}, fmt.Errorf("password reset: %w", err)
	}

	s.log.Info().Str("user_id", id).Msg("password reset requested")
	return ports.ResetResult{Accepted: true}, nil
}

// DemoAccounts lists the registered identities for the login screen.
func (s *IdentityService) DemoAccounts(ctx context.Context) ([]domain.Identity, error) {
	ids, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("demo accounts: %w", err)
	}
	return ids, nil
}
