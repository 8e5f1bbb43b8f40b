package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

// SessionService runs the login and sign-out flows. It is the only
// component that writes the session slot.
type SessionService struct {
	identities ports.IdentityService
	sessions   ports.SessionRepository
	loginDelay time.Duration
	log        zerolog.Logger
}

func NewSessionService(identities ports.IdentityService, sessions ports.SessionRepository, loginDelay time.Duration, log zerolog.Logger) *SessionService {
	if loginDelay < 0 {
		loginDelay = 0
	}
	return &SessionService{
		identities: identities,
		sessions:   sessions,
		loginDelay: loginDelay,
		log:        log,
	}
}

// Login authenticates id and, on success, writes the Identity into the slot
// for origin. The simulated delay is not cancellable; a caller that goes
// away mid-attempt still ends up signed in.
func (s *SessionService) Login(ctx context.Context, origin, id, password string) (*domain.Identity, error) {
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	identity, err := s.identities.Authenticate(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(context.WithoutCancel(ctx), origin, *identity); err != nil {
		return nil, fmt.Errorf("login: store session: %w", err)
	}

	s.log.Info().
		Str("origin", origin).
		Str("user_id", identity.ID).
		Str("access_level", string(identity.AccessLevel)).
		Msg("signed in")
	return identity, nil
}

// Logout clears the slot for origin. Clearing an empty slot is not an error.
func (s *SessionService) Logout(ctx context.Context, origin string) error {
	if err := s.sessions.Clear(ctx, origin); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("origin", origin).Msg("signed out")
	return nil
}

// Current returns the Identity stored for origin.
func (s *SessionService) Current(ctx context.Context, origin string) (*domain.Identity, error) {
	return s.sessions.Get(ctx, origin)
}
