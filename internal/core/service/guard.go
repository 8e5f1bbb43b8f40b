package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

// Guard evaluates protected navigations against the session slot.
// It never caches the slot and never writes to it.
type Guard struct {
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewGuard(sessions ports.SessionRepository, log zerolog.Logger) *Guard {
	return &Guard{sessions: sessions, log: log}
}

// Evaluate reads the slot for origin and decides whether a navigation to
// from, requiring the given tier, may proceed. Any read failure fails closed
// to Unauthenticated.
func (g *Guard) Evaluate(ctx context.Context, origin string, required domain.AccessLevel, from string) domain.Decision {
	return domain.Decide(required, g.readSession(ctx, origin), from)
}

func (g *Guard) readSession(ctx context.Context, origin string) *domain.Identity {
	identity, err := g.sessions.Get(ctx, origin)
	switch {
	case err == nil:
		return identity
	case errors.Is(err, domain.ErrNoSession):
	case errors.Is(err, domain.ErrCorruptSession):
		g.log.Warn().Err(err).Str("origin", origin).Msg("ignoring corrupt session")
	default:
		g.log.Error().Err(err).Str("origin", origin).Msg("session read failed")
	}
	return nil
}
