package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

// Watcher keeps long-lived contexts consistent with the shared slot by
// re-running the guard on every change notification.
type Watcher struct {
	guard    ports.AccessGuard
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewWatcher(guard ports.AccessGuard, sessions ports.SessionRepository, log zerolog.Logger) *Watcher {
	return &Watcher{guard: guard, sessions: sessions, log: log}
}

// Watch emits StateUnknown, then the Decision for the current slot, then a
// fresh Decision after every change to the slot for origin. It returns when
// ctx is done, the subscription ends or emit fails.
func (w *Watcher) Watch(ctx context.Context, origin string, required domain.AccessLevel, from string, emit func(domain.Decision) error) error {
	if err := emit(domain.Decision{State: domain.StateUnknown}); err != nil {
		return err
	}

	// Subscribe before the first read so no change can slip in between.
	changes, err := w.sessions.Subscribe(ctx, origin)
	if err != nil {
		return fmt.Errorf("watch session: %w", err)
	}

	if err := emit(w.guard.Evaluate(ctx, origin, required, from)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			w.log.Debug().Str("origin", origin).Str("kind", string(change.Kind)).Msg("session changed")
			if err := emit(w.guard.Evaluate(ctx, origin, required, from)); err != nil {
				return err
			}
		}
	}
}
