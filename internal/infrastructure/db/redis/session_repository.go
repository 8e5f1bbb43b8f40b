package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// SessionRepository stores one session slot per origin and broadcasts every
// write over pub/sub so all contexts sharing the origin can re-read it.
//
// Key format:     datalab:session:<origin>:currentUser
// Channel format: datalab:session:<origin>:events
type SessionRepository struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewSessionRepository(client *redis.Client, log zerolog.Logger) *SessionRepository {
	return &SessionRepository{client: client, log: log}
}

func (r *SessionRepository) Get(ctx context.Context, origin string) (*domain.Identity, error) {
	raw, err := r.client.Get(ctx, slotKey(origin)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	return domain.DecodeSession(raw)
}

func (r *SessionRepository) Set(ctx context.Context, origin string, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, slotKey(origin), raw, 0).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	r.publish(ctx, origin, domain.SessionSet)
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context, origin string) error {
	if err := r.client.Del(ctx, slotKey(origin)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	r.publish(ctx, origin, domain.SessionCleared)
	return nil
}

// Subscribe confirms the subscription with Redis before returning, so any
// write that happens after Subscribe returns is observed.
func (r *SessionRepository) Subscribe(ctx context.Context, origin string) (<-chan domain.SessionChange, error) {
	ps := r.client.Subscribe(ctx, eventsChannel(origin))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("session subscribe: %w", err)
	}

	out := make(chan domain.SessionChange, 1)
	go func() {
		defer close(out)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				change := domain.SessionChange{Origin: origin, Kind: domain.SessionChangeKind(msg.Payload)}
				select {
				case out <- change:
				default:
					// A notification is already pending; the receiver will re-read anyway.
				}
			}
		}
	}()

	return out, nil
}

// publish failures are logged, not returned: the slot itself was written and
// subscribers that miss the signal still see the new value on their next read.
func (r *SessionRepository) publish(ctx context.Context, origin string, kind domain.SessionChangeKind) {
	if err := r.client.Publish(ctx, eventsChannel(origin), string(kind)).Err(); err != nil {
		r.log.Warn().Err(err).Str("origin", origin).Msg("session change publish failed")
	}
}

func slotKey(origin string) string {
	return fmt.Sprintf("datalab:session:%s:currentUser", origin)
}

func eventsChannel(origin string) string {
	return fmt.Sprintf("datalab:session:%s:events", origin)
}
