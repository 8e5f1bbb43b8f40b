package ports

import (
	"context"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// SessionRepository owns the per-origin session slot.
//
// Get returns domain.ErrNoSession when the slot is empty and wraps
// domain.ErrCorruptSession when it holds anything that does not decode to a
// valid Identity.
//
// Subscribe delivers a notification every time the slot for origin is set
// or cleared, from any context. Notifications may be coalesced; receivers
// must re-read the slot rather than trust the payload. The channel is closed
// when ctx is done.
type SessionRepository interface {
	Get(ctx context.Context, origin string) (*domain.Identity, error)
	Set(ctx context.Context, origin string, identity domain.Identity) error
	Clear(ctx context.Context, origin string) error
	Subscribe(ctx context.Context, origin string) (<-chan domain.SessionChange, error)
}
