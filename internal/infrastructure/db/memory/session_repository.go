package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// subscriberBuffer of 1 is enough: a pending notification already tells the
// receiver to re-read, so further ones are dropped until it drains.
const subscriberBuffer = 1

// SessionRepository keeps session slots as encoded JSON in process memory
// and fans change notifications out to in-process subscribers.
type SessionRepository struct {
	mu    sync.Mutex
	slots map[string][]byte
	subs  map[string]map[chan domain.SessionChange]struct{}
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		slots: make(map[string][]byte),
		subs:  make(map[string]map[chan domain.SessionChange]struct{}),
	}
}

func (r *SessionRepository) Get(_ context.Context, origin string) (*domain.Identity, error) {
	r.mu.Lock()
	raw, ok := r.slots[origin]
	r.mu.Unlock()

	if !ok {
		return nil, domain.ErrNoSession
	}
	return domain.DecodeSession(raw)
}

func (r *SessionRepository) Set(_ context.Context, origin string, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	r.write(origin, raw, domain.SessionSet)
	return nil
}

// SetRaw stores raw bytes in the slot exactly as given. It exists so callers
// can reproduce slots written by other clients, including corrupt ones. An
// empty slice is stored as a present but unparseable slot; nil clears it.
func (r *SessionRepository) SetRaw(origin string, raw []byte) {
	if raw == nil {
		r.write(origin, nil, domain.SessionCleared)
		return
	}
	r.write(origin, bytes.Clone(raw), domain.SessionSet)
}

func (r *SessionRepository) Clear(_ context.Context, origin string) error {
	r.write(origin, nil, domain.SessionCleared)
	return nil
}

func (r *SessionRepository) Subscribe(ctx context.Context, origin string) (<-chan domain.SessionChange, error) {
	ch := make(chan domain.SessionChange, subscriberBuffer)

	r.mu.Lock()
	if r.subs[origin] == nil {
		r.subs[origin] = make(map[chan domain.SessionChange]struct{})
	}
	r.subs[origin][ch] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.subs[origin], ch)
		if len(r.subs[origin]) == 0 {
			delete(r.subs, origin)
		}
		close(ch)
		r.mu.Unlock()
	}()

	return ch, nil
}

func (r *SessionRepository) write(origin string, raw []byte, kind domain.SessionChangeKind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if raw == nil {
		delete(r.slots, origin)
	} else {
		r.slots[origin] = raw
	}

	change := domain.SessionChange{Origin: origin, Kind: kind}
	for ch := range r.subs[origin] {
		select {
		case ch <- change:
		default:
		}
	}
}
