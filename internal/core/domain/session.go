package domain

import (
	"encoding/json"
	"fmt"
)

// SessionChangeKind tells a subscriber how the slot was changed.
type SessionChangeKind string

const (
	SessionSet     SessionChangeKind = "set"
	SessionCleared SessionChangeKind = "clear"
)

// SessionChange is the notification broadcast to every context sharing an
// origin whenever its session slot is written or cleared. It carries no
// identity: receivers must re-read the slot.
type SessionChange struct {
	Origin string            `json:"origin"`
	Kind   SessionChangeKind `json:"kind"`
}

// DecodeSession parses the contents of a session slot. Anything that is not
// a JSON Identity satisfying Validate is reported as ErrCorruptSession.
func DecodeSession(raw []byte) (*Identity, error) {
	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if err := identity.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	return &identity, nil
}
