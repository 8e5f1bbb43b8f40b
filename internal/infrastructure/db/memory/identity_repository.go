package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

// IdentityRepository is a read-only registry held in memory.
type IdentityRepository struct {
	byID  map[string]domain.Identity
	order []string
}

// NewIdentityRepository builds a registry from ids, rejecting any entry that
// breaks the Identity invariants or repeats an ID.
func NewIdentityRepository(ids []domain.Identity) (*IdentityRepository, error) {
	r := &IdentityRepository{byID: make(map[string]domain.Identity, len(ids))}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[id.ID]; dup {
			return nil, fmt.Errorf("identity %q registered twice", id.ID)
		}
		r.byID[id.ID] = id
		r.order = append(r.order, id.ID)
	}
	sort.Strings(r.order)
	return r, nil
}

// NewStaticIdentityRepository returns the built-in registry.
func NewStaticIdentityRepository() *IdentityRepository {
	r, err := NewIdentityRepository(domain.Registry())
	if err != nil {
		panic(fmt.Sprintf("memory: built-in registry is invalid: %v", err))
	}
	return r
}

func (r *IdentityRepository) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	identity, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return &identity, nil
}

func (r *IdentityRepository) List(_ context.Context) ([]domain.Identity, error) {
	out := make([]domain.Identity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
