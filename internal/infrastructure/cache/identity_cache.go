package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

const defaultSize = 128

// IdentityCache is an LRU read-through cache in front of an
// IdentityRepository. The registry is immutable, so entries never expire.
// Misses are not cached.
type IdentityCache struct {
	next  ports.IdentityRepository
	cache *lru.Cache[string, domain.Identity]
}

func NewIdentityCache(next ports.IdentityRepository, size int) (*IdentityCache, error) {
	if size <= 0 {
		size = defaultSize
	}
	c, err := lru.New[string, domain.Identity](size)
	if err != nil {
		return nil, fmt.Errorf("identity cache: %w", err)
	}
	return &IdentityCache{next: next, cache: c}, nil
}

func (c *IdentityCache) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	if identity, ok := c.cache.Get(id); ok {
		return &identity, nil
	}

	identity, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(id, *identity)
	return identity, nil
}

func (c *IdentityCache) List(ctx context.Context) ([]domain.Identity, error) {
	return c.next.List(ctx)
}
