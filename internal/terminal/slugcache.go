package terminal

import (
	"context"
	"slices"
	"sync"
)

// SlugCache holds the blog slugs offered by autocomplete. It is filled once per
// mount and whenever `blog ls` returns, so it may lag behind the server.
type SlugCache struct {
	mu    sync.RWMutex
	slugs []string
}

func NewSlugCache() *SlugCache {
	return &SlugCache{}
}

// Refresh replaces the cache with the store's current slugs.
func (c *SlugCache) Refresh(ctx context.Context, store ContentStore) error {
	slugs, err := store.ListSlugs(ctx)
	if err != nil {
		return err
	}
	c.Set(slugs)
	return nil
}

func (c *SlugCache) Set(slugs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slugs = slices.Clone(slugs)
}

func (c *SlugCache) Slugs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.slugs)
}
