// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	authusecase "dreamjournal/internal/feature/auth/usecase"
	"dreamjournal/internal/feature/dreams/domain/entity"
	"dreamjournal/internal/feature/dreams/usecase"
)

// DreamStore is the full surface the decorator wraps: the repository plus
// the ownership transfer used by account linking.
type DreamStore interface {
	usecase.DreamRepository
	authusecase.EntryTransfer
}

// CachingDreamRepository decorates a dream repository with Redis caching of
// per-user entry lists. Every write invalidates the owner's cached list so
// reads never observe stale entries.
type CachingDreamRepository struct {
	inner     DreamStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time checks for both decorated interfaces.
var _ DreamStore = (*CachingDreamRepository)(nil)

// NewCachingDreamRepository decorates a dream repository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "dreams".
func NewCachingDreamRepository(rdb *redis.Client, ttl time.Duration, inner DreamStore, namespace string) *CachingDreamRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "dreams"
	}
	return &CachingDreamRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create persists the entry and invalidates the owner's cached list.
func (c *CachingDreamRepository) Create(ctx context.Context, entry *entity.DreamEntry) error {
	if err := c.inner.Create(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, entry.UserID)
	return nil
}

// FindByID delegates to the underlying repository. Single-entry reads are
// not cached; only lists are.
func (c *CachingDreamRepository) FindByID(ctx context.Context, id string) (*entity.DreamEntry, error) {
	return c.inner.FindByID(ctx, id)
}

// FindByUser retrieves the user's entries, checking cache first then falling
// back to the database.
func (c *CachingDreamRepository) FindByUser(ctx context.Context, userID uint) ([]entity.DreamEntry, error) {
	if c.rdb == nil {
		return c.inner.FindByUser(ctx, userID)
	}

	key := c.userKey(userID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.DreamEntry
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Update persists the entry and invalidates the owner's cached list.
func (c *CachingDreamRepository) Update(ctx context.Context, entry *entity.DreamEntry) error {
	if err := c.inner.Update(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, entry.UserID)
	return nil
}

// Delete removes the entry and invalidates the owner's cached list.
func (c *CachingDreamRepository) Delete(ctx context.Context, entry *entity.DreamEntry) error {
	if err := c.inner.Delete(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, entry.UserID)
	return nil
}

// TransferOwnership reassigns entries between users and invalidates both
// sides' cached lists.
func (c *CachingDreamRepository) TransferOwnership(ctx context.Context, fromUserID, toUserID uint) (int64, error) {
	moved, err := c.inner.TransferOwnership(ctx, fromUserID, toUserID)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, fromUserID)
	c.invalidate(ctx, toUserID)
	return moved, nil
}

// invalidate drops the user's cached list. Best effort: a failed delete only
// shortens cache freshness, it never fails the write.
func (c *CachingDreamRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.userKey(userID)).Err()
}

// userKey generates the cache key for a user's entry list.
func (c *CachingDreamRepository) userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
