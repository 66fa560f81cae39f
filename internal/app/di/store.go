// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	dreamadapters "dreamjournal/internal/feature/dreams/adapters"
	"dreamjournal/internal/platform/cache"
)

// NewDreamStore creates the dream entry store. When Redis is available the
// GORM repository is wrapped with the caching decorator; without Redis the
// decorator passes every call through.
func NewDreamStore(rdb *redis.Client, db *gorm.DB) *cache.CachingDreamRepository {
	return cache.NewCachingDreamRepository(rdb, 5*time.Minute, dreamadapters.NewDreamGorm(db), "dreams")
}
