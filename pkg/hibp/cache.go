package hibp

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Cache holds recent lookup results keyed by the full hash. Entries live in
// process memory only; keys are never logged, only their prefix.
type Cache struct {
	store  *gocache.Cache
	logger *logrus.Logger
	ttl    time.Duration
}

// NewCache creates a result cache with the given TTL.
func NewCache(logger *logrus.Logger, ttl time.Duration) *Cache {
	return &Cache{
		store:  gocache.New(ttl, 2*ttl),
		logger: logger,
		ttl:    ttl,
	}
}

// Get retrieves a cached result for a password hash.
func (c *Cache) Get(passwordHash string) (Result, bool) {
	entry, found := c.store.Get(passwordHash)
	if !found {
		return Result{}, false
	}

	result := entry.(Result)

	c.logger.WithFields(logrus.Fields{
		"prefix": passwordHash[:prefixLength],
		"count":  result.Count,
	}).Debug("cache hit for password hash")

	return result, true
}

// Set stores a lookup result.
func (c *Cache) Set(passwordHash string, result Result) {
	c.store.SetDefault(passwordHash, result)

	c.logger.WithFields(logrus.Fields{
		"prefix": passwordHash[:prefixLength],
		"count":  result.Count,
	}).Debug("cached breach lookup result")
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"total_entries": c.store.ItemCount(),
		"ttl_minutes":   c.ttl.Minutes(),
	}
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
	c.logger.Info("cleared breach lookup cache")
}
