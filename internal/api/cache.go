package api

import (
	"context" // Context for Redis operations
	"time"    // Time durations

	"web3_portal/internal/utils" // Cache helpers

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Cache key prefixes, one per public resource
const (
	productsCachePrefix     = "products:"
	translationsCachePrefix = "translations:"
	rodoCachePrefix         = "rodo:"
	cardsCachePrefix        = "cards:"
	filesCachePrefix        = "files:"
)

// Cache stores public read responses in Redis. A nil client disables it.
type Cache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Lifetime of every entry
}

// NewCache wraps a Redis client; rdb may be nil
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Client returns the underlying Redis client, which may be nil
func (c *Cache) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}

// Get loads key into dest and reports whether it was found
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	found, err := utils.GetCache(ctx, c.Client(), key, dest)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
		return false // Fall through to the database
	}
	return found
}

// Set stores value under key
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if err := utils.SetCache(ctx, c.Client(), key, value, c.ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}

// Invalidate drops every entry under prefix
func (c *Cache) Invalidate(ctx context.Context, prefix string) {
	if err := utils.DeleteCachePrefix(ctx, c.Client(), prefix); err != nil {
		logrus.WithFields(logrus.Fields{"prefix": prefix, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}
