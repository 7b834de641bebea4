package engine

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Cache provides 2-tier result caching: L1 in-memory + L2 Redis.
// L1 is fast but lost on restart. L2 survives restarts. Expiry is lazy: an
// entry is checked and evicted on read, never by a background sweep.
var resultCache *tieredCache

// Cache metrics, atomic for thread-safe access.
var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// tieredCache implements L1 (memory) + L2 (Redis) caching. The mutex
// serializes all L1 access; last write wins on a same-key race.
type tieredCache struct {
	mu         sync.Mutex
	l1         map[string]*cacheEntry
	rdb        *redis.Client // nil if Redis unavailable
	ttl        time.Duration
	maxEntries int
}

// InitCache sets up the result cache. Call after Init().
// redisURL can be empty to disable L2.
func InitCache(redisURL string, ttl time.Duration, maxEntries int) {
	c := &tieredCache{
		l1:         make(map[string]*cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	resultCache = c
	slog.Info("cache: initialized", slog.Duration("ttl", ttl), slog.Bool("redis", c.rdb != nil), slog.Int("max_entries", maxEntries))
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("gr:%x", hash[:12])
}

// CacheGet tries L1, then L2. On L2 hit, populates L1. Expired L1 entries are
// evicted on the spot.
func CacheGet(ctx context.Context, key string) (RecommendationResult, bool) {
	if resultCache == nil {
		cacheMisses.Add(1)
		return RecommendationResult{}, false
	}

	resultCache.mu.Lock()
	entry, ok := resultCache.l1[key]
	if ok && time.Now().After(entry.expiresAt) {
		delete(resultCache.l1, key)
		ok = false
	}
	resultCache.mu.Unlock()

	if ok {
		var out RecommendationResult
		if json.Unmarshal(entry.data, &out) == nil {
			slog.Debug("cache: L1 hit", slog.String("key", key))
			cacheHits.Add(1)
			return out, true
		}
	}

	if resultCache.rdb != nil {
		data, err := resultCache.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var out RecommendationResult
			if json.Unmarshal(data, &out) == nil {
				slog.Debug("cache: L2 hit", slog.String("key", key))
				cacheHits.Add(1)
				resultCache.mu.Lock()
				resultCache.l1[key] = &cacheEntry{data: data, expiresAt: time.Now().Add(resultCache.ttl)}
				resultCache.mu.Unlock()
				return out, true
			}
		}
	}

	cacheMisses.Add(1)
	return RecommendationResult{}, false
}

// CacheSet stores value in both L1 and L2, overwriting unconditionally.
func CacheSet(ctx context.Context, key string, value RecommendationResult) {
	if resultCache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	resultCache.mu.Lock()
	resultCache.evictIfNeededLocked()
	resultCache.l1[key] = &cacheEntry{data: data, expiresAt: time.Now().Add(resultCache.ttl)}
	resultCache.mu.Unlock()

	if resultCache.rdb != nil {
		if err := resultCache.rdb.Set(ctx, key, data, resultCache.ttl).Err(); err != nil {
			slog.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// evictIfNeededLocked keeps L1 under maxEntries: expired entries go first,
// then the entry closest to expiry. Caller holds mu.
func (c *tieredCache) evictIfNeededLocked() {
	if c.maxEntries <= 0 || len(c.l1) < c.maxEntries {
		return
	}
	now := time.Now()
	var oldestKey string
	var oldestAt time.Time
	for k, e := range c.l1 {
		if now.After(e.expiresAt) {
			delete(c.l1, k)
			continue
		}
		if oldestKey == "" || e.expiresAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.expiresAt
		}
	}
	if len(c.l1) >= c.maxEntries && oldestKey != "" {
		delete(c.l1, oldestKey)
	}
}

// CacheStats returns cumulative hit/miss counts.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

// ResetCache drops all L1 entries. Test helper.
func ResetCache() {
	if resultCache == nil {
		return
	}
	resultCache.mu.Lock()
	resultCache.l1 = make(map[string]*cacheEntry)
	resultCache.mu.Unlock()
}
