package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("reading_search", "stoicism")
		k2 := CacheKey("reading_search", "stoicism")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := CacheKey("reading_search", "stoicism")
		k2 := CacheKey("reading_search", "astronomy")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := CacheKey("test")
		if k[:3] != "gr:" {
			t.Errorf("expected gr: prefix, got %q", k[:3])
		}
	})
}

func TestRequestCacheKey(t *testing.T) {
	base := RecommendationRequest{
		Topic:        "Space",
		Minutes:      10,
		License:      FilterAny,
		Language:     "EN",
		WPM:          200,
		ExcludedURLs: []string{"https://B.example/two", "https://a.example/one"},
	}

	t.Run("case insensitive", func(t *testing.T) {
		other := base
		other.Topic = "sPACE"
		other.Language = "en"
		if base.CacheKey() != other.CacheKey() {
			t.Error("case-only differences must collide in the cache")
		}
	})

	t.Run("excluded url order irrelevant", func(t *testing.T) {
		other := base
		other.ExcludedURLs = []string{"https://a.example/one", "https://b.example/TWO"}
		if base.CacheKey() != other.CacheKey() {
			t.Error("excluded URL ordering and case must not change the key")
		}
	})

	t.Run("field changes produce new keys", func(t *testing.T) {
		other := base
		other.Minutes = 15
		if base.CacheKey() == other.CacheKey() {
			t.Error("changed minutes must change the key")
		}
	})
}

func TestCacheGetSet(t *testing.T) {
	InitCache("", 1*time.Minute, 100)

	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	val := RecommendationResult{TopThree: []ArticleCandidate{{ID: "wikipedia-1", Title: "Stoicism"}}}
	CacheSet(ctx, key, val)

	got, ok := CacheGet(ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if len(got.TopThree) != 1 || got.TopThree[0].ID != "wikipedia-1" {
		t.Errorf("got %+v, want stored result back", got.TopThree)
	}
}

func TestCacheLazyExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100)

	ctx := context.Background()
	key := CacheKey("test", "expiry")
	CacheSet(ctx, key, RecommendationResult{})

	if _, ok := CacheGet(ctx, key); !ok {
		t.Fatal("expected hit before TTL")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected expired entry to be evicted on read")
	}

	resultCache.mu.Lock()
	_, still := resultCache.l1[key]
	resultCache.mu.Unlock()
	if still {
		t.Error("expired entry should be deleted from L1 by the read")
	}
}

func TestCacheOverwrite(t *testing.T) {
	InitCache("", 1*time.Minute, 100)

	ctx := context.Background()
	key := CacheKey("test", "overwrite")
	CacheSet(ctx, key, RecommendationResult{TopThree: []ArticleCandidate{{ID: "old"}}})
	CacheSet(ctx, key, RecommendationResult{TopThree: []ArticleCandidate{{ID: "new"}}})

	got, ok := CacheGet(ctx, key)
	if !ok || len(got.TopThree) != 1 || got.TopThree[0].ID != "new" {
		t.Errorf("put must overwrite unconditionally, got %+v", got.TopThree)
	}
}
