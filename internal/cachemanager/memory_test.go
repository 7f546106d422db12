package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type cachedResult struct {
	ID    string
	Lines int
}

func TestMemoryCache_GetExistingValue(t *testing.T) {
	cache := NewMemoryCache[string, cachedResult]("compare-results", DefaultExpiration, DefaultCleanupInterval)
	want := cachedResult{ID: "r1", Lines: 42}
	cache.Set(context.Background(), "rev:a:b", want, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "rev:a:b")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestMemoryCache_GetMissingValue(t *testing.T) {
	cache := NewMemoryCache[string, cachedResult]("compare-results", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "rev:missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestMemoryCache_GetWrongType(t *testing.T) {
	cache := NewMemoryCache[string, cachedResult]("compare-results", DefaultExpiration, DefaultCleanupInterval)
	cache.cache.Set("rev:a:b", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "rev:a:b")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache[string, string]("compare-results", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)

	require.NoError(t, cache.Delete(context.Background(), "a"))

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "b")
	require.True(t, ok)
}

func TestMemoryCache_DeleteNoKeysIsNoop(t *testing.T) {
	cache := NewMemoryCache[string, string]("compare-results", DefaultExpiration, DefaultCleanupInterval)
	require.NoError(t, cache.Delete(context.Background()))
}

func TestMemoryCache_Flush(t *testing.T) {
	cache := NewMemoryCache[string, string]("compare-results", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)

	require.NoError(t, cache.Flush(context.Background()))

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	cache := NewMemoryCache[string, string]("compare-results", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
}

func TestMemoryCache_SatisfiesInterface(t *testing.T) {
	var _ CacheManager[string, cachedResult] = NewMemoryCache[string, cachedResult]("compare-results", DefaultExpiration, DefaultCleanupInterval)
}
