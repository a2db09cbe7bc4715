package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/serroba/marketplace-routes/internal/ratelimit"
)

// RateLimitMemoryStore is an in-memory implementation of ratelimit.Store
// for single-instance deployments running without Redis.
type RateLimitMemoryStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time // ascending
}

// NewRateLimitMemoryStore creates a new in-memory rate limit store.
func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		hits: make(map[string][]time.Time),
	}
}

func (s *RateLimitMemoryStore) Record(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	hits := s.hits[key]
	first := sort.Search(len(hits), func(i int) bool { return hits[i].After(cutoff) })

	kept := append(hits[first:len(hits):len(hits)], now)
	s.hits[key] = kept

	return int64(len(kept)), nil
}

// Compile-time check.
var _ ratelimit.Store = (*RateLimitMemoryStore)(nil)
