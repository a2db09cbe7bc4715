package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/marketplace-routes/internal/seo"
)

// RedisSEOCache wraps a seo.Repository with Redis caching for reads.
// Records never change after insert, so cached entries are never invalidated.
type RedisSEOCache struct {
	store      seo.Repository
	client     *redis.Client
	prefix     string // "seo:" + listing_id -> record hash
	fullURLKey string // "seo_full_urls" full_url -> listing_id
	ttl        time.Duration
}

// NewRedisSEOCache creates a new Redis-cached SEO URL repository decorator.
func NewRedisSEOCache(store seo.Repository, client *redis.Client, ttl time.Duration) *RedisSEOCache {
	return &RedisSEOCache{
		store:      store,
		client:     client,
		prefix:     "seo:",
		fullURLKey: "seo_full_urls",
		ttl:        ttl,
	}
}

// Save stores a record in the underlying store and updates the cache.
func (r *RedisSEOCache) Save(ctx context.Context, url *seo.URL) error {
	if err := r.store.Save(ctx, url); err != nil {
		return err
	}

	r.cacheURL(ctx, url)

	return nil
}

// GetByListingID retrieves a record by listing, checking cache first.
func (r *RedisSEOCache) GetByListingID(ctx context.Context, listingID string) (*seo.URL, error) {
	if url, err := r.getFromCache(ctx, listingID); err == nil {
		return url, nil
	}

	url, err := r.store.GetByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	r.cacheURL(ctx, url)

	return url, nil
}

// GetByFullURL retrieves a record by its full path, checking the path index first.
func (r *RedisSEOCache) GetByFullURL(ctx context.Context, fullURL string) (*seo.URL, error) {
	listingID, err := r.client.HGet(ctx, r.fullURLKey, fullURL).Result()
	if err == nil {
		if url, err := r.getFromCache(ctx, listingID); err == nil {
			return url, nil
		}
	}

	url, err := r.store.GetByFullURL(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	r.cacheURL(ctx, url)

	return url, nil
}

func (r *RedisSEOCache) getFromCache(ctx context.Context, listingID string) (*seo.URL, error) {
	result, err := r.client.HGetAll(ctx, r.prefix+listingID).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, seo.ErrNotFound
	}

	var createdAt time.Time

	if ts, ok := result["created_at"]; ok {
		if nanos, err := strconv.ParseInt(ts, 10, 64); err == nil {
			createdAt = time.Unix(0, nanos)
		}
	}

	return &seo.URL{
		ListingID: result["listing_id"],
		Slug:      result["slug"],
		SeoID:     result["seo_id"],
		FullURL:   result["full_url"],
		CreatedAt: createdAt,
	}, nil
}

func (r *RedisSEOCache) cacheURL(ctx context.Context, url *seo.URL) {
	pipe := r.client.Pipeline()
	key := r.prefix + url.ListingID

	pipe.HSet(ctx, key, map[string]interface{}{
		"listing_id": url.ListingID,
		"slug":       url.Slug,
		"seo_id":     url.SeoID,
		"full_url":   url.FullURL,
		"created_at": url.CreatedAt.UnixNano(),
	})

	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	pipe.HSet(ctx, r.fullURLKey, url.FullURL, url.ListingID)

	_, _ = pipe.Exec(ctx)
}

// Shutdown is a no-op for RedisSEOCache (client managed externally).
func (r *RedisSEOCache) Shutdown() error {
	return nil
}

// Compile-time check.
var _ seo.Repository = (*RedisSEOCache)(nil)
