package seo

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("seo url not found")
	ErrConflict = errors.New("seo url already exists")
)

// URL is the persisted mapping between a listing and its canonical SEO path.
type URL struct {
	ListingID string
	Slug      string
	SeoID     string
	FullURL   string // "/" + Slug + "-" + SeoID
	CreatedAt time.Time
}

// Repository defines storage operations for SEO URL records.
type Repository interface {
	// Save inserts a record. Returns ErrConflict when the listing or full URL is taken.
	Save(ctx context.Context, url *URL) error
	GetByListingID(ctx context.Context, listingID string) (*URL, error)
	GetByFullURL(ctx context.Context, fullURL string) (*URL, error)
}
