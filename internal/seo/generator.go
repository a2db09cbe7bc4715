package seo

import (
	"context"
	"errors"
	"time"

	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// SeoIDLength is the length of the random suffix appended to a slug.
	SeoIDLength = 6
	// SeoIDAlphabet holds the 62 symbols a suffix is drawn from.
	SeoIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// CodeGenerator generates random suffixes.
type CodeGenerator func() string

// NewSeoIDGenerator returns a generator drawing SeoIDLength characters uniformly from SeoIDAlphabet.
func NewSeoIDGenerator() (CodeGenerator, error) {
	return nanoid.CustomASCII(SeoIDAlphabet, SeoIDLength)
}

// FallbackURL is the canonical path for a listing that has no SEO record.
func FallbackURL(listingID string) string {
	return "/listing/" + listingID
}

// Result describes the URL handed back by GetOrCreate.
type Result struct {
	FullURL string
	// Created is true when this call inserted the record.
	Created bool
	// Fallback is true when FullURL is the non-SEO listing path.
	Fallback bool
}

// Generator produces and persists canonical SEO URLs for listings.
type Generator struct {
	store      Repository
	generateID CodeGenerator
	logger     *zap.Logger
	inflight   singleflight.Group
}

// NewGenerator creates a new SEO URL generator.
func NewGenerator(store Repository, generator CodeGenerator, logger *zap.Logger) *Generator {
	return &Generator{
		store:      store,
		generateID: generator,
		logger:     logger,
	}
}

// GetOrCreate returns the SEO URL for a listing, creating it from title on first use.
// Repeated calls for the same listing return the same URL. It never fails: when the
// record cannot be read or written the listing's fallback path is returned instead.
func (g *Generator) GetOrCreate(ctx context.Context, listingID, title string) Result {
	v, _, _ := g.inflight.Do(listingID, func() (any, error) {
		return g.getOrCreate(ctx, listingID, title), nil
	})

	return v.(Result)
}

func (g *Generator) getOrCreate(ctx context.Context, listingID, title string) Result {
	existing, err := g.store.GetByListingID(ctx, listingID)
	if err == nil {
		return Result{FullURL: existing.FullURL}
	}

	if !errors.Is(err, ErrNotFound) {
		g.logger.Warn("seo url lookup failed, using fallback",
			zap.String("listing_id", listingID),
			zap.Error(err),
		)

		return Result{FullURL: FallbackURL(listingID), Fallback: true}
	}

	slug := Slugify(title)
	seoID := g.generateID()

	url := &URL{
		ListingID: listingID,
		Slug:      slug,
		SeoID:     seoID,
		FullURL:   "/" + slug + "-" + seoID,
		CreatedAt: time.Now(),
	}

	if err := g.store.Save(ctx, url); err != nil {
		g.logger.Warn("seo url insert failed, using fallback",
			zap.String("listing_id", listingID),
			zap.String("full_url", url.FullURL),
			zap.Bool("conflict", errors.Is(err, ErrConflict)),
			zap.Error(err),
		)

		return Result{FullURL: FallbackURL(listingID), Fallback: true}
	}

	g.logger.Debug("seo url created",
		zap.String("listing_id", listingID),
		zap.String("full_url", url.FullURL),
	)

	return Result{FullURL: url.FullURL, Created: true}
}
