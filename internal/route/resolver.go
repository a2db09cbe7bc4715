package route

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/seo"
	"go.uber.org/zap"
)

// State is the progress of resolving one path.
type State string

const (
	StatePending  State = "pending"
	StateListing  State = "listing"
	StateProfile  State = "profile"
	StateNotFound State = "not_found"
)

// Resolution is the outcome of resolving a path.
type Resolution struct {
	State State
	// Shape is the candidate that matched; empty when nothing did.
	Shape     Shape
	ListingID string
	Profile   *profile.Profile
}

// NotFound is the terminal resolution for paths that identify nothing.
var NotFound = Resolution{State: StateNotFound}

// ListingLookup finds SEO URL records by their full path.
type ListingLookup interface {
	GetByFullURL(ctx context.Context, fullURL string) (*seo.URL, error)
}

// ProfileLookup finds profiles by each of their addressing schemes.
type ProfileLookup interface {
	GetByProfileID(ctx context.Context, profileID string) (*profile.Profile, error)
	FindByIDPrefix(ctx context.Context, prefix string) (*profile.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
}

// Resolver decides what a path segment identifies.
type Resolver struct {
	listings ListingLookup
	profiles ProfileLookup
	logger   *zap.Logger
}

// NewResolver creates a new resolver.
func NewResolver(listings ListingLookup, profiles ProfileLookup, logger *zap.Logger) *Resolver {
	return &Resolver{
		listings: listings,
		profiles: profiles,
		logger:   logger,
	}
}

// Resolve classifies path and checks each candidate shape against storage in
// priority order, returning the first match. Candidates are looked up one at a
// time; a lookup error counts as a miss for that candidate only. A path that
// matches no shape resolves to NotFound without touching storage.
func (r *Resolver) Resolve(ctx context.Context, path string) Resolution {
	segment := Segment(path)

	for _, shape := range Classify(path) {
		if ctx.Err() != nil {
			return NotFound
		}

		res, err := r.lookup(ctx, shape, segment)
		if err == nil {
			return res
		}

		if isMiss(err) {
			r.logger.Debug("route candidate missed",
				zap.String("segment", segment),
				zap.String("shape", string(shape)),
			)

			continue
		}

		r.logger.Warn("route candidate lookup failed",
			zap.String("segment", segment),
			zap.String("shape", string(shape)),
			zap.Error(err),
		)
	}

	return NotFound
}

func (r *Resolver) lookup(ctx context.Context, shape Shape, segment string) (Resolution, error) {
	switch shape {
	case ShapeSEOListingURL:
		url, err := r.listings.GetByFullURL(ctx, "/"+segment)
		if err != nil {
			return NotFound, err
		}

		return Resolution{State: StateListing, Shape: shape, ListingID: url.ListingID}, nil
	case ShapeProfileNumericID:
		return r.profileResolution(shape)(r.profiles.GetByProfileID(ctx, segment))
	case ShapeProfileUUIDPrefix:
		return r.profileResolution(shape)(r.profiles.FindByIDPrefix(ctx, strings.ToLower(segment)))
	case ShapeProfileFullUUID:
		id, err := uuid.Parse(segment)
		if err != nil {
			return NotFound, err
		}

		return r.profileResolution(shape)(r.profiles.GetByID(ctx, id))
	}

	return NotFound, profile.ErrNotFound
}

func (r *Resolver) profileResolution(shape Shape) func(*profile.Profile, error) (Resolution, error) {
	return func(p *profile.Profile, err error) (Resolution, error) {
		if err != nil {
			return NotFound, err
		}

		return Resolution{State: StateProfile, Shape: shape, Profile: p}, nil
	}
}

func isMiss(err error) bool {
	return errors.Is(err, seo.ErrNotFound) || errors.Is(err, profile.ErrNotFound)
}
