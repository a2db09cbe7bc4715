package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/seo"
	"github.com/serroba/marketplace-routes/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSEOURL(listingID, slug, seoID string) *seo.URL {
	return &seo.URL{
		ListingID: listingID,
		Slug:      slug,
		SeoID:     seoID,
		FullURL:   "/" + slug + "-" + seoID,
		CreatedAt: time.Now(),
	}
}

func TestMemorySEOStore(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and reads by listing and full url", func(t *testing.T) {
		s := store.NewMemorySEOStore()
		require.NoError(t, s.Save(ctx, newSEOURL("L-1", "bike", "Ab12Cd")))

		byListing, err := s.GetByListingID(ctx, "L-1")
		require.NoError(t, err)
		assert.Equal(t, "/bike-Ab12Cd", byListing.FullURL)

		byURL, err := s.GetByFullURL(ctx, "/bike-Ab12Cd")
		require.NoError(t, err)
		assert.Equal(t, "L-1", byURL.ListingID)
	})

	t.Run("rejects second record for a listing", func(t *testing.T) {
		s := store.NewMemorySEOStore()
		require.NoError(t, s.Save(ctx, newSEOURL("L-1", "bike", "Ab12Cd")))

		err := s.Save(ctx, newSEOURL("L-1", "bike", "Zz9Yy8"))

		require.ErrorIs(t, err, seo.ErrConflict)

		got, _ := s.GetByListingID(ctx, "L-1")
		assert.Equal(t, "Ab12Cd", got.SeoID)
	})

	t.Run("rejects duplicate full url", func(t *testing.T) {
		s := store.NewMemorySEOStore()
		require.NoError(t, s.Save(ctx, newSEOURL("L-1", "bike", "Ab12Cd")))

		err := s.Save(ctx, newSEOURL("L-2", "bike", "Ab12Cd"))

		require.ErrorIs(t, err, seo.ErrConflict)

		_, err = s.GetByListingID(ctx, "L-2")
		assert.ErrorIs(t, err, seo.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown keys", func(t *testing.T) {
		s := store.NewMemorySEOStore()

		_, err := s.GetByListingID(ctx, "missing")
		require.ErrorIs(t, err, seo.ErrNotFound)

		_, err = s.GetByFullURL(ctx, "/missing-Ab12Cd")
		assert.ErrorIs(t, err, seo.ErrNotFound)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := store.NewMemorySEOStore()
		require.NoError(t, s.Save(ctx, newSEOURL("L-1", "bike", "Ab12Cd")))

		got, _ := s.GetByListingID(ctx, "L-1")
		got.FullURL = "/changed"

		again, _ := s.GetByListingID(ctx, "L-1")
		assert.Equal(t, "/bike-Ab12Cd", again.FullURL)
	})
}

func newProfile(id, code string, createdAt time.Time) *profile.Profile {
	return &profile.Profile{
		ID:        uuid.MustParse(id),
		ProfileID: code,
		CreatedAt: createdAt,
	}
}

func TestMemoryProfileStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("reads by uuid and profile code", func(t *testing.T) {
		s := store.NewMemoryProfileStore()
		p := newProfile("9b2c4e1a-7d3f-4a6b-8c5d-0e1f2a3b4c5d", "482913", now)
		require.NoError(t, s.Save(ctx, p))

		byID, err := s.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "482913", byID.ProfileID)

		byCode, err := s.GetByProfileID(ctx, "482913")
		require.NoError(t, err)
		assert.Equal(t, p.ID, byCode.ID)

		_, err = s.GetByProfileID(ctx, "482914")
		assert.ErrorIs(t, err, profile.ErrNotFound)
	})

	t.Run("rejects duplicate profile code", func(t *testing.T) {
		s := store.NewMemoryProfileStore()
		require.NoError(t, s.Save(ctx, newProfile("9b2c4e1a-7d3f-4a6b-8c5d-0e1f2a3b4c5d", "482913", now)))

		err := s.Save(ctx, newProfile("1b2c4e1a-7d3f-4a6b-8c5d-0e1f2a3b4c5d", "482913", now))

		assert.ErrorIs(t, err, profile.ErrConflict)
	})

	t.Run("reports profile code existence", func(t *testing.T) {
		s := store.NewMemoryProfileStore()
		require.NoError(t, s.Save(ctx, newProfile("9b2c4e1a-7d3f-4a6b-8c5d-0e1f2a3b4c5d", "482913", now)))

		exists, err := s.ProfileIDExists(ctx, "482913")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.ProfileIDExists(ctx, "000000")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("prefix match picks earliest created", func(t *testing.T) {
		s := store.NewMemoryProfileStore()
		older := newProfile("abcdef01-0000-4000-8000-000000000002", "111111", now.Add(-time.Hour))
		newer := newProfile("abcdef00-0000-4000-8000-000000000001", "222222", now)
		require.NoError(t, s.Save(ctx, newer))
		require.NoError(t, s.Save(ctx, older))

		got, err := s.FindByIDPrefix(ctx, "ABCDEF")

		require.NoError(t, err)
		assert.Equal(t, older.ID, got.ID)
	})

	t.Run("prefix ties break on uuid order", func(t *testing.T) {
		s := store.NewMemoryProfileStore()
		b := newProfile("abcdef02-0000-4000-8000-000000000000", "111111", now)
		a := newProfile("abcdef01-0000-4000-8000-000000000000", "222222", now)
		require.NoError(t, s.Save(ctx, b))
		require.NoError(t, s.Save(ctx, a))

		got, err := s.FindByIDPrefix(ctx, "abcdef")

		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("prefix without match", func(t *testing.T) {
		s := store.NewMemoryProfileStore()

		_, err := s.FindByIDPrefix(ctx, "abcdef")

		assert.ErrorIs(t, err, profile.ErrNotFound)
	})
}
