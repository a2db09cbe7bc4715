package handlers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/seo"
	"github.com/serroba/marketplace-routes/internal/store"
	"github.com/stretchr/testify/require"
)

var errMock = errors.New("mock error")

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

// capturePublish returns a publish function recording every event.
func capturePublish[T any](events *[]*T) messaging.Publish[T] {
	return func(e *T) error {
		*events = append(*events, e)

		return nil
	}
}

type fixtures struct {
	seoStore     *store.MemorySEOStore
	profileStore *store.MemoryProfileStore
	listingID    string
	fullURL      string
	profile      *profile.Profile
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	ctx := context.Background()
	f := &fixtures{
		seoStore:     store.NewMemorySEOStore(),
		profileStore: store.NewMemoryProfileStore(),
		listingID:    "L-100",
		fullURL:      "/iphone-15-Xy9Zz2",
		profile: &profile.Profile{
			ID:          uuid.MustParse("9b2c4e1a-7d3f-4a6b-8c5d-0e1f2a3b4c5d"),
			ProfileID:   "482913",
			DisplayName: "Olena",
			CreatedAt:   time.Now(),
		},
	}

	require.NoError(t, f.seoStore.Save(ctx, &seo.URL{
		ListingID: f.listingID,
		Slug:      "iphone-15",
		SeoID:     "Xy9Zz2",
		FullURL:   f.fullURL,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, f.profileStore.Save(ctx, f.profile))

	return f
}
