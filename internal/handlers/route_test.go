package handlers_test

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/marketplace-routes/internal/analytics"
	"github.com/serroba/marketplace-routes/internal/handlers"
	"github.com/serroba/marketplace-routes/internal/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouteHandler(f *fixtures, publish func(*analytics.RouteResolvedEvent) error) *handlers.RouteHandler {
	resolver := route.NewResolver(f.seoStore, f.profileStore, zap.NewNop())

	return handlers.NewRouteHandler(resolver, publish, zap.NewNop())
}

func TestResolveRoute(t *testing.T) {
	t.Run("resolves seo url to listing page", func(t *testing.T) {
		f := newFixtures(t)
		handler := newRouteHandler(f, noopPublish[analytics.RouteResolvedEvent]())

		resp, err := handler.ResolveRoute(context.Background(), &handlers.ResolveRouteRequest{Segment: "iphone-15-Xy9Zz2"})

		require.NoError(t, err)
		assert.Equal(t, "listing", resp.Body.State)
		assert.Equal(t, "listing", resp.Body.Page)
		assert.Equal(t, string(route.ShapeSEOListingURL), resp.Body.Shape)
		assert.Equal(t, f.listingID, resp.Body.ListingID)
		assert.Empty(t, resp.Body.ProfileID)
	})

	t.Run("resolves numeric code to profile page", func(t *testing.T) {
		f := newFixtures(t)
		handler := newRouteHandler(f, noopPublish[analytics.RouteResolvedEvent]())

		resp, err := handler.ResolveRoute(context.Background(), &handlers.ResolveRouteRequest{Segment: "482913"})

		require.NoError(t, err)
		assert.Equal(t, "profile", resp.Body.Page)
		assert.Equal(t, "482913", resp.Body.ProfileID)
		assert.Equal(t, f.profile.ID.String(), resp.Body.ProfileUUID)
	})

	t.Run("returns 404 when nothing matches", func(t *testing.T) {
		f := newFixtures(t)
		handler := newRouteHandler(f, noopPublish[analytics.RouteResolvedEvent]())

		resp, err := handler.ResolveRoute(context.Background(), &handlers.ResolveRouteRequest{Segment: "482914"})

		assert.Nil(t, resp)

		var statusErr huma.StatusError

		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.GetStatus())
	})

	t.Run("publishes resolution with request metadata", func(t *testing.T) {
		f := newFixtures(t)

		var events []*analytics.RouteResolvedEvent

		handler := newRouteHandler(f, capturePublish(&events))
		ctx := handlers.ContextWithRequestMeta(context.Background(), handlers.RequestMeta{
			ClientIP:  "192.168.1.1",
			UserAgent: "TestAgent/1.0",
			Referrer:  "https://example.com",
		})

		_, err := handler.ResolveRoute(ctx, &handlers.ResolveRouteRequest{Segment: "9b2c4e"})
		require.NoError(t, err)

		_, _ = handler.ResolveRoute(ctx, &handlers.ResolveRouteRequest{Segment: "nothing"})

		require.Len(t, events, 2)
		assert.Equal(t, "profile", events[0].State)
		assert.Equal(t, string(route.ShapeProfileUUIDPrefix), events[0].Shape)
		assert.Equal(t, "482913", events[0].ProfileID)
		assert.Equal(t, "192.168.1.1", events[0].ClientIP)
		assert.Equal(t, "TestAgent/1.0", events[0].UserAgent)
		assert.Equal(t, "https://example.com", events[0].Referrer)
		assert.Equal(t, "not_found", events[1].State)
	})

	t.Run("succeeds even when publish fails", func(t *testing.T) {
		f := newFixtures(t)
		handler := newRouteHandler(f, errorPublish[analytics.RouteResolvedEvent](errMock))

		resp, err := handler.ResolveRoute(context.Background(), &handlers.ResolveRouteRequest{Segment: "iphone-15-Xy9Zz2"})

		require.NoError(t, err)
		assert.Equal(t, f.listingID, resp.Body.ListingID)
	})
}

func TestContextWithRequestMeta(t *testing.T) {
	meta := handlers.RequestMeta{ClientIP: "10.0.0.1", UserAgent: "ua", Referrer: "ref"}

	ctx := handlers.ContextWithRequestMeta(context.Background(), meta)

	assert.Equal(t, meta, handlers.RequestMetaFromContext(ctx))
	assert.Equal(t, handlers.RequestMeta{}, handlers.RequestMetaFromContext(context.Background()))
}
