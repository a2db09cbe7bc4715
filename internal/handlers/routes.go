package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/marketplace-routes/internal/ratelimit"
)

// RegisterRoutes registers the route resolution, listing, profile and category endpoints.
func RegisterRoutes(
	api huma.API,
	routeHandler *RouteHandler,
	listingHandler *ListingHandler,
	profileHandler *ProfileHandler,
) {
	// Every navigation to a dynamic path lands here, so reads get generous limits.
	huma.Register(api, huma.Operation{
		OperationID: "resolve-route",
		Method:      http.MethodGet,
		Path:        "/routes/{segment}",
		Summary:     "Resolve path segment",
		Description: "Resolves a path segment to a listing (SEO URL) or a profile (6-digit code, UUID prefix or full UUID).",
		Tags:        []string{"Routes"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 600},
				},
			},
		},
	}, routeHandler.ResolveRoute)

	huma.Register(api, huma.Operation{
		OperationID: "put-listing-seo-url",
		Method:      http.MethodPut,
		Path:        "/listings/{listingId}/seo-url",
		Summary:     "Get or create listing SEO URL",
		Description: "Returns the listing's canonical SEO URL, generating it from the title on first call.",
		Tags:        []string{"Listings"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 60},
					{Window: time.Hour, Max: 1000},
				},
			},
		},
	}, listingHandler.PutSEOURL)

	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profiles",
		Summary:       "Create profile",
		Description:   "Creates a profile and assigns its 6-digit profile code.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{Scope: ratelimit.ScopeWrite},
		},
	}, profileHandler.CreateProfile)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{Disabled: true},
		},
	}, ListCategories)
}
