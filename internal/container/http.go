package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/marketplace-routes/internal/analytics"
	"github.com/serroba/marketplace-routes/internal/handlers"
	"github.com/serroba/marketplace-routes/internal/health"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"github.com/serroba/marketplace-routes/internal/middleware"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/ratelimit"
	"github.com/serroba/marketplace-routes/internal/route"
	"github.com/serroba/marketplace-routes/internal/seo"
	"github.com/serroba/marketplace-routes/internal/store"
	"go.uber.org/zap"
)

// RateLimitPackage provides the policy limiter counting requests in Redis.
func RateLimitPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*ratelimit.PolicyLimiter, error) {
		rlStore := store.NewRateLimitRedisStore(do.MustInvoke[*redis.Client](i))

		return ratelimit.NewPolicyLimiter(rlStore, ratelimit.DefaultPolicy()), nil
	})
}

// HTTPPackage provides the chi router and the huma API with every route registered.
func HTTPPackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(i, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		opts := do.MustInvoke[*Options](i)

		api := humachi.New(router, huma.DefaultConfig("Marketplace Routes", "1.0.0"))

		api.UseMiddleware(middleware.RequestMeta(api))
		api.UseMiddleware(middleware.PolicyRateLimiter(
			api,
			do.MustInvoke[*ratelimit.PolicyLimiter](i),
			ratelimit.NewOperationScopeResolver(),
			logger,
		))

		routeHandler := handlers.NewRouteHandler(
			do.MustInvoke[*route.Resolver](i),
			do.MustInvoke[messaging.Publish[analytics.RouteResolvedEvent]](i),
			logger,
		)
		listingHandler := handlers.NewListingHandler(
			do.MustInvoke[*seo.Generator](i),
			do.MustInvoke[messaging.Publish[analytics.SEOURLIssuedEvent]](i),
			logger,
		)
		profileHandler := handlers.NewProfileHandler(
			do.MustInvoke[*profile.Service](i),
			do.MustInvoke[messaging.Publish[analytics.ProfileCreatedEvent]](i),
			logger,
		)

		handlers.RegisterRoutes(api, routeHandler, listingHandler, profileHandler)

		checkers := map[string]health.Checker{
			"redis": health.NewRedisChecker(do.MustInvoke[*redis.Client](i)),
		}
		if opts.Storage == StoragePostgres {
			checkers["postgres"] = health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i))
		}

		health.RegisterRoutes(api, health.NewHandler(checkers))

		return api, nil
	})
}
