package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/marketplace-routes/internal/ratelimit"
	"go.uber.org/zap"
)

var errMissingOperation = errors.New("missing operation in context")

// PolicyRateLimiter returns a Huma middleware enforcing the limiter's policy.
//
// Operations may carry a ratelimit.EndpointConfig under ratelimit.MetadataKey to
// disable limiting, pin a scope, or replace the policy with their own limits.
// Custom limits are counted per route template, so /routes/abc and /routes/xyz
// share a counter for the same client.
func PolicyRateLimiter(
	api huma.API,
	limiter *ratelimit.PolicyLimiter,
	resolver ratelimit.ScopeResolver,
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cfg := ratelimit.GetEndpointConfig(ctx)

		switch {
		case cfg != nil && cfg.Disabled:
			next(ctx)
		case cfg != nil && len(cfg.Limits) > 0:
			if checkCustomLimits(api, ctx, limiter.Store(), cfg.Limits, logger) {
				next(ctx)
			}
		default:
			if checkPolicy(api, ctx, limiter, resolver, logger) {
				next(ctx)
			}
		}
	}
}

func operationPath(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil {
		return op.Path
	}

	return ""
}

func checkPolicy(
	api huma.API,
	ctx huma.Context,
	limiter *ratelimit.PolicyLimiter,
	resolver ratelimit.ScopeResolver,
	logger *zap.Logger,
) bool {
	path := operationPath(ctx)

	allowed, exceeded, err := limiter.Allow(ctx.Context(), clientKey(ctx), resolver.Resolve(ctx))
	if err != nil {
		logger.Error("rate limit check failed", zap.String("path", path), zap.Error(err))
		_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

		return false
	}

	if allowed {
		return true
	}

	msg := "rate limit exceeded"

	if exceeded != nil {
		msg = fmt.Sprintf("rate limit exceeded: %s scope, %d/%d requests in %s",
			exceeded.Scope, exceeded.Count, exceeded.Config.Max, exceeded.Config.Window)

		logger.Warn("rate limit exceeded",
			zap.String("path", path),
			zap.String("method", ctx.Method()),
			zap.String("scope", string(exceeded.Scope)),
			zap.Int64("count", exceeded.Count),
			zap.Int64("max", exceeded.Config.Max),
			zap.Duration("window", exceeded.Config.Window),
			zap.String("client_ip", ClientIP(ctx)),
		)
	}

	_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, msg)

	return false
}

func checkCustomLimits(
	api huma.API,
	ctx huma.Context,
	store ratelimit.Store,
	limits []ratelimit.LimitConfig,
	logger *zap.Logger,
) bool {
	path := operationPath(ctx)
	if path == "" {
		logger.Error("missing operation in context for rate limiting")
		_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", errMissingOperation)

		return false
	}

	client := clientKey(ctx)

	for _, limit := range limits {
		key := fmt.Sprintf("%s:custom:%s:%d", client, path, limit.Window.Milliseconds())

		count, err := store.Record(ctx.Context(), key, limit.Window)
		if err != nil {
			logger.Error("custom rate limit check failed", zap.String("path", path), zap.Error(err))
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

			return false
		}

		if count > limit.Max {
			logger.Warn("custom rate limit exceeded",
				zap.String("path", path),
				zap.String("method", ctx.Method()),
				zap.Int64("count", count),
				zap.Int64("max", limit.Max),
				zap.Duration("window", limit.Window),
				zap.String("client_ip", ClientIP(ctx)),
			)
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests,
				fmt.Sprintf("rate limit exceeded: %d/%d requests in %s", count, limit.Max, limit.Window))

			return false
		}
	}

	return true
}
