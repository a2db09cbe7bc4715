package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/marketplace-routes/internal/analytics"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"github.com/serroba/marketplace-routes/internal/route"
	"go.uber.org/zap"
)

// Resolver resolves a path segment to the entity it identifies.
type Resolver interface {
	Resolve(ctx context.Context, path string) route.Resolution
}

// RouteHandler answers which page a path segment should mount.
type RouteHandler struct {
	resolver        Resolver
	publishResolved messaging.Publish[analytics.RouteResolvedEvent]
	logger          *zap.Logger
}

// NewRouteHandler creates a new route handler.
func NewRouteHandler(
	resolver Resolver,
	publishResolved messaging.Publish[analytics.RouteResolvedEvent],
	logger *zap.Logger,
) *RouteHandler {
	return &RouteHandler{
		resolver:        resolver,
		publishResolved: publishResolved,
		logger:          logger,
	}
}

// ResolveRoute resolves a segment. Anything unresolved, including storage
// failures, is reported as a plain 404.
func (h *RouteHandler) ResolveRoute(ctx context.Context, req *ResolveRouteRequest) (*ResolveRouteResponse, error) {
	res := h.resolver.Resolve(ctx, req.Segment)

	h.publish(ctx, req.Segment, res)

	if res.State != route.StateListing && res.State != route.StateProfile {
		return nil, huma.Error404NotFound("page not found")
	}

	resp := &ResolveRouteResponse{}
	resp.Body.State = string(res.State)
	resp.Body.Page = string(route.PageFor(res.State))
	resp.Body.Shape = string(res.Shape)
	resp.Body.ListingID = res.ListingID

	if res.Profile != nil {
		resp.Body.ProfileID = res.Profile.ProfileID
		resp.Body.ProfileUUID = res.Profile.ID.String()
	}

	return resp, nil
}

func (h *RouteHandler) publish(ctx context.Context, segment string, res route.Resolution) {
	meta := RequestMetaFromContext(ctx)
	event := &analytics.RouteResolvedEvent{
		Segment:    segment,
		State:      string(res.State),
		Shape:      string(res.Shape),
		ListingID:  res.ListingID,
		ResolvedAt: time.Now(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
	}

	if res.Profile != nil {
		event.ProfileID = res.Profile.ProfileID
	}

	if err := h.publishResolved(event); err != nil {
		h.logger.Error("failed to publish route resolved event",
			zap.String("segment", segment),
			zap.Error(err),
		)
	}
}
