package store

import (
	"context"

	"github.com/serroba/marketplace-routes/internal/analytics"
	"go.uber.org/zap"
)

// Noop is an analytics.Store that only logs the events it receives.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveRouteResolved(_ context.Context, event *analytics.RouteResolvedEvent) error {
	n.logger.Info("route resolved event received",
		zap.String("segment", event.Segment),
		zap.String("state", event.State),
		zap.String("shape", event.Shape),
		zap.Time("resolvedAt", event.ResolvedAt),
	)

	return nil
}

func (n *Noop) SaveSEOURLIssued(_ context.Context, event *analytics.SEOURLIssuedEvent) error {
	n.logger.Info("seo url issued event received",
		zap.String("listingId", event.ListingID),
		zap.String("fullUrl", event.FullURL),
		zap.Bool("fallback", event.Fallback),
	)

	return nil
}

func (n *Noop) SaveProfileCreated(_ context.Context, event *analytics.ProfileCreatedEvent) error {
	n.logger.Info("profile created event received",
		zap.String("id", event.ID),
		zap.String("profileId", event.ProfileID),
	)

	return nil
}

// Compile-time check.
var _ analytics.Store = (*Noop)(nil)
