package analytics

import "context"

// Store defines the interface for persisting analytics events.
type Store interface {
	SaveRouteResolved(ctx context.Context, event *RouteResolvedEvent) error
	SaveSEOURLIssued(ctx context.Context, event *SEOURLIssuedEvent) error
	SaveProfileCreated(ctx context.Context, event *ProfileCreatedEvent) error
}
