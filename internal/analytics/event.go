package analytics

import "time"

const (
	TopicRouteResolved  = "route.resolved"
	TopicSEOURLIssued   = "seo_url.issued"
	TopicProfileCreated = "profile.created"
)

// RouteResolvedEvent is emitted after a path segment has been resolved.
type RouteResolvedEvent struct {
	Segment    string    `json:"segment"`
	State      string    `json:"state"`
	Shape      string    `json:"shape,omitempty"`
	ListingID  string    `json:"listingId,omitempty"`
	ProfileID  string    `json:"profileId,omitempty"`
	ResolvedAt time.Time `json:"resolvedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer,omitempty"`
}

// SEOURLIssuedEvent is emitted when a listing is handed a new SEO URL or a fallback path.
type SEOURLIssuedEvent struct {
	ListingID string    `json:"listingId"`
	FullURL   string    `json:"fullUrl"`
	Fallback  bool      `json:"fallback"`
	IssuedAt  time.Time `json:"issuedAt"`
}

// ProfileCreatedEvent is emitted when a profile is created.
type ProfileCreatedEvent struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	CreatedAt time.Time `json:"createdAt"`
}
