package handlers

import (
	"context"
	"time"

	"github.com/serroba/marketplace-routes/internal/analytics"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"github.com/serroba/marketplace-routes/internal/seo"
	"go.uber.org/zap"
)

// SEOURLGenerator gets or creates a listing's canonical URL.
type SEOURLGenerator interface {
	GetOrCreate(ctx context.Context, listingID, title string) seo.Result
}

// ListingHandler handles listing URL operations.
type ListingHandler struct {
	generator     SEOURLGenerator
	publishIssued messaging.Publish[analytics.SEOURLIssuedEvent]
	logger        *zap.Logger
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(
	generator SEOURLGenerator,
	publishIssued messaging.Publish[analytics.SEOURLIssuedEvent],
	logger *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		generator:     generator,
		publishIssued: publishIssued,
		logger:        logger,
	}
}

// PutSEOURL returns the listing's SEO URL, creating it on first call.
// It always answers with some dereferenceable path.
func (h *ListingHandler) PutSEOURL(ctx context.Context, req *SEOURLRequest) (*SEOURLResponse, error) {
	result := h.generator.GetOrCreate(ctx, req.ListingID, req.Body.Title)

	if result.Created || result.Fallback {
		event := &analytics.SEOURLIssuedEvent{
			ListingID: req.ListingID,
			FullURL:   result.FullURL,
			Fallback:  result.Fallback,
			IssuedAt:  time.Now(),
		}

		if err := h.publishIssued(event); err != nil {
			h.logger.Error("failed to publish seo url event",
				zap.String("listing_id", req.ListingID),
				zap.Error(err),
			)
		}
	}

	resp := &SEOURLResponse{}
	resp.Body.FullURL = result.FullURL
	resp.Body.Fallback = result.Fallback

	return resp, nil
}
