package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/marketplace-routes/internal/analytics"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"github.com/serroba/marketplace-routes/internal/profile"
	"go.uber.org/zap"
)

// ProfileCreator creates profiles.
type ProfileCreator interface {
	Create(ctx context.Context, displayName string) (*profile.Profile, error)
}

// ProfileHandler handles profile operations.
type ProfileHandler struct {
	profiles       ProfileCreator
	publishCreated messaging.Publish[analytics.ProfileCreatedEvent]
	logger         *zap.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(
	profiles ProfileCreator,
	publishCreated messaging.Publish[analytics.ProfileCreatedEvent],
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profiles:       profiles,
		publishCreated: publishCreated,
		logger:         logger,
	}
}

func (h *ProfileHandler) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*ProfileResponse, error) {
	p, err := h.profiles.Create(ctx, req.Body.DisplayName)
	if err != nil {
		h.logger.Error("failed to create profile", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create profile")
	}

	event := &analytics.ProfileCreatedEvent{
		ID:        p.ID.String(),
		ProfileID: p.ProfileID,
		CreatedAt: p.CreatedAt,
	}

	if err := h.publishCreated(event); err != nil {
		h.logger.Error("failed to publish profile created event",
			zap.String("profile_id", p.ProfileID),
			zap.Error(err),
		)
	}

	resp := &ProfileResponse{}
	resp.Body.ID = p.ID.String()
	resp.Body.ProfileID = p.ProfileID
	resp.Body.DisplayName = p.DisplayName
	resp.Body.CreatedAt = p.CreatedAt

	return resp, nil
}
