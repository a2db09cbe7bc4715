package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service creates profiles.
type Service struct {
	store    Repository
	assigner *IDAssigner
}

// NewService creates a new profile service.
func NewService(store Repository, assigner *IDAssigner) *Service {
	return &Service{store: store, assigner: assigner}
}

// Create stores a new profile with a fresh UUID and profile code.
// The profile code is assigned once here and never changes.
func (s *Service) Create(ctx context.Context, displayName string) (*Profile, error) {
	p := &Profile{
		ID:          uuid.New(),
		ProfileID:   s.assigner.Assign(ctx),
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile %s: %w", p.ProfileID, err)
	}

	return p, nil
}
