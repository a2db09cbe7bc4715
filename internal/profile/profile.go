package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrConflict = errors.New("profile already exists")
)

// Profile is a marketplace user profile. It is addressable by its UUID,
// by its 6-digit ProfileID, or by the first 6 characters of its UUID.
type Profile struct {
	ID          uuid.UUID
	ProfileID   string
	DisplayName string
	CreatedAt   time.Time
}

// Repository defines storage operations for profiles.
type Repository interface {
	// Save inserts a profile. Returns ErrConflict when the UUID or ProfileID is taken.
	Save(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByProfileID(ctx context.Context, profileID string) (*Profile, error)

	// FindByIDPrefix returns the earliest-created profile whose UUID starts
	// with prefix, compared case-insensitively.
	FindByIDPrefix(ctx context.Context, prefix string) (*Profile, error)

	ProfileIDExists(ctx context.Context, profileID string) (bool, error)
}
