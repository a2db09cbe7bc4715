package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

const (
	// ProfileIDLength is the number of digits in a profile code.
	ProfileIDLength = 6
	// DefaultMaxAttempts bounds the random draws before falling back to the clock.
	DefaultMaxAttempts = 10
)

// CodeGenerator generates candidate profile codes.
type CodeGenerator func() string

// NewDigitGenerator returns a generator of ProfileIDLength random ASCII digits.
func NewDigitGenerator() (CodeGenerator, error) {
	return nanoid.CustomASCII("0123456789", ProfileIDLength)
}

// IDAssigner picks a free 6-digit profile code.
type IDAssigner struct {
	store       Repository
	generate    CodeGenerator
	maxAttempts int
	logger      *zap.Logger
}

// NewIDAssigner creates a new profile code assigner.
func NewIDAssigner(store Repository, generator CodeGenerator, logger *zap.Logger) *IDAssigner {
	return &IDAssigner{
		store:       store,
		generate:    generator,
		maxAttempts: DefaultMaxAttempts,
		logger:      logger,
	}
}

// Assign draws random codes until one is unused. After maxAttempts draws, or when the
// uniqueness check fails, it derives a code from the current time instead. The fallback
// can collide; the store's unique constraint catches that on insert.
func (a *IDAssigner) Assign(ctx context.Context) string {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		candidate := a.generate()

		exists, err := a.store.ProfileIDExists(ctx, candidate)
		if err != nil {
			a.logger.Warn("profile id uniqueness check failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)

			break
		}

		if !exists {
			return candidate
		}
	}

	fallback := TimestampProfileID(time.Now())

	a.logger.Warn("profile id draws exhausted, using timestamp fallback",
		zap.String("profile_id", fallback),
	)

	return fallback
}

// TimestampProfileID derives a 6-digit code from the last digits of t in milliseconds.
func TimestampProfileID(t time.Time) string {
	return fmt.Sprintf("%06d", t.UnixMilli()%1_000_000)
}
