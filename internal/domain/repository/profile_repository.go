package repository

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile matches the lookup key.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByAccountID retrieves the profile owned by the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	// FindByUsername retrieves a profile by the denormalized username copy.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error
}
