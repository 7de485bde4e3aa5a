package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertProfileInput carries the profile payload plus the identity injected
// by the auth gate.
type UpsertProfileInput struct {
	AccountID  uuid.UUID
	FirstName  string
	MiddleName string
	LastName   string
	BirthDate  *time.Time
}

// UpsertProfileOutput reports the stored profile and whether an existing
// record was updated (as opposed to created).
type UpsertProfileOutput struct {
	Profile *entity.Profile
	Updated bool
}

// ProfileUsecase defines the interface for profile operations.
type ProfileUsecase interface {
	// Upsert merges the payload into the account's existing profile, or
	// creates one when none exists.
	Upsert(ctx context.Context, input *UpsertProfileInput) (*UpsertProfileOutput, error)

	// GetByUsername retrieves a profile through the public username lookup.
	GetByUsername(ctx context.Context, username string) (*entity.Profile, error)
}
