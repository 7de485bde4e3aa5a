// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record of a registered user. It is the only
// entity that carries authentication material; the descriptive data lives
// on Profile.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account, generated at creation.
	Username     string    // Unique handle, used for public profile lookup.
	Email        string    // Unique login identifier, stored lowercased and trimmed.
	PasswordHash string    // bcrypt digest of the password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
