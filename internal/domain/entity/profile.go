package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PersonName is the structured name carried by a profile. All parts are
// normalized to lowercase and trimmed of surrounding whitespace before
// persistence; MiddleName may be empty.
type PersonName struct {
	FirstName  string
	MiddleName string
	LastName   string
}

// Normalize lowercases and trims every name part.
func (n PersonName) Normalize() PersonName {
	return PersonName{
		FirstName:  strings.ToLower(strings.TrimSpace(n.FirstName)),
		MiddleName: strings.ToLower(strings.TrimSpace(n.MiddleName)),
		LastName:   strings.ToLower(strings.TrimSpace(n.LastName)),
	}
}

// Profile holds the descriptive data of an account. The relationship to
// Account is 1:1 by convention; Username is a denormalized copy of the owning
// account's username kept for public lookup.
type Profile struct {
	ID        uuid.UUID
	AccountID uuid.UUID // References the owning Account.
	Username  string
	Name      PersonName
	BirthDate *time.Time // Optional.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName is the derived display name: the non-empty name parts joined by
// single spaces. It is computed on read and never persisted.
func (p *Profile) FullName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.Name.FirstName, p.Name.MiddleName, p.Name.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}
