// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateKey is returned when an insert or update violates the
	// unique constraints on username or email.
	ErrDuplicateKey = errors.New("duplicate username or email")
)

// AccountRepository defines the standard operations for account persistence.
// All lookups are exact-match; email is normalized by callers before lookup.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (normalized) email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account. The store enforces username/email
	// uniqueness; violations surface as ErrDuplicateKey.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error
}
