// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
// Email arrives normalized (lowercased, trimmed) from the delivery layer.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignInInput defines the data required for an account to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries the new password plus the identity injected by
// the auth gate. The old password is not re-verified; possession of a valid
// token is the only requirement.
type ChangePasswordInput struct {
	AccountID uuid.UUID
	Password  string
}

// --- Output DTOs ---

// AuthOutput returns the account together with a freshly minted session token.
type AuthOutput struct {
	Account *entity.Account
	Token   string
}

// AccountOutput returns the account alone.
type AccountOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// SignUp registers a new account and mints its first session token.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn verifies credentials and mints a session token.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// ChangePassword replaces the password of an authenticated account.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*AccountOutput, error)
}
