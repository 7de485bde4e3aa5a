package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for minting and verifying the stateless
// session tokens. Tokens are never persisted server-side; expiry is the only
// termination.
type TokenService interface {
	// Sign mints a compact signed token embedding the account id and the
	// issuance time, valid for a fixed window from issuance.
	Sign(accountID uuid.UUID) (string, error)

	// Verify checks the token's signature, structure and expiry, and returns
	// the embedded account id.
	Verify(tokenString string) (uuid.UUID, error)
}
