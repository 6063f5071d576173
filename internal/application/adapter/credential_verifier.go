// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CredentialVerifier verifies a login secret for an account. The interface
// exists so the demo shared-password gate can be swapped for a real
// hashing/issuance implementation without touching any other component.
type CredentialVerifier interface {
	// Verify checks the secret for the given email and returns the matching
	// user, or domain ErrInvalidCredentials on failure.
	Verify(ctx context.Context, email, secret string) (*entity.User, error)
}
