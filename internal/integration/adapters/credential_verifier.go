// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// sharedPasswordVerifier is the demo credential gate: every seeded account
// shares one configured password. Demo only; swap in the bcrypt verifier for
// anything beyond a demo deployment.
type sharedPasswordVerifier struct {
	userRepo adapter.UserRepository
	password string
}

// NewSharedPasswordVerifier creates the demo shared-password verifier.
func NewSharedPasswordVerifier(userRepo adapter.UserRepository, password string) adapter.CredentialVerifier {
	return &sharedPasswordVerifier{
		userRepo: userRepo,
		password: password,
	}
}

// Verify checks the shared password and resolves the account by email.
func (v *sharedPasswordVerifier) Verify(ctx context.Context, email, secret string) (*entity.User, error) {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(v.password)) != 1 {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}
	return v.lookup(ctx, email)
}

func (v *sharedPasswordVerifier) lookup(ctx context.Context, email string) (*entity.User, error) {
	user, err := v.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		// An unknown email reads the same as a wrong password.
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}
	return user, nil
}

// bcryptVerifier checks the secret against a configured bcrypt hash shared by
// all accounts. Same account model as the demo verifier, production-grade
// comparison.
type bcryptVerifier struct {
	userRepo     adapter.UserRepository
	passwordHash string
}

// NewBcryptVerifier creates a bcrypt-backed credential verifier.
func NewBcryptVerifier(userRepo adapter.UserRepository, passwordHash string) adapter.CredentialVerifier {
	return &bcryptVerifier{
		userRepo:     userRepo,
		passwordHash: passwordHash,
	}
}

// Verify compares the secret against the configured hash and resolves the
// account by email.
func (v *bcryptVerifier) Verify(ctx context.Context, email, secret string) (*entity.User, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(secret)); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := v.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}
	return user, nil
}
