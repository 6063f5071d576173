// Package auth contains authentication use cases.
package auth

import (
	"context"
	"strings"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	User  *entity.User
	Token string
}

// LoginUserUseCase handles user authentication.
type LoginUserUseCase struct {
	verifier     adapter.CredentialVerifier
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(verifier adapter.CredentialVerifier, tokenService adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		verifier:     verifier,
		tokenService: tokenService,
	}
}

// Execute verifies the credentials and issues a session token.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"email and password are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := uc.verifier.Verify(ctx, email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokenService.GenerateToken(ctx, user)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to issue session token",
			err,
		)
	}

	return &LoginUserOutput{User: user, Token: token}, nil
}
