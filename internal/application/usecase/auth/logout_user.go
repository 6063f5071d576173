// Package auth contains authentication use cases.
package auth

import (
	"context"

	"github.com/financeflow/backend/internal/application/adapter"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	Token string
}

// LogoutUserUseCase handles session invalidation.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the session token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if input.Token == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"no session token provided",
			domainerror.ErrMissingToken,
		)
	}
	return uc.tokenService.InvalidateToken(ctx, input.Token)
}
