// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

const tokenIssuer = "financeflow"

// RevocationStore tracks tokens invalidated before their natural expiry.
type RevocationStore interface {
	// Revoke marks the token revoked until its ttl elapses.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether the token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// SessionClaims represents the custom claims for session JWTs.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with HS256 JWTs
// and a revocation store for logout.
type tokenService struct {
	secret      []byte
	duration    time.Duration
	revocations RevocationStore
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration, revocations RevocationStore) adapter.TokenService {
	return &tokenService{
		secret:      []byte(secret),
		duration:    duration,
		revocations: revocations,
	}
}

// GenerateToken issues a signed session token carrying the user's role.
func (s *tokenService) GenerateToken(_ context.Context, user *entity.User) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a session token and returns its claims.
func (s *tokenService) ValidateToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	revoked, err := s.revocations.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"token has been revoked",
			domainerror.ErrInvalidToken,
		)
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid user id in token",
			domainerror.ErrInvalidToken,
		)
	}
	role := entity.Role(claims.Role)
	if !role.Valid() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			"unknown role in token",
			domainerror.ErrInvalidRole,
		)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// InvalidateToken revokes a session token until it would have expired anyway.
func (s *tokenService) InvalidateToken(ctx context.Context, tokenString string) error {
	ttl := s.duration
	if claims, err := s.ValidateToken(ctx, tokenString); err == nil {
		if remaining := time.Until(claims.ExpiresAt); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.revocations.Revoke(ctx, tokenString, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
