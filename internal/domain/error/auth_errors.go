// Package error defines domain-specific errors for the bookkeeping application.
package error

import "errors"

// Auth and permission domain errors.
var (
	// ErrInvalidCredentials is returned when the email/password pair does not verify.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrPermissionDenied is returned when the acting user lacks the role
	// required for a mutating operation. The calling layer decides whether
	// to surface it; the collections are guaranteed unchanged.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidRole is returned when a role value is not one of the known roles.
	ErrInvalidRole = errors.New("invalid role")

	// ErrMissingToken is returned when no authentication token was provided.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when the authentication token is invalid or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRateLimited is returned when too many login attempts were made.
	ErrRateLimited = errors.New("too many requests")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010002"
	ErrCodePermissionDenied   AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidRole        AuthErrorCode = "AUTH-010004"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewPermissionDenied creates the AuthError returned by every mutating
// operation invoked by an actor whose role is below the required one.
func NewPermissionDenied(operation string) *AuthError {
	return &AuthError{
		Code:    ErrCodePermissionDenied,
		Message: "insufficient role for " + operation,
		Err:     ErrPermissionDenied,
	}
}
