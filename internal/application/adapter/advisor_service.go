// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/financeflow/backend/internal/domain/entity"
)

// AdvisorService defines the interface for the external financial-advisory
// text generator. Implementations must never propagate a failure past this
// boundary as a panic; errors are converted to a fallback message by the
// advisory use case.
type AdvisorService interface {
	// Advise produces free-form advisory text for the given transaction list.
	Advise(ctx context.Context, transactions []*entity.Transaction) (string, error)

	// IsAvailable checks if the advisory service is properly configured.
	IsAvailable() bool
}

// AdvisoryCache guards advisory requests against overlapping invocations and
// retains the most recent advice.
type AdvisoryCache interface {
	// TryAcquire sets the in-flight marker. It returns false when a request
	// is already in flight.
	TryAcquire(ctx context.Context) (bool, error)

	// Release clears the in-flight marker.
	Release(ctx context.Context) error

	// GetLastAdvice returns the cached last advice, or "" when none is cached.
	GetLastAdvice(ctx context.Context) (string, error)

	// SetLastAdvice caches the advice text.
	SetLastAdvice(ctx context.Context, advice string) error
}
