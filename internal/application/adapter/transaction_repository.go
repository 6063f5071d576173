// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
//
// Transactions are read and written whole, comments included; mutation is
// full-record replacement by id (last write wins).
type TransactionRepository interface {
	// Create stores a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// SaveOccurrences stores materialized occurrences together with the
	// template's advanced watermark in a single atomic write. Used by the
	// recurrence engine; a failed run must leave the journal untouched.
	SaveOccurrences(ctx context.Context, template *entity.Transaction, occurrences []*entity.Transaction) error

	// FindByID retrieves a transaction with its comments by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves all transactions with their comments, newest date first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update replaces an existing transaction record.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction and its comments.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddComment appends a comment to a transaction.
	AddComment(ctx context.Context, transactionID uuid.UUID, comment *entity.Comment) error
}
