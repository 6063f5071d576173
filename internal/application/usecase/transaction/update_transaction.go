// Package transaction contains cash-flow journal use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a full-record transaction update.
type UpdateTransactionInput struct {
	Actor        entity.Actor
	ID           uuid.UUID
	Date         time.Time
	Description  string
	Type         entity.TransactionType
	MainCategory string
	SubCategory  string
	Amount       decimal.Decimal
	Remarks      string
	IsRecurring  bool
	Frequency    entity.Frequency
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update. Requires the Editor role.
// Mutation is edit-in-place by id: descriptive fields are replaced wholesale;
// identity, code, comments and createdBy are preserved. Toggling recurrence on
// resets the watermark to the transaction date, the only transition out of the
// template state is toggling it off here.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return nil, domainerror.NewPermissionDenied("update transaction")
	}

	if err := validateTransactionFields(input.Description, input.Type, input.MainCategory, input.SubCategory, input.Amount, input.Remarks); err != nil {
		return nil, err
	}
	if input.IsRecurring && !isValidFrequency(input.Frequency) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be Daily, Weekly, Monthly or Yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	txn, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	txn.Date = truncateToDay(input.Date)
	txn.Description = input.Description
	txn.Type = input.Type
	txn.MainCategory = input.MainCategory
	txn.SubCategory = input.SubCategory
	txn.Amount = input.Amount
	txn.Remarks = input.Remarks
	if input.IsRecurring {
		txn.MarkRecurring(input.Frequency)
	} else {
		txn.ClearRecurring()
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
