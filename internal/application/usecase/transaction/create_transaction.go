// Package transaction contains cash-flow journal use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxRemarksLength is the maximum allowed length for transaction remarks.
	MaxRemarksLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Actor        entity.Actor
	Date         time.Time
	Description  string
	Type         entity.TransactionType
	MainCategory string
	SubCategory  string
	Amount       decimal.Decimal
	Remarks      string
	IsRecurring  bool
	Frequency    entity.Frequency // required when IsRecurring
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation. Requires the Editor role.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return nil, domainerror.NewPermissionDenied("create transaction")
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

	txn := entity.NewTransaction(
		truncateToDay(input.Date),
		input.Description,
		input.Type,
		input.MainCategory,
		input.SubCategory,
		input.Amount,
		input.Remarks,
		input.Actor.UserID,
	)
	if input.IsRecurring {
		txn.MarkRecurring(input.Frequency)
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateTransactionFields checks the shared create/update field constraints.
func validateTransactionFields(
	description string,
	transactionType entity.TransactionType,
	mainCategory, subCategory string,
	amount decimal.Decimal,
	remarks string,
) error {
	if len(description) == 0 || len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("description must be 1-%d characters", MaxDescriptionLength),
			domainerror.ErrInvalidTransactionType,
		)
	}
	if len(remarks) > MaxRemarksLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("remarks must not exceed %d characters", MaxRemarksLength),
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'INCOME' or 'EXPENSE'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if mainCategory == "" || subCategory == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"main and sub category are required",
			domainerror.ErrMissingCategory,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be non-negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeIncome || transactionType == entity.TransactionTypeExpense
}

// isValidFrequency validates the recurrence frequency.
func isValidFrequency(frequency entity.Frequency) bool {
	switch frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly:
		return true
	}
	return false
}

// truncateToDay strips any time-of-day component; transaction dates are
// calendar days.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
