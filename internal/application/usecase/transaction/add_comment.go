// Package transaction contains cash-flow journal use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// AddCommentInput represents the input for appending a comment to a transaction.
type AddCommentInput struct {
	Actor         entity.Actor
	TransactionID uuid.UUID
	Text          string
}

// AddCommentOutput represents the output of appending a comment.
type AddCommentOutput struct {
	Comment *entity.Comment
}

// AddCommentUseCase handles appending discussion comments to transactions.
type AddCommentUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewAddCommentUseCase creates a new AddCommentUseCase instance.
func NewAddCommentUseCase(transactionRepo adapter.TransactionRepository) *AddCommentUseCase {
	return &AddCommentUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute appends a comment. Requires the Editor role. The author's name is
// captured as a snapshot and never refreshed.
func (uc *AddCommentUseCase) Execute(ctx context.Context, input AddCommentInput) (*AddCommentOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return nil, domainerror.NewPermissionDenied("add comment")
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyComment,
			"comment text cannot be empty",
			domainerror.ErrEmptyComment,
		)
	}

	if _, err := uc.transactionRepo.FindByID(ctx, input.TransactionID); err != nil {
		return nil, err
	}

	comment := entity.NewComment(input.Actor.UserID, input.Actor.Name, text)
	if err := uc.transactionRepo.AddComment(ctx, input.TransactionID, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &AddCommentOutput{Comment: comment}, nil
}
