// Package advisory produces AI-generated financial advisory text.
package advisory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// Fixed user-facing messages; the advisory surface never exposes raw errors.
const (
	MessageNoData        = "Belum ada data transaksi untuk dianalisis."
	MessageEmptyResponse = "Gagal mendapatkan saran AI."
	MessageBusy          = "Maaf, asisten AI sedang sibuk. Silakan coba lagi nanti."
)

// GetAdviceInput represents the input for an advisory request.
type GetAdviceInput struct {
	Actor entity.Actor
}

// GetAdviceOutput represents the output of an advisory request.
type GetAdviceOutput struct {
	Advice string
}

// GetAdviceUseCase asks the advisor for financial advice over the full
// journal. Failures of any kind degrade to a fixed message; the operation
// itself only errors when the journal cannot be read.
type GetAdviceUseCase struct {
	transactionRepo adapter.TransactionRepository
	advisor         adapter.AdvisorService
	cache           adapter.AdvisoryCache
	logger          *slog.Logger
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(
	transactionRepo adapter.TransactionRepository,
	advisor adapter.AdvisorService,
	cache adapter.AdvisoryCache,
	logger *slog.Logger,
) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		transactionRepo: transactionRepo,
		advisor:         advisor,
		cache:           cache,
		logger:          logger,
	}
}

// Execute produces advisory text. Requires the Editor role.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*GetAdviceOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return nil, domainerror.NewPermissionDenied("request advisory")
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) == 0 {
		return &GetAdviceOutput{Advice: MessageNoData}, nil
	}

	if !uc.advisor.IsAvailable() {
		return &GetAdviceOutput{Advice: MessageBusy}, nil
	}

	acquired, err := uc.cache.TryAcquire(ctx)
	if err != nil {
		uc.logger.Warn("advisory busy flag unavailable", "error", err)
		return &GetAdviceOutput{Advice: MessageBusy}, nil
	}
	if !acquired {
		// A request is already in flight; serve the last advice if we have one.
		if last, err := uc.cache.GetLastAdvice(ctx); err == nil && last != "" {
			return &GetAdviceOutput{Advice: last}, nil
		}
		return &GetAdviceOutput{Advice: MessageBusy}, nil
	}
	defer func() {
		if err := uc.cache.Release(ctx); err != nil {
			uc.logger.Warn("failed to release advisory busy flag", "error", err)
		}
	}()

	advice, err := uc.advisor.Advise(ctx, transactions)
	if err != nil {
		uc.logger.Warn("advisor request failed", "error", err)
		return &GetAdviceOutput{Advice: MessageBusy}, nil
	}
	if advice == "" {
		return &GetAdviceOutput{Advice: MessageEmptyResponse}, nil
	}

	if err := uc.cache.SetLastAdvice(ctx, advice); err != nil {
		uc.logger.Warn("failed to cache advice", "error", err)
	}
	return &GetAdviceOutput{Advice: advice}, nil
}
