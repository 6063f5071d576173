// Package recurrence materializes recurring transaction templates into
// concrete journal entries.
package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// MaterializeInput represents the input for a recurrence run.
type MaterializeInput struct {
	// Today is the evaluation day; time-of-day is ignored. Zero means the
	// current local day.
	Today time.Time
}

// MaterializeOutput represents the outcome of a recurrence run.
type MaterializeOutput struct {
	// Generated holds the occurrences materialized this run, ascending by date.
	Generated []*entity.Transaction
	// TemplatesAdvanced counts templates whose watermark moved.
	TemplatesAdvanced int
}

// MaterializeUseCase walks every recurring template and fills in the journal
// entries for periods that have elapsed since the template's watermark.
// Running it twice on the same day is a no-op the second time.
type MaterializeUseCase struct {
	transactionRepo adapter.TransactionRepository
	logger          *slog.Logger
}

// NewMaterializeUseCase creates a new MaterializeUseCase instance.
func NewMaterializeUseCase(transactionRepo adapter.TransactionRepository, logger *slog.Logger) *MaterializeUseCase {
	return &MaterializeUseCase{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Execute performs one recurrence run.
func (uc *MaterializeUseCase) Execute(ctx context.Context, input MaterializeInput) (*MaterializeOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = truncateToDay(today)

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for recurrence run: %w", err)
	}

	output := &MaterializeOutput{}
	for _, template := range transactions {
		if !template.IsTemplate() {
			continue
		}

		occurrences := Occurrences(template, today)
		if len(occurrences) == 0 {
			continue
		}

		watermark := occurrences[len(occurrences)-1].Date
		template.LastGeneratedDate = &watermark
		template.UpdatedAt = time.Now().UTC()
		if err := uc.transactionRepo.SaveOccurrences(ctx, template, occurrences); err != nil {
			return nil, fmt.Errorf("failed to store occurrences for template %s: %w", template.Code, err)
		}

		uc.logger.Info("materialized recurring transactions",
			"template", template.Code,
			"frequency", string(*template.Frequency),
			"count", len(occurrences),
			"watermark", watermark.Format("2006-01-02"),
		)

		output.Generated = append(output.Generated, occurrences...)
		output.TemplatesAdvanced++
	}

	return output, nil
}

// Occurrences computes the concrete transactions a template owes between its
// watermark (exclusive) and today (inclusive), ascending by date. Pure: the
// template is not modified. Templates whose next period is still in the
// future, or that are malformed, yield nothing.
func Occurrences(template *entity.Transaction, today time.Time) []*entity.Transaction {
	if !template.IsTemplate() {
		return nil
	}

	today = truncateToDay(today)
	frequency := *template.Frequency

	var generated []*entity.Transaction
	last := truncateToDay(*template.LastGeneratedDate)
	for next := Advance(last, frequency); !next.After(today); next = Advance(last, frequency) {
		generated = append(generated, newOccurrence(template, next))
		last = next
	}
	return generated
}

// Advance returns the next due date after the given one: one day, seven days,
// one calendar month or one calendar year. Month and year steps use standard
// calendar arithmetic, so a Jan 31 monthly template can land in early March.
func Advance(date time.Time, frequency entity.Frequency) time.Time {
	switch frequency {
	case entity.FrequencyDaily:
		return date.AddDate(0, 0, 1)
	case entity.FrequencyWeekly:
		return date.AddDate(0, 0, 7)
	case entity.FrequencyMonthly:
		return date.AddDate(0, 1, 0)
	case entity.FrequencyYearly:
		return date.AddDate(1, 0, 0)
	}
	return date
}

// newOccurrence clones the template's descriptive fields into a fresh
// non-recurring transaction dated at the given day.
func newOccurrence(template *entity.Transaction, date time.Time) *entity.Transaction {
	now := time.Now().UTC()
	return &entity.Transaction{
		ID:           uuid.New(),
		Code:         entity.NewOccurrenceCode(template.Type, now),
		Date:         date,
		Description:  template.Description,
		Type:         template.Type,
		MainCategory: template.MainCategory,
		SubCategory:  template.SubCategory,
		Amount:       template.Amount,
		Remarks:      template.Remarks,
		Comments:     []*entity.Comment{},
		CreatedBy:    template.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
