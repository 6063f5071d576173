// Package recurrence materializes recurring transaction templates into
// concrete journal entries.
package recurrence

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// fakeRepo is a minimal in-memory TransactionRepository for recurrence runs.
type fakeRepo struct {
	transactions []*entity.Transaction
	saves        int
	saveErr      error
}

func (f *fakeRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (f *fakeRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeRepo) FindAll(context.Context) ([]*entity.Transaction, error) {
	return f.transactions, nil
}
func (f *fakeRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (f *fakeRepo) Delete(context.Context, uuid.UUID) error           { return nil }
func (f *fakeRepo) AddComment(context.Context, uuid.UUID, *entity.Comment) error {
	return nil
}
func (f *fakeRepo) SaveOccurrences(_ context.Context, _ *entity.Transaction, occurrences []*entity.Transaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.transactions = append(f.transactions, occurrences...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func monthlyTemplate(date time.Time) *entity.Transaction {
	txn := &entity.Transaction{
		ID:           uuid.New(),
		Code:         "EX-123456",
		Date:         date,
		Description:  "Sewa gedung",
		Type:         entity.TransactionTypeExpense,
		MainCategory: "Beban Operasional Rutin",
		SubCategory:  "Sewa Gedung",
		Amount:       decimal.NewFromInt(2500000),
		Remarks:      "pembayaran otomatis",
		CreatedBy:    uuid.New(),
	}
	txn.MarkRecurring(entity.FrequencyMonthly)
	return txn
}

func TestAdvance(t *testing.T) {
	cases := []struct {
		name      string
		frequency entity.Frequency
		from      time.Time
		want      time.Time
	}{
		{"daily adds one day", entity.FrequencyDaily, day(2024, 3, 31), day(2024, 4, 1)},
		{"weekly adds seven days", entity.FrequencyWeekly, day(2024, 2, 26), day(2024, 3, 4)},
		{"monthly adds one calendar month", entity.FrequencyMonthly, day(2024, 1, 15), day(2024, 2, 15)},
		{"monthly end-of-month overflows", entity.FrequencyMonthly, day(2024, 1, 31), day(2024, 3, 2)},
		{"yearly adds one calendar year", entity.FrequencyYearly, day(2024, 6, 1), day(2025, 6, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Advance(tc.from, tc.frequency)
			if !got.Equal(tc.want) {
				t.Errorf("Advance(%s, %s) = %s, want %s",
					tc.from.Format("2006-01-02"), tc.frequency,
					got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestOccurrences_Monthly(t *testing.T) {
	template := monthlyTemplate(day(2024, 1, 15))
	today := day(2024, 4, 20)

	occurrences := Occurrences(template, today)

	if len(occurrences) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occurrences))
	}

	wantDates := []time.Time{day(2024, 2, 15), day(2024, 3, 15), day(2024, 4, 15)}
	for i, occ := range occurrences {
		if !occ.Date.Equal(wantDates[i]) {
			t.Errorf("occurrence %d dated %s, want %s", i, occ.Date.Format("2006-01-02"), wantDates[i].Format("2006-01-02"))
		}
	}
}

func TestOccurrences_CloneSemantics(t *testing.T) {
	template := monthlyTemplate(day(2024, 1, 15))
	occurrences := Occurrences(template, day(2024, 2, 20))

	if len(occurrences) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occurrences))
	}
	occ := occurrences[0]

	t.Run("descriptive fields copied", func(t *testing.T) {
		if occ.Description != template.Description ||
			occ.Type != template.Type ||
			occ.MainCategory != template.MainCategory ||
			occ.SubCategory != template.SubCategory ||
			!occ.Amount.Equal(template.Amount) ||
			occ.Remarks != template.Remarks {
			t.Error("occurrence does not mirror template's descriptive fields")
		}
	})

	t.Run("fresh identity and code", func(t *testing.T) {
		if occ.ID == template.ID {
			t.Error("occurrence reused template id")
		}
		if occ.Code == template.Code {
			t.Error("occurrence reused template code")
		}
		if !strings.HasSuffix(occ.Code, "-REC") {
			t.Errorf("occurrence code %q lacks -REC suffix", occ.Code)
		}
	})

	t.Run("no recurrence state, no comments", func(t *testing.T) {
		if occ.IsRecurring || occ.Frequency != nil || occ.LastGeneratedDate != nil {
			t.Error("occurrence carries recurrence state")
		}
		if len(occ.Comments) != 0 {
			t.Error("occurrence carries comments")
		}
	})

	t.Run("template untouched", func(t *testing.T) {
		if !template.LastGeneratedDate.Equal(day(2024, 1, 15)) {
			t.Error("pure computation mutated template watermark")
		}
	})
}

func TestOccurrences_NothingDue(t *testing.T) {
	t.Run("next period still in the future", func(t *testing.T) {
		template := monthlyTemplate(day(2024, 4, 10))
		if got := Occurrences(template, day(2024, 4, 20)); len(got) != 0 {
			t.Fatalf("expected no occurrences, got %d", len(got))
		}
	})

	t.Run("caught-up template is idempotent", func(t *testing.T) {
		template := monthlyTemplate(day(2024, 1, 15))
		today := day(2024, 4, 20)

		first := Occurrences(template, today)
		watermark := first[len(first)-1].Date
		template.LastGeneratedDate = &watermark

		if got := Occurrences(template, today); len(got) != 0 {
			t.Fatalf("second run generated %d occurrences, want 0", len(got))
		}
	})

	t.Run("malformed template is skipped", func(t *testing.T) {
		template := monthlyTemplate(day(2024, 1, 15))
		template.Frequency = nil
		if got := Occurrences(template, day(2024, 4, 20)); got != nil {
			t.Fatalf("expected nil for malformed template, got %d occurrences", len(got))
		}
	})

	t.Run("non-recurring transaction is skipped", func(t *testing.T) {
		template := monthlyTemplate(day(2024, 1, 15))
		template.ClearRecurring()
		if got := Occurrences(template, day(2024, 4, 20)); got != nil {
			t.Fatalf("expected nil for plain transaction, got %d occurrences", len(got))
		}
	})
}

func TestMaterialize_SingleWritePerTemplate(t *testing.T) {
	template := monthlyTemplate(day(2024, 1, 15))
	repo := &fakeRepo{transactions: []*entity.Transaction{template}}
	uc := NewMaterializeUseCase(repo, discardLogger())

	out, err := uc.Execute(context.Background(), MaterializeInput{Today: day(2024, 3, 20)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out.Generated) != 2 || out.TemplatesAdvanced != 1 {
		t.Fatalf("generated %d occurrences, advanced %d templates; want 2 and 1",
			len(out.Generated), out.TemplatesAdvanced)
	}
	if repo.saves != 1 {
		t.Errorf("template persisted in %d writes, want occurrences and watermark in one", repo.saves)
	}
	if template.LastGeneratedDate == nil || !template.LastGeneratedDate.Equal(day(2024, 3, 15)) {
		t.Errorf("watermark not advanced to last occurrence before the write")
	}
	if len(repo.transactions) != 3 {
		t.Errorf("journal holds %d transactions, want 3", len(repo.transactions))
	}
}

func TestMaterialize_FailedWriteLeavesJournal(t *testing.T) {
	template := monthlyTemplate(day(2024, 1, 15))
	repo := &fakeRepo{
		transactions: []*entity.Transaction{template},
		saveErr:      errors.New("storage offline"),
	}
	uc := NewMaterializeUseCase(repo, discardLogger())

	if _, err := uc.Execute(context.Background(), MaterializeInput{Today: day(2024, 3, 20)}); err == nil {
		t.Fatal("expected the storage error to propagate")
	}
	if len(repo.transactions) != 1 {
		t.Errorf("failed run stored %d occurrences, want none", len(repo.transactions)-1)
	}
}

func TestOccurrences_Daily(t *testing.T) {
	template := monthlyTemplate(day(2024, 4, 15))
	template.MarkRecurring(entity.FrequencyDaily)

	occurrences := Occurrences(template, day(2024, 4, 20))
	if len(occurrences) != 5 {
		t.Fatalf("expected 5 daily occurrences, got %d", len(occurrences))
	}
	for i, occ := range occurrences {
		want := day(2024, 4, 16+i)
		if !occ.Date.Equal(want) {
			t.Errorf("occurrence %d dated %s, want %s", i, occ.Date.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}
