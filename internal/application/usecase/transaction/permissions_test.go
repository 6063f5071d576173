// Package transaction contains cash-flow journal use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// memoryRepo is a minimal in-memory TransactionRepository for permission tests.
type memoryRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{transactions: map[uuid.UUID]*entity.Transaction{}}
}

func (m *memoryRepo) Create(_ context.Context, txn *entity.Transaction) error {
	m.transactions[txn.ID] = txn
	return nil
}

func (m *memoryRepo) SaveOccurrences(ctx context.Context, template *entity.Transaction, occurrences []*entity.Transaction) error {
	for _, txn := range occurrences {
		if err := m.Create(ctx, txn); err != nil {
			return err
		}
	}
	m.transactions[template.ID] = template
	return nil
}

func (m *memoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, ok := m.transactions[id]
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return txn, nil
}

func (m *memoryRepo) FindAll(context.Context) ([]*entity.Transaction, error) {
	all := make([]*entity.Transaction, 0, len(m.transactions))
	for _, txn := range m.transactions {
		all = append(all, txn)
	}
	return all, nil
}

func (m *memoryRepo) Update(_ context.Context, txn *entity.Transaction) error {
	m.transactions[txn.ID] = txn
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.transactions, id)
	return nil
}

func (m *memoryRepo) AddComment(_ context.Context, id uuid.UUID, comment *entity.Comment) error {
	m.transactions[id].Comments = append(m.transactions[id].Comments, comment)
	return nil
}

func viewer() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Name: "Andi Wijaya", Role: entity.RoleViewer}
}

func editor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Name: "Siti Aminah", Role: entity.RoleEditor}
}

func admin() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Name: "Budi Santoso", Role: entity.RoleAdmin}
}

func validCreateInput(actor entity.Actor) CreateTransactionInput {
	return CreateTransactionInput{
		Actor:        actor,
		Date:         time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Description:  "Donasi rutin",
		Type:         entity.TransactionTypeIncome,
		MainCategory: "Pemasukan Non-Operasional",
		SubCategory:  "Donasi / sumbangan",
		Amount:       decimal.NewFromInt(1500000),
	}
}

func TestViewerMutationsAreRejected(t *testing.T) {
	ctx := context.Background()

	t.Run("create is denied and the journal is unchanged", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(ctx, validCreateInput(viewer()))
		if !errors.Is(err, domainerror.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("journal changed after denied create")
		}
	})

	t.Run("update is denied before the record is even loaded", func(t *testing.T) {
		repo := newMemoryRepo()
		created, err := NewCreateTransactionUseCase(repo).Execute(ctx, validCreateInput(editor()))
		if err != nil {
			t.Fatal(err)
		}

		_, err = NewUpdateTransactionUseCase(repo).Execute(ctx, UpdateTransactionInput{
			Actor:        viewer(),
			ID:           created.Transaction.ID,
			Date:         created.Transaction.Date,
			Description:  "hijacked",
			Type:         created.Transaction.Type,
			MainCategory: created.Transaction.MainCategory,
			SubCategory:  created.Transaction.SubCategory,
			Amount:       decimal.NewFromInt(1),
		})
		if !errors.Is(err, domainerror.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if repo.transactions[created.Transaction.ID].Description != "Donasi rutin" {
			t.Error("journal changed after denied update")
		}
	})

	t.Run("delete requires admin, editor is denied too", func(t *testing.T) {
		repo := newMemoryRepo()
		created, err := NewCreateTransactionUseCase(repo).Execute(ctx, validCreateInput(editor()))
		if err != nil {
			t.Fatal(err)
		}

		deleteUC := NewDeleteTransactionUseCase(repo)
		for _, actor := range []entity.Actor{viewer(), editor()} {
			if err := deleteUC.Execute(ctx, DeleteTransactionInput{Actor: actor, ID: created.Transaction.ID}); !errors.Is(err, domainerror.ErrPermissionDenied) {
				t.Fatalf("%s: expected ErrPermissionDenied, got %v", actor.Role, err)
			}
		}
		if len(repo.transactions) != 1 {
			t.Error("journal changed after denied deletes")
		}

		if err := deleteUC.Execute(ctx, DeleteTransactionInput{Actor: admin(), ID: created.Transaction.ID}); err != nil {
			t.Fatalf("admin delete failed: %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("admin delete did not remove the record")
		}
	})

	t.Run("comment is denied for viewer", func(t *testing.T) {
		repo := newMemoryRepo()
		created, err := NewCreateTransactionUseCase(repo).Execute(ctx, validCreateInput(editor()))
		if err != nil {
			t.Fatal(err)
		}

		_, err = NewAddCommentUseCase(repo).Execute(ctx, AddCommentInput{
			Actor:         viewer(),
			TransactionID: created.Transaction.ID,
			Text:          "mencurigakan",
		})
		if !errors.Is(err, domainerror.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if len(repo.transactions[created.Transaction.ID].Comments) != 0 {
			t.Error("comments changed after denied append")
		}
	})
}

func TestCreateTransaction_Validation(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	uc := NewCreateTransactionUseCase(repo)

	t.Run("rejects unknown type", func(t *testing.T) {
		input := validCreateInput(editor())
		input.Type = "TRANSFER"
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		input := validCreateInput(editor())
		input.Amount = decimal.NewFromInt(-5)
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Fatalf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("rejects missing category", func(t *testing.T) {
		input := validCreateInput(editor())
		input.SubCategory = ""
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrMissingCategory) {
			t.Fatalf("expected ErrMissingCategory, got %v", err)
		}
	})

	t.Run("rejects recurring without valid frequency", func(t *testing.T) {
		input := validCreateInput(editor())
		input.IsRecurring = true
		input.Frequency = "Fortnightly"
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidFrequency) {
			t.Fatalf("expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("recurring create starts the watermark at the transaction date", func(t *testing.T) {
		input := validCreateInput(editor())
		input.IsRecurring = true
		input.Frequency = entity.FrequencyMonthly
		out, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatal(err)
		}
		if !out.Transaction.IsTemplate() {
			t.Fatal("expected a well-formed template")
		}
		if !out.Transaction.LastGeneratedDate.Equal(input.Date) {
			t.Errorf("watermark %s, want %s", out.Transaction.LastGeneratedDate, input.Date)
		}
	})
}
