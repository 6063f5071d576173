// Package advisory produces AI-generated financial advisory text.
package advisory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (s *stubTransactionRepo) Create(context.Context, *entity.Transaction) error       { return nil }
func (s *stubTransactionRepo) SaveOccurrences(context.Context, *entity.Transaction, []*entity.Transaction) error {
	return nil
}
func (s *stubTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (s *stubTransactionRepo) FindAll(context.Context) ([]*entity.Transaction, error) {
	return s.transactions, s.err
}
func (s *stubTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }
func (s *stubTransactionRepo) AddComment(context.Context, uuid.UUID, *entity.Comment) error {
	return nil
}

type stubAdvisor struct {
	advice    string
	err       error
	available bool
	calls     int
}

func (s *stubAdvisor) Advise(context.Context, []*entity.Transaction) (string, error) {
	s.calls++
	return s.advice, s.err
}
func (s *stubAdvisor) IsAvailable() bool { return s.available }

type memoryCache struct {
	busy     bool
	last     string
	acquires int
	releases int
}

func (m *memoryCache) TryAcquire(context.Context) (bool, error) {
	m.acquires++
	if m.busy {
		return false, nil
	}
	m.busy = true
	return true, nil
}
func (m *memoryCache) Release(context.Context) error {
	m.releases++
	m.busy = false
	return nil
}
func (m *memoryCache) GetLastAdvice(context.Context) (string, error)  { return m.last, nil }
func (m *memoryCache) SetLastAdvice(_ context.Context, advice string) error {
	m.last = advice
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func editor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Name: "Siti Aminah", Role: entity.RoleEditor}
}

func journal() []*entity.Transaction {
	return []*entity.Transaction{{
		ID:     uuid.New(),
		Type:   entity.TransactionTypeIncome,
		Amount: decimal.NewFromInt(1000),
	}}
}

func TestGetAdvice(t *testing.T) {
	t.Run("viewer is denied", func(t *testing.T) {
		advisor := &stubAdvisor{available: true, advice: "fresh"}
		uc := NewGetAdviceUseCase(&stubTransactionRepo{transactions: journal()}, advisor, &memoryCache{}, discard())
		viewer := entity.Actor{UserID: uuid.New(), Name: "Andi Wijaya", Role: entity.RoleViewer}
		_, err := uc.Execute(context.Background(), GetAdviceInput{Actor: viewer})
		require.ErrorIs(t, err, domainerror.ErrPermissionDenied)
		assert.Zero(t, advisor.calls)
	})

	t.Run("empty journal short-circuits", func(t *testing.T) {
		uc := NewGetAdviceUseCase(&stubTransactionRepo{}, &stubAdvisor{available: true}, &memoryCache{}, discard())
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, MessageNoData, out.Advice)
	})

	t.Run("advice is returned and cached", func(t *testing.T) {
		cache := &memoryCache{}
		uc := NewGetAdviceUseCase(
			&stubTransactionRepo{transactions: journal()},
			&stubAdvisor{available: true, advice: "kurangi pengeluaran operasional"},
			cache,
			discard(),
		)
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, "kurangi pengeluaran operasional", out.Advice)
		assert.Equal(t, "kurangi pengeluaran operasional", cache.last)
		assert.Equal(t, 1, cache.releases, "busy flag released after the request")
	})

	t.Run("advisor failure degrades to busy message", func(t *testing.T) {
		cache := &memoryCache{}
		uc := NewGetAdviceUseCase(
			&stubTransactionRepo{transactions: journal()},
			&stubAdvisor{available: true, err: errors.New("quota exceeded")},
			cache,
			discard(),
		)
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, MessageBusy, out.Advice)
		assert.Equal(t, 1, cache.releases)
	})

	t.Run("empty advisor response has its own message", func(t *testing.T) {
		uc := NewGetAdviceUseCase(
			&stubTransactionRepo{transactions: journal()},
			&stubAdvisor{available: true},
			&memoryCache{},
			discard(),
		)
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, MessageEmptyResponse, out.Advice)
	})

	t.Run("in-flight request serves cached advice", func(t *testing.T) {
		advisor := &stubAdvisor{available: true, advice: "fresh"}
		uc := NewGetAdviceUseCase(
			&stubTransactionRepo{transactions: journal()},
			advisor,
			&memoryCache{busy: true, last: "saran sebelumnya"},
			discard(),
		)
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, "saran sebelumnya", out.Advice)
		assert.Zero(t, advisor.calls, "advisor must not be invoked while busy")
	})

	t.Run("in-flight request without cache degrades to busy message", func(t *testing.T) {
		uc := NewGetAdviceUseCase(
			&stubTransactionRepo{transactions: journal()},
			&stubAdvisor{available: true, advice: "fresh"},
			&memoryCache{busy: true},
			discard(),
		)
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, MessageBusy, out.Advice)
	})

	t.Run("unconfigured advisor degrades to busy message", func(t *testing.T) {
		uc := NewGetAdviceUseCase(
			&stubTransactionRepo{transactions: journal()},
			&stubAdvisor{available: false},
			&memoryCache{},
			discard(),
		)
		out, err := uc.Execute(context.Background(), GetAdviceInput{Actor: editor()})
		require.NoError(t, err)
		assert.Equal(t, MessageBusy, out.Advice)
	})
}
