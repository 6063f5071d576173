// Package transaction contains cash-flow journal use cases.
package transaction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

func makeTransaction(code, description, subCategory string, transactionType entity.TransactionType, mainCategory string, amount int64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:           uuid.New(),
		Code:         code,
		Date:         date,
		Description:  description,
		Type:         transactionType,
		MainCategory: mainCategory,
		SubCategory:  subCategory,
		Amount:       decimal.NewFromInt(amount),
	}
}

func sampleTransactions() []*entity.Transaction {
	return []*entity.Transaction{
		makeTransaction("IN-000001", "Donasi rutin bulanan", "Donasi Rutin", entity.TransactionTypeIncome, "Pendapatan Operasional", 1500000, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		makeTransaction("EX-000002", "Pembayaran listrik kantor", "Listrik & Air", entity.TransactionTypeExpense, "Beban Operasional Rutin", 300000, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		makeTransaction("IN-000003", "Bunga deposito", "Bunga Bank", entity.TransactionTypeIncome, "Pendapatan Keuangan", 50000, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)),
		makeTransaction("EX-000004", "Honorarium pengajar", "Honorarium", entity.TransactionTypeExpense, "Beban Program", 2000000, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestFilterTransactions_Search(t *testing.T) {
	transactions := sampleTransactions()

	t.Run("matches description case-insensitively", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{SearchTerm: "LISTRIK"})
		if len(got) != 1 || got[0].Code != "EX-000002" {
			t.Fatalf("expected only EX-000002, got %d results", len(got))
		}
	})

	t.Run("matches code", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{SearchTerm: "IN-000003"})
		if len(got) != 1 || got[0].Code != "IN-000003" {
			t.Fatalf("expected only IN-000003, got %d results", len(got))
		}
	})

	t.Run("matches sub-category even when description and code do not", func(t *testing.T) {
		// "Bunga Bank" appears only in the sub-category field.
		got := FilterTransactions(transactions, ListFilter{SearchTerm: "bunga bank"})
		if len(got) != 1 || got[0].Code != "IN-000003" {
			t.Fatalf("expected sub-category match to include IN-000003, got %d results", len(got))
		}
	})

	t.Run("empty term matches everything", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{})
		if len(got) != len(transactions) {
			t.Fatalf("expected %d results, got %d", len(transactions), len(got))
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{SearchTerm: "zzz-nothing"})
		if len(got) != 0 {
			t.Fatalf("expected no results, got %d", len(got))
		}
	})
}

func TestFilterTransactions_TypeAndCategory(t *testing.T) {
	transactions := sampleTransactions()

	t.Run("type filter is exact", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{Type: "INCOME"})
		if len(got) != 2 {
			t.Fatalf("expected 2 income transactions, got %d", len(got))
		}
		for _, txn := range got {
			if txn.Type != entity.TransactionTypeIncome {
				t.Errorf("unexpected type %s in income filter", txn.Type)
			}
		}
	})

	t.Run("ALL is passthrough", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{Type: FilterAll, Category: FilterAll})
		if len(got) != len(transactions) {
			t.Fatalf("expected %d results, got %d", len(transactions), len(got))
		}
	})

	t.Run("category matches mainCategory exactly", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{Category: "Beban Program"})
		if len(got) != 1 || got[0].Code != "EX-000004" {
			t.Fatalf("expected only EX-000004, got %d results", len(got))
		}
	})

	t.Run("search and filters combine with AND", func(t *testing.T) {
		got := FilterTransactions(transactions, ListFilter{SearchTerm: "donasi", Type: "EXPENSE"})
		if len(got) != 0 {
			t.Fatalf("expected no results, got %d", len(got))
		}
	})
}

func TestSortTransactions(t *testing.T) {
	t.Run("default is date descending", func(t *testing.T) {
		transactions := sampleTransactions()
		SortTransactions(transactions, "", "")
		if transactions[0].Code != "EX-000002" || transactions[len(transactions)-1].Code != "IN-000003" {
			t.Fatalf("unexpected order: first=%s last=%s", transactions[0].Code, transactions[len(transactions)-1].Code)
		}
	})

	t.Run("amount ascending", func(t *testing.T) {
		transactions := sampleTransactions()
		SortTransactions(transactions, SortKeyAmount, SortAscending)
		prev := transactions[0].Amount
		for _, txn := range transactions[1:] {
			if txn.Amount.LessThan(prev) {
				t.Fatalf("amounts not ascending: %s after %s", txn.Amount, prev)
			}
			prev = txn.Amount
		}
	})

	t.Run("description descending", func(t *testing.T) {
		transactions := sampleTransactions()
		SortTransactions(transactions, SortKeyDescription, SortDescending)
		if transactions[0].Code != "EX-000002" {
			t.Fatalf("expected 'Pembayaran listrik kantor' first, got %s", transactions[0].Description)
		}
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		a := makeTransaction("IN-000010", "a", "x", entity.TransactionTypeIncome, "Pendapatan Lain-lain", 100, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		b := makeTransaction("IN-000011", "b", "x", entity.TransactionTypeIncome, "Pendapatan Lain-lain", 100, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		transactions := []*entity.Transaction{a, b}
		SortTransactions(transactions, SortKeyAmount, SortAscending)
		if transactions[0] != a || transactions[1] != b {
			t.Fatal("equal keys did not retain original order")
		}
	})
}

func TestFilterSort_Idempotent(t *testing.T) {
	filter := ListFilter{
		SearchTerm:    "a",
		Type:          FilterAll,
		SortKey:       SortKeyAmount,
		SortDirection: SortAscending,
	}

	first := FilterTransactions(sampleTransactions(), filter)
	SortTransactions(first, filter.SortKey, filter.SortDirection)

	second := FilterTransactions(first, filter)
	SortTransactions(second, filter.SortKey, filter.SortDirection)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Code != second[i].Code {
			t.Errorf("position %d: %s vs %s", i, first[i].Code, second[i].Code)
		}
	}
}
