// Package transaction contains cash-flow journal use cases.
package transaction

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// Passthrough value for type and category filters.
const FilterAll = "ALL"

// SortKey identifies the transaction field a listing is ordered by.
type SortKey string

const (
	SortKeyDate         SortKey = "date"
	SortKeyCode         SortKey = "code"
	SortKeyDescription  SortKey = "description"
	SortKeyMainCategory SortKey = "mainCategory"
	SortKeySubCategory  SortKey = "subCategory"
	SortKeyAmount       SortKey = "amount"
)

// SortDirection orders a listing ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ListFilter carries the search, filter and sort parameters of a listing.
// Zero values mean passthrough: empty search matches everything, empty or
// "ALL" type/category filters match everything, empty sort key defaults to
// date descending.
type ListFilter struct {
	SearchTerm    string
	Type          string // "ALL", "INCOME" or "EXPENSE"
	Category      string // "ALL" or an exact main-category name
	SortKey       SortKey
	SortDirection SortDirection
}

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter ListFilter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles filtered, sorted transaction listings.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transactions matching the filter, ordered per the sort
// parameters. Readable by every role.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := FilterTransactions(transactions, input.Filter)
	SortTransactions(filtered, input.Filter.SortKey, input.Filter.SortDirection)

	return &ListTransactionsOutput{Transactions: filtered}, nil
}

// FilterTransactions returns the subsequence of transactions matching the
// filter. The search term matches case-insensitively as a substring of the
// description, code or sub-category (OR across the three fields). Type and
// main-category filters are exact matches, with "" or "ALL" as passthrough.
func FilterTransactions(transactions []*entity.Transaction, filter ListFilter) []*entity.Transaction {
	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))

	result := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if term != "" &&
			!strings.Contains(strings.ToLower(txn.Description), term) &&
			!strings.Contains(strings.ToLower(txn.Code), term) &&
			!strings.Contains(strings.ToLower(txn.SubCategory), term) {
			continue
		}
		if !passthrough(filter.Type) && string(txn.Type) != filter.Type {
			continue
		}
		if !passthrough(filter.Category) && txn.MainCategory != filter.Category {
			continue
		}
		result = append(result, txn)
	}
	return result
}

// SortTransactions orders the slice in place by the given key and direction.
// String fields compare with Indonesian collation, dates and amounts compare
// natively. The sort is stable: equal keys keep their relative order. An
// empty key defaults to date, an empty direction to descending.
func SortTransactions(transactions []*entity.Transaction, key SortKey, direction SortDirection) {
	if key == "" {
		key = SortKeyDate
	}
	if direction == "" {
		direction = SortDescending
	}

	coll := collate.New(language.Indonesian)
	less := func(a, b *entity.Transaction) bool {
		switch key {
		case SortKeyAmount:
			return a.Amount.LessThan(b.Amount)
		case SortKeyCode:
			return coll.CompareString(a.Code, b.Code) < 0
		case SortKeyDescription:
			return coll.CompareString(a.Description, b.Description) < 0
		case SortKeyMainCategory:
			return coll.CompareString(a.MainCategory, b.MainCategory) < 0
		case SortKeySubCategory:
			return coll.CompareString(a.SubCategory, b.SubCategory) < 0
		default:
			return a.Date.Before(b.Date)
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if direction == SortDescending {
			return less(transactions[j], transactions[i])
		}
		return less(transactions[i], transactions[j])
	})
}

func passthrough(value string) bool {
	return value == "" || value == FilterAll
}
