// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a cash-flow transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Frequency represents how often a recurring transaction template fires.
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
	FrequencyYearly  Frequency = "Yearly"
)

// Frequencies lists all supported recurrence frequencies.
var Frequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}

// Transaction represents one entry in the cash-flow journal.
//
// A transaction marked recurring is a template: it generates dated occurrences
// over time rather than representing a single cash movement itself. Recurrence
// state (Frequency, LastGeneratedDate) lives only on the template; materialized
// occurrences are plain non-recurring transactions.
type Transaction struct {
	ID           uuid.UUID
	Code         string
	Date         time.Time // calendar day, no time-of-day semantics
	Description  string
	Type         TransactionType
	MainCategory string
	SubCategory  string
	Amount       decimal.Decimal
	Remarks      string
	Comments     []*Comment
	CreatedBy    uuid.UUID

	IsRecurring       bool
	Frequency         *Frequency
	LastGeneratedDate *time.Time // watermark: most recent day materialized through

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity with a fresh identity and code.
func NewTransaction(
	date time.Time,
	description string,
	transactionType TransactionType,
	mainCategory, subCategory string,
	amount decimal.Decimal,
	remarks string,
	createdBy uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		Code:         NewTransactionCode(transactionType, now),
		Date:         date,
		Description:  description,
		Type:         transactionType,
		MainCategory: mainCategory,
		SubCategory:  subCategory,
		Amount:       amount,
		Remarks:      remarks,
		Comments:     []*Comment{},
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MarkRecurring turns the transaction into a recurring template. The watermark
// starts at the transaction's own date, so the first occurrence materializes
// one full period later.
func (t *Transaction) MarkRecurring(frequency Frequency) {
	t.IsRecurring = true
	t.Frequency = &frequency
	date := t.Date
	t.LastGeneratedDate = &date
}

// ClearRecurring removes all recurrence state from the transaction.
func (t *Transaction) ClearRecurring() {
	t.IsRecurring = false
	t.Frequency = nil
	t.LastGeneratedDate = nil
}

// IsTemplate reports whether the transaction is a well-formed recurring
// template. A recurring flag without frequency or watermark is treated as
// non-recurring.
func (t *Transaction) IsTemplate() bool {
	return t.IsRecurring && t.Frequency != nil && t.LastGeneratedDate != nil
}

// SignedAmount returns the amount with its cash-flow sign: positive for
// income, negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// NewTransactionCode derives a human-readable transaction code from the type
// and a timestamp, e.g. "IN-837241" or "EX-104972".
func NewTransactionCode(transactionType TransactionType, at time.Time) string {
	prefix := "IN"
	if transactionType == TransactionTypeExpense {
		prefix = "EX"
	}
	millis := at.UnixMilli()
	return fmt.Sprintf("%s-%06d", prefix, millis%1000000)
}

// NewOccurrenceCode derives the code for a materialized recurring occurrence.
func NewOccurrenceCode(transactionType TransactionType, at time.Time) string {
	return NewTransactionCode(transactionType, at) + "-REC"
}

// Comment is an append-only discussion entry attached to a transaction.
// UserName is a snapshot of the author's name at write time and is
// intentionally never refreshed (audit-log style).
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Text      string
	Timestamp time.Time
}

// NewComment creates a new Comment entity.
func NewComment(userID uuid.UUID, userName, text string) *Comment {
	return &Comment{
		ID:        uuid.New(),
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}
