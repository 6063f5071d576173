// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code         string          `gorm:"type:varchar(20);not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	MainCategory string          `gorm:"type:varchar(100);not null;index"`
	SubCategory  string          `gorm:"type:varchar(100);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Remarks      string          `gorm:"type:text"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null;index"`

	IsRecurring       bool       `gorm:"default:false;index"`
	Frequency         *string    `gorm:"type:varchar(10)"`
	LastGeneratedDate *time.Time `gorm:"type:date"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Loaded with Preload("Comments").
	Comments []CommentModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Malformed recurrence state degrades to a plain transaction instead of
// failing the read.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	txn := &entity.Transaction{
		ID:           m.ID,
		Code:         m.Code,
		Date:         m.Date,
		Description:  m.Description,
		Type:         entity.TransactionType(m.Type),
		MainCategory: m.MainCategory,
		SubCategory:  m.SubCategory,
		Amount:       m.Amount,
		Remarks:      m.Remarks,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Comments:     make([]*entity.Comment, 0, len(m.Comments)),
	}

	if m.IsRecurring && m.Frequency != nil && m.LastGeneratedDate != nil {
		frequency := entity.Frequency(*m.Frequency)
		watermark := *m.LastGeneratedDate
		txn.IsRecurring = true
		txn.Frequency = &frequency
		txn.LastGeneratedDate = &watermark
	}

	for i := range m.Comments {
		txn.Comments = append(txn.Comments, m.Comments[i].ToEntity())
	}
	return txn
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:           transaction.ID,
		Code:         transaction.Code,
		Date:         transaction.Date,
		Description:  transaction.Description,
		Type:         string(transaction.Type),
		MainCategory: transaction.MainCategory,
		SubCategory:  transaction.SubCategory,
		Amount:       transaction.Amount,
		Remarks:      transaction.Remarks,
		CreatedBy:    transaction.CreatedBy,
		IsRecurring:  transaction.IsRecurring,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
	if transaction.Frequency != nil {
		frequency := string(*transaction.Frequency)
		m.Frequency = &frequency
	}
	if transaction.LastGeneratedDate != nil {
		watermark := *transaction.LastGeneratedDate
		m.LastGeneratedDate = &watermark
	}
	return m
}

// CommentModel represents the transaction_comments table in the database.
type CommentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null"`
	UserName      string    `gorm:"type:varchar(100);not null"`
	Text          string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"not null"`
}

// TableName returns the table name for the CommentModel.
func (CommentModel) TableName() string {
	return "transaction_comments"
}

// ToEntity converts a CommentModel to a domain Comment entity.
func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

// CommentFromEntity creates a CommentModel from a domain Comment entity.
func CommentFromEntity(transactionID uuid.UUID, comment *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:            comment.ID,
		TransactionID: transactionID,
		UserID:        comment.UserID,
		UserName:      comment.UserName,
		Text:          comment.Text,
		Timestamp:     comment.Timestamp,
	}
}
