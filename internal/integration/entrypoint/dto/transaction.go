// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financeflow/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date         string `json:"date" binding:"required"`
	Description  string `json:"description" binding:"required,min=1,max=255"`
	Type         string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	MainCategory string `json:"main_category" binding:"required"`
	SubCategory  string `json:"sub_category" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Remarks      string `json:"remarks" binding:"max=1000"`
	IsRecurring  bool   `json:"is_recurring"`
	Frequency    string `json:"frequency" binding:"omitempty,oneof=Daily Weekly Monthly Yearly"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date         string `json:"date" binding:"required"`
	Description  string `json:"description" binding:"required,min=1,max=255"`
	Type         string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	MainCategory string `json:"main_category" binding:"required"`
	SubCategory  string `json:"sub_category" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Remarks      string `json:"remarks" binding:"max=1000"`
	IsRecurring  bool   `json:"is_recurring"`
	Frequency    string `json:"frequency" binding:"omitempty,oneof=Daily Weekly Monthly Yearly"`
}

// AddCommentRequest represents the request body for appending a comment.
type AddCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                string            `json:"id"`
	Code              string            `json:"code"`
	Date              string            `json:"date"`
	Description       string            `json:"description"`
	Type              string            `json:"type"`
	MainCategory      string            `json:"main_category"`
	SubCategory       string            `json:"sub_category"`
	Amount            string            `json:"amount"`
	Remarks           string            `json:"remarks,omitempty"`
	Comments          []CommentResponse `json:"comments"`
	CreatedBy         string            `json:"created_by"`
	IsRecurring       bool              `json:"is_recurring"`
	Frequency         string            `json:"frequency,omitempty"`
	LastGeneratedDate string            `json:"last_generated_date,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the transaction listing response.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToCommentResponse converts a domain Comment entity to a CommentResponse DTO.
func ToCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		UserID:    comment.UserID.String(),
		UserName:  comment.UserName,
		Text:      comment.Text,
		Timestamp: comment.Timestamp,
	}
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:           txn.ID.String(),
		Code:         txn.Code,
		Date:         txn.Date.Format("2006-01-02"),
		Description:  txn.Description,
		Type:         string(txn.Type),
		MainCategory: txn.MainCategory,
		SubCategory:  txn.SubCategory,
		Amount:       txn.Amount.String(),
		Remarks:      txn.Remarks,
		Comments:     make([]CommentResponse, 0, len(txn.Comments)),
		CreatedBy:    txn.CreatedBy.String(),
		IsRecurring:  txn.IsRecurring,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
	if txn.Frequency != nil {
		response.Frequency = string(*txn.Frequency)
	}
	if txn.LastGeneratedDate != nil {
		response.LastGeneratedDate = txn.LastGeneratedDate.Format("2006-01-02")
	}
	for _, comment := range txn.Comments {
		response.Comments = append(response.Comments, ToCommentResponse(comment))
	}
	return response
}

// ToTransactionListResponse converts a slice of transactions to the listing response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
