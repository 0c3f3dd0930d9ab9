package dto

import (
	"time"

	"github.com/pyme-finance/backend/internal/application/usecase/transaction"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is free text ("100,50" or "100.50"); parsing happens in the use case.
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,min=1,max=500"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
// Amount carries the raw minor units; AmountFormatted is ready for display
// in the transaction's currency.
type TransactionResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Type            string    `json:"type"`
	Amount          int64     `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	Currency        string    `json:"currency"`
	Description     string    `json:"description"`
	Category        string    `json:"category,omitempty"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals over the returned page.
type TransactionTotalsResponse struct {
	IncomeTotal  int64 `json:"income_total"`
	ExpenseTotal int64 `json:"expense_total"`
	NetTotal     int64 `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// RecentTransactionsResponse represents the response for the recent transactions query.
type RecentTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID.String(),
		CompanyID:       txn.CompanyID.String(),
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		AmountFormatted: money.Format(txn.Amount, txn.Currency),
		Currency:        string(txn.Currency),
		Description:     txn.Description,
		Category:        txn.Category,
		Date:            txn.Date.Format("2006-01-02"),
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of transaction outputs.
func ToTransactionResponses(txns []*transaction.TransactionOutput) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Pagination: TransactionPaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal,
			ExpenseTotal: output.Totals.ExpenseTotal,
			NetTotal:     output.Totals.NetTotal,
		},
	}
}
