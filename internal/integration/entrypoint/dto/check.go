package dto

import (
	"time"

	"github.com/pyme-finance/backend/internal/application/usecase/check"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreateCheckRequest represents the request body for check registration.
// Amount is free text in the company currency ("250000" or "1250,50").
type CreateCheckRequest struct {
	Number      string `json:"number" binding:"required,min=1,max=50"`
	Bank        string `json:"bank" binding:"required,min=1,max=100"`
	Amount      string `json:"amount" binding:"required"`
	IssueDate   string `json:"issue_date" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateCheckStatusRequest represents the request body for a check status change.
type UpdateCheckStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid rejected cancelled"`
}

// CheckResponse represents a single check in API responses.
type CheckResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Number          string    `json:"number"`
	Bank            string    `json:"bank"`
	Amount          int64     `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	Currency        string    `json:"currency"`
	IssueDate       string    `json:"issue_date"`
	DueDate         string    `json:"due_date"`
	Status          string    `json:"status"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CheckListResponse represents the response for listing checks.
type CheckListResponse struct {
	Checks []CheckResponse `json:"checks"`
}

// CheckAlertsResponse represents the response for the check alerts query.
// A check appears in at most one of the two lists.
type CheckAlertsResponse struct {
	Overdue  []CheckResponse `json:"overdue"`
	Upcoming []CheckResponse `json:"upcoming"`
}

// ToCheckResponse converts a CheckOutput to a CheckResponse DTO.
func ToCheckResponse(c *check.CheckOutput) CheckResponse {
	return CheckResponse{
		ID:              c.ID.String(),
		CompanyID:       c.CompanyID.String(),
		Number:          c.Number,
		Bank:            c.Bank,
		Amount:          c.Amount,
		AmountFormatted: money.Format(c.Amount, c.Currency),
		Currency:        string(c.Currency),
		IssueDate:       c.IssueDate.Format("2006-01-02"),
		DueDate:         c.DueDate.Format("2006-01-02"),
		Status:          string(c.Status),
		Description:     c.Description,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCheckResponses converts a slice of check outputs.
func ToCheckResponses(checks []*check.CheckOutput) []CheckResponse {
	responses := make([]CheckResponse, len(checks))
	for i, c := range checks {
		responses[i] = ToCheckResponse(c)
	}
	return responses
}

// ToCheckAlertsResponse converts a GetCheckAlertsOutput to CheckAlertsResponse.
func ToCheckAlertsResponse(output *check.GetCheckAlertsOutput) CheckAlertsResponse {
	return CheckAlertsResponse{
		Overdue:  ToCheckResponses(output.Overdue),
		Upcoming: ToCheckResponses(output.Upcoming),
	}
}
