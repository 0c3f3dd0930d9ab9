package dto

import (
	"time"

	"github.com/pyme-finance/backend/internal/application/usecase/credit"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// CreateCreditRequest represents the request body for credit registration.
// Amount is the principal as free text in the company currency.
type CreateCreditRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Amount       string  `json:"amount" binding:"required"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0"`
	TermMonths   int     `json:"term_months" binding:"required,gt=0"`
	StartDate    string  `json:"start_date" binding:"required"`
	Description  string  `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateCreditStatusRequest represents the request body for a credit status change.
type UpdateCreditStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paid defaulted"`
}

// CreditResponse represents a single credit in API responses.
type CreditResponse struct {
	ID                      string    `json:"id"`
	CompanyID               string    `json:"company_id"`
	Name                    string    `json:"name"`
	Amount                  int64     `json:"amount"`
	AmountFormatted         string    `json:"amount_formatted"`
	Currency                string    `json:"currency"`
	InterestRate            float64   `json:"interest_rate"`
	TermMonths              int       `json:"term_months"`
	MonthlyPayment          int64     `json:"monthly_payment"`
	MonthlyPaymentFormatted string    `json:"monthly_payment_formatted"`
	StartDate               string    `json:"start_date"`
	EndDate                 string    `json:"end_date"`
	Status                  string    `json:"status"`
	Description             string    `json:"description,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// CreditListResponse represents the response for listing credits.
type CreditListResponse struct {
	Credits []CreditResponse `json:"credits"`
}

// UpcomingPaymentResponse represents one credit nearing its end date.
type UpcomingPaymentResponse struct {
	Credit            CreditResponse `json:"credit"`
	RemainingPayments int            `json:"remaining_payments"`
}

// UpcomingPaymentsResponse represents the response for the upcoming payments query.
type UpcomingPaymentsResponse struct {
	Payments []UpcomingPaymentResponse `json:"payments"`
}

// CreditStatsResponse represents aggregate figures over active credits.
type CreditStatsResponse struct {
	TotalDebt                int64  `json:"total_debt"`
	TotalDebtFormatted       string `json:"total_debt_formatted"`
	MonthlyPayments          int64  `json:"monthly_payments"`
	MonthlyPaymentsFormatted string `json:"monthly_payments_formatted"`
	ActiveCredits            int    `json:"active_credits"`
	UpcomingInMonth          int    `json:"upcoming_in_month"`
}

// ToCreditResponse converts a CreditOutput to a CreditResponse DTO.
func ToCreditResponse(c *credit.CreditOutput) CreditResponse {
	return CreditResponse{
		ID:                      c.ID.String(),
		CompanyID:               c.CompanyID.String(),
		Name:                    c.Name,
		Amount:                  c.Amount,
		AmountFormatted:         money.Format(c.Amount, c.Currency),
		Currency:                string(c.Currency),
		InterestRate:            c.InterestRate,
		TermMonths:              c.TermMonths,
		MonthlyPayment:          c.MonthlyPayment,
		MonthlyPaymentFormatted: money.Format(c.MonthlyPayment, c.Currency),
		StartDate:               c.StartDate.Format("2006-01-02"),
		EndDate:                 c.EndDate.Format("2006-01-02"),
		Status:                  string(c.Status),
		Description:             c.Description,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

// ToCreditListResponse converts a ListCreditsOutput to CreditListResponse.
func ToCreditListResponse(output *credit.ListCreditsOutput) CreditListResponse {
	credits := make([]CreditResponse, len(output.Credits))
	for i, c := range output.Credits {
		credits[i] = ToCreditResponse(c)
	}
	return CreditListResponse{Credits: credits}
}

// ToUpcomingPaymentsResponse converts a GetUpcomingPaymentsOutput to UpcomingPaymentsResponse.
func ToUpcomingPaymentsResponse(output *credit.GetUpcomingPaymentsOutput) UpcomingPaymentsResponse {
	payments := make([]UpcomingPaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = UpcomingPaymentResponse{
			Credit:            ToCreditResponse(p.Credit),
			RemainingPayments: p.RemainingPayments,
		}
	}
	return UpcomingPaymentsResponse{Payments: payments}
}

// ToCreditStatsResponse converts a GetCreditStatsOutput to CreditStatsResponse.
// Formatted figures use the company currency.
func ToCreditStatsResponse(output *credit.GetCreditStatsOutput, currency money.Code) CreditStatsResponse {
	return CreditStatsResponse{
		TotalDebt:                output.Stats.TotalDebt,
		TotalDebtFormatted:       money.Format(output.Stats.TotalDebt, currency),
		MonthlyPayments:          output.Stats.MonthlyPayments,
		MonthlyPaymentsFormatted: money.Format(output.Stats.MonthlyPayments, currency),
		ActiveCredits:            output.Stats.ActiveCredits,
		UpcomingInMonth:          output.UpcomingInMonth,
	}
}
