package dto

import (
	"time"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// CreateCompanyRequest represents the request body for company creation.
// Currency defaults to CLP and timezone to America/Santiago when omitted.
type CreateCompanyRequest struct {
	Name               string   `json:"name" binding:"required,min=1,max=100"`
	Logo               string   `json:"logo,omitempty"`
	Currency           string   `json:"currency,omitempty" binding:"omitempty,oneof=CLP USD EUR AED"`
	Timezone           string   `json:"timezone,omitempty"`
	ReminderRecipients []string `json:"reminder_recipients,omitempty" binding:"omitempty,dive,email"`
}

// UpdateCompanyRequest represents the request body for company update.
// Omitted fields are left untouched.
type UpdateCompanyRequest struct {
	Name               *string   `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Logo               *string   `json:"logo,omitempty"`
	Currency           *string   `json:"currency,omitempty" binding:"omitempty,oneof=CLP USD EUR AED"`
	Timezone           *string   `json:"timezone,omitempty"`
	ReminderRecipients *[]string `json:"reminder_recipients,omitempty" binding:"omitempty,dive,email"`
}

// CompanyResponse represents a single company in API responses.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Logo               string    `json:"logo,omitempty"`
	Currency           string    `json:"currency"`
	Timezone           string    `json:"timezone"`
	ReminderRecipients []string  `json:"reminder_recipients,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CompanyListResponse represents the response for listing companies.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToCompanyResponse converts a Company entity to a CompanyResponse DTO.
func ToCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:                 c.ID.String(),
		Name:               c.Name,
		Logo:               c.Logo,
		Currency:           string(c.Currency),
		Timezone:           c.Timezone,
		ReminderRecipients: c.ReminderRecipients,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToCompanyListResponse converts a slice of companies to CompanyListResponse.
func ToCompanyListResponse(companies []*entity.Company) CompanyListResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(c)
	}
	return CompanyListResponse{Companies: responses}
}
