package dto

import (
	"time"

	"github.com/pyme-finance/backend/internal/domain/entity"
)

// CreateSupplierRequest represents the request body for supplier creation.
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address     string `json:"address,omitempty" binding:"omitempty,max=200"`
	RUT         string `json:"rut,omitempty" binding:"omitempty,max=20"`
	ContactName string `json:"contact_name,omitempty" binding:"omitempty,max=100"`
	Notes       string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateSupplierRequest represents the request body for supplier update.
// Omitted fields are left untouched.
type UpdateSupplierRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Address     *string `json:"address,omitempty" binding:"omitempty,max=200"`
	RUT         *string `json:"rut,omitempty" binding:"omitempty,max=20"`
	ContactName *string `json:"contact_name,omitempty" binding:"omitempty,max=100"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// SupplierResponse represents a single supplier in API responses.
type SupplierResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	RUT         string    `json:"rut,omitempty"`
	ContactName string    `json:"contact_name,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse represents the response for listing suppliers.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a Supplier entity to a SupplierResponse DTO.
func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID.String(),
		CompanyID:   s.CompanyID.String(),
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		RUT:         s.RUT,
		ContactName: s.ContactName,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSupplierListResponse converts a slice of suppliers to SupplierListResponse.
func ToSupplierListResponse(suppliers []*entity.Supplier) SupplierListResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		responses[i] = ToSupplierResponse(s)
	}
	return SupplierListResponse{Suppliers: responses}
}
