// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// CompanyIDKey is the context key for the active company's ID.
	CompanyIDKey ContextKey = "company_id"

	// CompanyIDHeader is the header clients send to select the active company.
	CompanyIDHeader = "X-Company-ID"
)

// CompanyScope returns a Gin middleware handler that requires a valid
// X-Company-ID header and stores the parsed ID in the request context.
// Every tenant-scoped route sits behind it.
func CompanyScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(CompanyIDHeader)
		if header == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "X-Company-ID header is required",
				Code:  string(domainerror.ErrCodeMissingCompanyID),
			})
			c.Abort()
			return
		}

		companyID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "X-Company-ID header is not a valid UUID",
				Code:  string(domainerror.ErrCodeMissingCompanyID),
			})
			c.Abort()
			return
		}

		c.Set(string(CompanyIDKey), companyID)
		c.Next()
	}
}

// GetCompanyIDFromContext extracts the active company ID from the Gin context.
func GetCompanyIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	companyID, exists := c.Get(string(CompanyIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := companyID.(uuid.UUID)
	return id, ok
}
