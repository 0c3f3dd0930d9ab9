package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/usecase/company"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
)

// respondMissingCompany reports an absent company scope. Routes behind the
// CompanyScope middleware should never hit this.
func respondMissingCompany(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "X-Company-ID header is required",
		Code:  string(domainerror.ErrCodeMissingCompanyID),
	})
}

// respondInternalError reports an unexpected failure without leaking detail.
func respondInternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternalError),
	})
}

// handleCompanyError maps company errors to HTTP responses.
func handleCompanyError(ctx *gin.Context, err error) {
	var cmpErr *domainerror.CompanyError
	if errors.As(err, &cmpErr) {
		status := http.StatusBadRequest
		if cmpErr.Code == domainerror.ErrCodeCompanyNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: cmpErr.Message,
			Code:  string(cmpErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// companyCurrency resolves the display currency of the scoped company. On
// failure it writes the error response and returns false.
func companyCurrency(ctx *gin.Context, getCompany *company.GetCompanyUseCase, companyID uuid.UUID) (money.Code, bool) {
	cmp, err := getCompany.Execute(ctx.Request.Context(), companyID)
	if err != nil {
		handleCompanyError(ctx, err)
		return "", false
	}
	return cmp.Currency, true
}
