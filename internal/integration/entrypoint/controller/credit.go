package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/usecase/company"
	"github.com/pyme-finance/backend/internal/application/usecase/credit"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
)

// CreditController handles credit endpoints.
type CreditController struct {
	createUseCase       *credit.CreateCreditUseCase
	listUseCase         *credit.ListCreditsUseCase
	updateStatusUseCase *credit.UpdateCreditStatusUseCase
	upcomingUseCase     *credit.GetUpcomingPaymentsUseCase
	statsUseCase        *credit.GetCreditStatsUseCase
	getCompanyUseCase   *company.GetCompanyUseCase
}

// NewCreditController creates a new credit controller instance.
func NewCreditController(
	createUseCase *credit.CreateCreditUseCase,
	listUseCase *credit.ListCreditsUseCase,
	updateStatusUseCase *credit.UpdateCreditStatusUseCase,
	upcomingUseCase *credit.GetUpcomingPaymentsUseCase,
	statsUseCase *credit.GetCreditStatsUseCase,
	getCompanyUseCase *company.GetCompanyUseCase,
) *CreditController {
	return &CreditController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		upcomingUseCase:     upcomingUseCase,
		statsUseCase:        statsUseCase,
		getCompanyUseCase:   getCompanyUseCase,
	}
}

// Create handles POST /credits requests.
func (c *CreditController) Create(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	var req dto.CreateCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	amount, parsed := money.ParseInput(req.Amount)
	if !parsed {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		})
		return
	}

	currency, ok := companyCurrency(ctx, c.getCompanyUseCase, companyID)
	if !ok {
		return
	}

	input := credit.CreateCreditInput{
		CompanyID:    companyID,
		Name:         req.Name,
		Amount:       amount,
		Currency:     currency,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
		StartDate:    startDate,
		Description:  req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCreditError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditResponse(output.Credit))
}

// List handles GET /credits requests.
func (c *CreditController) List(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := credit.ListCreditsInput{CompanyID: companyID}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.CreditStatus(statusStr)
		input.Status = &status
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			input.Offset = offset
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditListResponse(output))
}

// UpdateStatus handles PATCH /credits/:id/status requests.
func (c *CreditController) UpdateStatus(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	creditID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	var req dto.UpdateCreditStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := credit.UpdateCreditStatusInput{
		CompanyID: companyID,
		CreditID:  creditID,
		Status:    entity.CreditStatus(req.Status),
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCreditError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditResponse(output.Credit))
}

// UpcomingPayments handles GET /credits/upcoming requests.
func (c *CreditController) UpcomingPayments(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := credit.GetUpcomingPaymentsInput{
		CompanyID: companyID,
		Now:       time.Now().UTC(),
	}

	output, err := c.upcomingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpcomingPaymentsResponse(output))
}

// Stats handles GET /credits/stats requests.
func (c *CreditController) Stats(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	currency, ok := companyCurrency(ctx, c.getCompanyUseCase, companyID)
	if !ok {
		return
	}

	input := credit.GetCreditStatsInput{
		CompanyID: companyID,
		Now:       time.Now().UTC(),
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditStatsResponse(output, currency))
}

// handleCreditError maps credit and money errors to HTTP responses.
func handleCreditError(ctx *gin.Context, err error) {
	var crdErr *domainerror.CreditError
	if errors.As(err, &crdErr) {
		ctx.JSON(statusForCreditError(crdErr.Code), dto.ErrorResponse{
			Error: crdErr.Message,
			Code:  string(crdErr.Code),
		})
		return
	}

	var moneyErr *domainerror.MoneyError
	if errors.As(err, &moneyErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: moneyErr.Message,
			Code:  string(moneyErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// statusForCreditError maps credit error codes to HTTP status codes.
func statusForCreditError(code domainerror.CreditErrorCode) int {
	switch code {
	case domainerror.ErrCodeCreditNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCreditStatusFinal:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTerm,
		domainerror.ErrCodeInvalidInterestRate,
		domainerror.ErrCodeInvalidPrincipal,
		domainerror.ErrCodeInvalidCreditStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
