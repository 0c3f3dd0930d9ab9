package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/usecase/check"
	"github.com/pyme-finance/backend/internal/application/usecase/company"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/domain/money"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
)

// CheckController handles check endpoints.
type CheckController struct {
	createUseCase       *check.CreateCheckUseCase
	listUseCase         *check.ListChecksUseCase
	updateStatusUseCase *check.UpdateCheckStatusUseCase
	alertsUseCase       *check.GetCheckAlertsUseCase
	getCompanyUseCase   *company.GetCompanyUseCase
}

// NewCheckController creates a new check controller instance.
func NewCheckController(
	createUseCase *check.CreateCheckUseCase,
	listUseCase *check.ListChecksUseCase,
	updateStatusUseCase *check.UpdateCheckStatusUseCase,
	alertsUseCase *check.GetCheckAlertsUseCase,
	getCompanyUseCase *company.GetCompanyUseCase,
) *CheckController {
	return &CheckController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		alertsUseCase:       alertsUseCase,
		getCompanyUseCase:   getCompanyUseCase,
	}
}

// Create handles POST /checks requests.
func (c *CheckController) Create(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	var req dto.CreateCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid issue_date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due_date format. Use YYYY-MM-DD",
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

	input := check.CreateCheckInput{
		CompanyID:   companyID,
		Number:      req.Number,
		Bank:        req.Bank,
		Amount:      amount,
		Currency:    currency,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Description: req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCheckError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCheckResponse(output.Check))
}

// List handles GET /checks requests.
func (c *CheckController) List(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := check.ListChecksInput{CompanyID: companyID}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.CheckStatus(statusStr)
		input.Status = &status
	}
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.CheckListResponse{Checks: dto.ToCheckResponses(output.Checks)})
}

// UpdateStatus handles PATCH /checks/:id/status requests.
func (c *CheckController) UpdateStatus(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	checkID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid check ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	var req dto.UpdateCheckStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := check.UpdateCheckStatusInput{
		CompanyID: companyID,
		CheckID:   checkID,
		Status:    entity.CheckStatus(req.Status),
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCheckError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckResponse(output.Check))
}

// Alerts handles GET /checks/alerts requests.
func (c *CheckController) Alerts(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := check.GetCheckAlertsInput{
		CompanyID: companyID,
		Now:       time.Now().UTC(),
	}
	if windowStr := ctx.Query("window_days"); windowStr != "" {
		if window, err := strconv.Atoi(windowStr); err == nil {
			input.WindowDays = window
		}
	}

	output, err := c.alertsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondInternalError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckAlertsResponse(output))
}

// handleCheckError maps check and money errors to HTTP responses.
func handleCheckError(ctx *gin.Context, err error) {
	var chkErr *domainerror.CheckError
	if errors.As(err, &chkErr) {
		ctx.JSON(statusForCheckError(chkErr.Code), dto.ErrorResponse{
			Error: chkErr.Message,
			Code:  string(chkErr.Code),
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

// statusForCheckError maps check error codes to HTTP status codes.
func statusForCheckError(code domainerror.CheckErrorCode) int {
	switch code {
	case domainerror.ErrCodeCheckNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCheckStatusFinal:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCheckStatus,
		domainerror.ErrCodeInvalidCheckDates:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
