// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/usecase/company"
	"github.com/pyme-finance/backend/internal/application/usecase/transaction"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase     *transaction.CreateTransactionUseCase
	listUseCase       *transaction.ListTransactionsUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	recentUseCase     *transaction.GetRecentTransactionsUseCase
	getCompanyUseCase *company.GetCompanyUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	recentUseCase *transaction.GetRecentTransactionsUseCase,
	getCompanyUseCase *company.GetCompanyUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		deleteUseCase:     deleteUseCase,
		recentUseCase:     recentUseCase,
		getCompanyUseCase: getCompanyUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	currency, ok := companyCurrency(ctx, c.getCompanyUseCase, companyID)
	if !ok {
		return
	}

	input := transaction.CreateTransactionInput{
		CompanyID:   companyID,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Currency:    currency,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		CompanyID: companyID,
		Category:  ctx.Query("category"),
		Search:    ctx.Query("search"),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		input.Type = &txnType
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

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
			Code:  string(domainerror.ErrCodeInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Recent handles GET /transactions/recent requests.
func (c *TransactionController) Recent(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := transaction.GetRecentTransactionsInput{CompanyID: companyID}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recent transactions",
			Code:  string(domainerror.ErrCodeInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.RecentTransactionsResponse{
		Transactions: dto.ToTransactionResponses(output.Transactions),
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		CompanyID:     companyID,
		TransactionID: transactionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTransactionError maps transaction and money errors to HTTP responses.
func handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
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

// statusForTransactionError maps transaction error codes to HTTP status codes.
func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeDescriptionTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
