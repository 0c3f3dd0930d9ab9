package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pyme-finance/backend/internal/application/usecase/company"
	"github.com/pyme-finance/backend/internal/application/usecase/dashboard"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/dto"
	"github.com/pyme-finance/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	metricsUseCase    *dashboard.GetMetricsUseCase
	monthlyUseCase    *dashboard.GetMonthlyDataUseCase
	getCompanyUseCase *company.GetCompanyUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	metricsUseCase *dashboard.GetMetricsUseCase,
	monthlyUseCase *dashboard.GetMonthlyDataUseCase,
	getCompanyUseCase *company.GetCompanyUseCase,
) *DashboardController {
	return &DashboardController{
		metricsUseCase:    metricsUseCase,
		monthlyUseCase:    monthlyUseCase,
		getCompanyUseCase: getCompanyUseCase,
	}
}

// Metrics handles GET /dashboard/metrics requests.
func (c *DashboardController) Metrics(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := dashboard.GetMetricsInput{
		CompanyID: companyID,
		Now:       time.Now().UTC(),
	}
	if periodStr := ctx.Query("period_days"); periodStr != "" {
		if period, err := strconv.Atoi(periodStr); err == nil {
			input.PeriodDays = period
		}
	}

	currency, ok := companyCurrency(ctx, c.getCompanyUseCase, companyID)
	if !ok {
		return
	}

	output, err := c.metricsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricsResponse(output, currency))
}

// MonthlyData handles GET /dashboard/monthly requests.
func (c *DashboardController) MonthlyData(ctx *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(ctx)
	if !ok {
		respondMissingCompany(ctx)
		return
	}

	input := dashboard.GetMonthlyDataInput{
		CompanyID: companyID,
		Now:       time.Now().UTC(),
	}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		if months, err := strconv.Atoi(monthsStr); err == nil {
			input.MonthCount = months
		}
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyDataResponse(output))
}

// handleDashboardError maps dashboard errors to HTTP responses.
func handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		status := http.StatusBadRequest
		if dshErr.Code == domainerror.ErrCodeDashboardInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}
