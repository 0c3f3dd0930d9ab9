// Package dashboard contains the aggregation use cases behind the
// dashboard views: period metrics and monthly chart data.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// DefaultPeriodDays is the trailing window used when the caller does not
// specify one.
const DefaultPeriodDays = 30

// GetMetricsInput represents the input for the period metrics query.
// Now is passed explicitly so two windows computed in one request share a
// single reference instant.
type GetMetricsInput struct {
	CompanyID  uuid.UUID
	PeriodDays int
	Now        time.Time
}

// PeriodMetric is a figure for the current window together with its
// percentage change against the previous window of equal length.
type PeriodMetric struct {
	Amount        int64 // minor units
	ChangePercent float64
}

// GetMetricsOutput represents the output of the period metrics query.
type GetMetricsOutput struct {
	Income     PeriodMetric
	Expenses   PeriodMetric
	NetUtility PeriodMetric
}

// GetMetricsUseCase aggregates transactions over a trailing window and the
// window immediately before it.
type GetMetricsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(transactionRepo adapter.TransactionRepository) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes income, expense and net totals for [now-period, now)
// and their change against [now-2*period, now-period). A zero previous
// income or expense total yields a 0% change rather than a division by
// zero; net utility may legitimately be negative, so its change divides
// by the absolute previous value and only a previous value of exactly
// zero is guarded.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, input GetMetricsInput) (*GetMetricsOutput, error) {
	periodDays := input.PeriodDays
	if periodDays == 0 {
		periodDays = DefaultPeriodDays
	}
	if periodDays < 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriodLength,
			"period length must be a positive number of days",
			domainerror.ErrInvalidPeriodLength,
		)
	}

	currentStart := input.Now.AddDate(0, 0, -periodDays)
	previousStart := input.Now.AddDate(0, 0, -2*periodDays)

	transactions, err := uc.transactionRepo.FindByCompanyAndDateRange(ctx, input.CompanyID, previousStart, input.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for metrics: %w", err)
	}

	var current, previous entity.TransactionTotals
	for _, tx := range transactions {
		totals := &previous
		if !tx.Date.Before(currentStart) {
			totals = &current
		}
		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal += tx.Amount
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal += tx.Amount
		}
	}
	current.NetTotal = current.IncomeTotal - current.ExpenseTotal
	previous.NetTotal = previous.IncomeTotal - previous.ExpenseTotal

	return &GetMetricsOutput{
		Income: PeriodMetric{
			Amount:        current.IncomeTotal,
			ChangePercent: changeAgainstPositive(current.IncomeTotal, previous.IncomeTotal),
		},
		Expenses: PeriodMetric{
			Amount:        current.ExpenseTotal,
			ChangePercent: changeAgainstPositive(current.ExpenseTotal, previous.ExpenseTotal),
		},
		NetUtility: PeriodMetric{
			Amount:        current.NetTotal,
			ChangePercent: changeAgainstSigned(current.NetTotal, previous.NetTotal),
		},
	}, nil
}

// changeAgainstPositive returns the percentage change for figures that are
// magnitudes (income, expenses). A previous total of zero means there is no
// base to compare against, so the change is reported as 0.
func changeAgainstPositive(current, previous int64) float64 {
	if previous <= 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// changeAgainstSigned returns the percentage change for signed figures
// (net utility), dividing by the absolute previous value so the sign of
// the result tracks the direction of the move.
func changeAgainstSigned(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / math.Abs(float64(previous)) * 100
}
