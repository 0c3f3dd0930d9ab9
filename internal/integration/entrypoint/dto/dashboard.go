package dto

import (
	"github.com/pyme-finance/backend/internal/application/usecase/dashboard"
	"github.com/pyme-finance/backend/internal/domain/money"
)

// MetricResponse represents one dashboard figure with its period-over-period
// change. Change carries the raw percentage; ChangeText and ChangeColor are
// ready for display.
type MetricResponse struct {
	Amount          int64   `json:"amount"`
	AmountFormatted string  `json:"amount_formatted"`
	Change          float64 `json:"change"`
	ChangeText      string  `json:"change_text"`
	ChangeColor     string  `json:"change_color"`
}

// MetricsResponse represents the response for the dashboard metrics query.
type MetricsResponse struct {
	Income     MetricResponse `json:"income"`
	Expenses   MetricResponse `json:"expenses"`
	NetUtility MetricResponse `json:"net_utility"`
}

// MonthlyBucketResponse represents one calendar month in the chart data.
// Totals come in minor units plus major-unit values for charting libraries
// that plot decimal amounts directly.
type MonthlyBucketResponse struct {
	Label         string  `json:"label"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Income        int64   `json:"income"`
	Expenses      int64   `json:"expenses"`
	Net           int64   `json:"net"`
	IncomeMajor   float64 `json:"income_major"`
	ExpensesMajor float64 `json:"expenses_major"`
	NetMajor      float64 `json:"net_major"`
}

// MonthlyDataResponse represents the response for the monthly chart query,
// oldest month first.
type MonthlyDataResponse struct {
	Months []MonthlyBucketResponse `json:"months"`
}

func toMetricResponse(m dashboard.PeriodMetric, currency money.Code) MetricResponse {
	change := money.FormatPercentageChange(m.ChangePercent)
	return MetricResponse{
		Amount:          m.Amount,
		AmountFormatted: money.Format(m.Amount, currency),
		Change:          m.ChangePercent,
		ChangeText:      change.Text,
		ChangeColor:     change.ColorClass,
	}
}

// ToMetricsResponse converts a GetMetricsOutput to MetricsResponse, formatting
// amounts in the company currency.
func ToMetricsResponse(output *dashboard.GetMetricsOutput, currency money.Code) MetricsResponse {
	return MetricsResponse{
		Income:     toMetricResponse(output.Income, currency),
		Expenses:   toMetricResponse(output.Expenses, currency),
		NetUtility: toMetricResponse(output.NetUtility, currency),
	}
}

// ToMonthlyDataResponse converts a GetMonthlyDataOutput to MonthlyDataResponse.
func ToMonthlyDataResponse(output *dashboard.GetMonthlyDataOutput) MonthlyDataResponse {
	months := make([]MonthlyBucketResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthlyBucketResponse{
			Label:         m.Label,
			Year:          m.Year,
			Month:         int(m.Month),
			Income:        m.Income,
			Expenses:      m.Expenses,
			Net:           m.Net,
			IncomeMajor:   money.FromMinorUnits(m.Income),
			ExpensesMajor: money.FromMinorUnits(m.Expenses),
			NetMajor:      money.FromMinorUnits(m.Net),
		}
	}
	return MonthlyDataResponse{Months: months}
}
