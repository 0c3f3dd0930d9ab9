package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pyme-finance/backend/internal/application/adapter"
	"github.com/pyme-finance/backend/internal/domain/entity"
	domainerror "github.com/pyme-finance/backend/internal/domain/error"
)

// DefaultMonthCount is how many months of chart data are returned when the
// caller does not specify a count.
const DefaultMonthCount = 6

// spanishMonthLabels holds the short month names the dashboard charts use.
// The product ships in Spanish, so the labels are fixed rather than
// locale-negotiated.
var spanishMonthLabels = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// MonthLabel returns the Spanish short label for a month.
func MonthLabel(month time.Month) string {
	return spanishMonthLabels[month-1]
}

// GetMonthlyDataInput represents the input for the monthly chart query.
type GetMonthlyDataInput struct {
	CompanyID  uuid.UUID
	MonthCount int
	Now        time.Time
}

// MonthlyBucket holds the totals of one calendar month.
type MonthlyBucket struct {
	Label    string // Spanish short month name
	Year     int
	Month    time.Month
	Income   int64 // minor units
	Expenses int64 // minor units
	Net      int64 // minor units
}

// GetMonthlyDataOutput represents the output of the monthly chart query.
type GetMonthlyDataOutput struct {
	Months []MonthlyBucket
}

// GetMonthlyDataUseCase buckets transactions into the trailing calendar
// months, oldest first.
type GetMonthlyDataUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlyDataUseCase creates a new GetMonthlyDataUseCase instance.
func NewGetMonthlyDataUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyDataUseCase {
	return &GetMonthlyDataUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns one bucket per calendar month for the last MonthCount
// months including the month of input.Now. Months with no transactions
// appear with zero totals so chart axes stay continuous.
func (uc *GetMonthlyDataUseCase) Execute(ctx context.Context, input GetMonthlyDataInput) (*GetMonthlyDataOutput, error) {
	monthCount := input.MonthCount
	if monthCount == 0 {
		monthCount = DefaultMonthCount
	}
	if monthCount < 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthCount,
			"month count must be positive",
			domainerror.ErrInvalidMonthCount,
		)
	}

	// time.Date normalizes out-of-range months, which is exactly what we
	// want when stepping back across year boundaries.
	loc := input.Now.Location()
	start := time.Date(input.Now.Year(), input.Now.Month()-time.Month(monthCount-1), 1, 0, 0, 0, 0, loc)
	end := time.Date(input.Now.Year(), input.Now.Month()+1, 1, 0, 0, 0, 0, loc)

	transactions, err := uc.transactionRepo.FindByCompanyAndDateRange(ctx, input.CompanyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for monthly data: %w", err)
	}

	months := make([]MonthlyBucket, monthCount)
	index := make(map[[2]int]*MonthlyBucket, monthCount)
	for i := range months {
		m := start.AddDate(0, i, 0)
		months[i] = MonthlyBucket{
			Label: MonthLabel(m.Month()),
			Year:  m.Year(),
			Month: m.Month(),
		}
		index[[2]int{m.Year(), int(m.Month())}] = &months[i]
	}

	for _, tx := range transactions {
		bucket, ok := index[[2]int{tx.Date.Year(), int(tx.Date.Month())}]
		if !ok {
			continue
		}
		switch tx.Type {
		case entity.TransactionTypeIncome:
			bucket.Income += tx.Amount
		case entity.TransactionTypeExpense:
			bucket.Expenses += tx.Amount
		}
	}
	for i := range months {
		months[i].Net = months[i].Income - months[i].Expenses
	}

	return &GetMonthlyDataOutput{Months: months}, nil
}
