package spending

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
)

// DataSource provides the loaded expense datasets.
type DataSource interface {
	Transactions() []domain.Transaction
	Budgets() domain.Budgets
}

// Service orchestrates spending aggregations over the loaded data.
type Service struct {
	data       DataSource
	thresholds Thresholds
	log        zerolog.Logger
}

// NewService creates a new spending service.
func NewService(data DataSource, thresholds Thresholds, log zerolog.Logger) *Service {
	return &Service{
		data:       data,
		thresholds: thresholds,
		log:        log.With().Str("service", "spending").Logger(),
	}
}

// expensesInRange returns the expense transactions inside [start, end].
func (s *Service) expensesInRange(start, end time.Time) []domain.Transaction {
	txs := domain.FilterTransactionsByDate(s.data.Transactions(), start, end)
	return domain.FilterExpenses(txs)
}

// Totals aggregates expenses in range by the given grouping key
// (category, account, merchant or day-of-week).
func (s *Service) Totals(group string, start, end time.Time) ([]GroupTotal, error) {
	expenses := s.expensesInRange(start, end)

	switch group {
	case "category":
		return TotalsByCategory(expenses), nil
	case "account":
		return TotalsByAccount(expenses), nil
	case "merchant":
		return TotalsByMerchant(expenses), nil
	case "day-of-week":
		return TotalsByDayOfWeek(expenses), nil
	default:
		return nil, domain.NewStructuralError("transactions", "unknown grouping key: "+group, nil)
	}
}

// MonthlyTotals aggregates expenses in range by calendar month.
func (s *Service) MonthlyTotals(start, end time.Time) []MonthTotal {
	return TotalsByMonth(s.expensesInRange(start, end))
}

// CategoryTrends aggregates expenses in range by (month, category).
func (s *Service) CategoryTrends(start, end time.Time) []CategoryMonthTotal {
	return TrendsByCategory(s.expensesInRange(start, end))
}

// TopMerchants returns the top n merchants by spending in range.
func (s *Service) TopMerchants(n int, start, end time.Time) []GroupTotal {
	return TopMerchants(s.expensesInRange(start, end), n)
}

// BudgetComparison compares spending in range against the budget table,
// scaled by the distinct months present in the range.
func (s *Service) BudgetComparison(start, end time.Time) ([]BudgetRow, int, error) {
	expenses := s.expensesInRange(start, end)
	numMonths := domain.DistinctMonths(expenses)

	rows, err := Comparison(expenses, s.data.Budgets(), numMonths, s.thresholds)
	if err != nil {
		return nil, 0, err
	}
	return rows, numMonths, nil
}

// Summary computes headline spending statistics for the range.
func (s *Service) Summary(start, end time.Time) (Summary, int, error) {
	expenses := s.expensesInRange(start, end)
	numMonths := domain.DistinctMonths(expenses)

	summary, err := Summarize(expenses, s.data.Budgets(), numMonths)
	if err != nil {
		return Summary{}, 0, err
	}
	return summary, numMonths, nil
}
