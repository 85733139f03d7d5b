package spending

import "time"

// GroupTotal is one row of an aggregation result: a grouping key and the
// summed amount, normalized to a non-negative magnitude for display.
type GroupTotal struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// MonthTotal is one calendar month's summed spending.
type MonthTotal struct {
	Month  time.Time `json:"month"`
	Amount float64   `json:"amount"`
}

// CategoryMonthTotal is one (month, category) cell of the category trend.
type CategoryMonthTotal struct {
	Month    time.Time `json:"month"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
}

// Budget status values for downstream display.
const (
	StatusOnTrack    = "on-track"
	StatusWarning    = "warning"
	StatusOverBudget = "over-budget"
)

// Thresholds configures the budget status boundaries (as percentages of the
// scaled budget). They are configuration, not business logic.
type Thresholds struct {
	Warning float64 // percentage above which status is "warning"
	Danger  float64 // percentage above which status is "over-budget"
}

// DefaultThresholds matches the dashboard's progress-bar defaults.
var DefaultThresholds = Thresholds{Warning: 80, Danger: 100}

// BudgetRow is one budget category's comparison against actual spending over
// the selected period.
type BudgetRow struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"` // monthly budget scaled by months in range
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"` // negative when over budget
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// Summary holds headline spending statistics for the selected period.
type Summary struct {
	TotalSpent      float64 `json:"total_spent"`
	TotalBudget     float64 `json:"total_budget"`
	Remaining       float64 `json:"remaining"`
	NumTransactions int     `json:"num_transactions"`
	AvgTransaction  float64 `json:"avg_transaction"`
}
