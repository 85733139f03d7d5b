package networth

import "time"

// PeriodValue is one period's total in a scalar time series (typically net
// worth per month). Series are always chronologically sorted.
type PeriodValue struct {
	Period time.Time `json:"period"`
	Label  string    `json:"label"`
	Value  float64   `json:"value"`
}

// Momentum classifications. The calculator reports NotAvailable rather than
// defaulting to Steady when fewer than 3 periods exist.
const (
	MomentumAccelerating = "Accelerating"
	MomentumDecelerating = "Decelerating"
	MomentumSteady       = "Steady"
	MomentumNotAvailable = "Not Available"
)

// Trend indicators for per-account movement.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Resampling intervals (stride in months).
const (
	IntervalMonth   = 1
	IntervalQuarter = 3
	IntervalYear    = 12
)

// Stats holds the period-over-period metrics for a scalar series.
type Stats struct {
	Periods          int     `json:"periods"`
	Latest           float64 `json:"latest"`
	Change           float64 `json:"change"`     // latest minus previous period
	ChangePct        float64 `json:"change_pct"` // change / |previous| * 100
	TotalChange      float64 `json:"total_change"`
	TotalChangePct   float64 `json:"total_change_pct"`
	AvgMonthlyGrowth float64 `json:"avg_monthly_growth"`
	Momentum         string  `json:"momentum"`
	BestIndex        int     `json:"best_index"`  // first occurrence on ties
	WorstIndex       int     `json:"worst_index"` // first occurrence on ties
}

// MilestoneCrossing records the first period at which the series reached a
// milestone value.
type MilestoneCrossing struct {
	Milestone float64   `json:"milestone"`
	Index     int       `json:"index"`
	Period    time.Time `json:"period"`
	Value     float64   `json:"value"`
}

// DefaultMilestones is the dashboard's milestone ladder.
var DefaultMilestones = []float64{100000, 250000, 500000, 750000, 1000000, 1500000, 2000000}

// SnapshotMetrics holds the headline balance-sheet numbers for one month,
// with optional changes against the previous month.
type SnapshotMetrics struct {
	Assets             float64 `json:"assets"`
	Liabilities        float64 `json:"liabilities"` // positive magnitude
	NetWorth           float64 `json:"net_worth"`
	NetWorthChange     float64 `json:"net_worth_change"`
	NetWorthChangePct  float64 `json:"net_worth_change_pct"`
	LiabilityChange    float64 `json:"liability_change"`
	LiabilityChangePct float64 `json:"liability_change_pct"`
	DebtRatio          float64 `json:"debt_ratio"`
}

// AccountInfo describes one account's latest value and movement.
type AccountInfo struct {
	Account     string  `json:"account"`
	AccountType string  `json:"account_type"`
	Value       float64 `json:"value"`
	Change      float64 `json:"change"`
	Trend       string  `json:"trend"`
}

// Pivot is an account-type (optionally x category) by period table with a
// grand-total row, for the period-over-period comparison view.
type Pivot struct {
	Columns []string   `json:"columns"` // period labels, chronological
	Rows    []PivotRow `json:"rows"`
}

// PivotRow is one row of the pivot table. Category is empty when the table is
// rolled up by account type only, and AccountType is "Grand Total" on the
// final row.
type PivotRow struct {
	AccountType string    `json:"account_type"`
	Category    string    `json:"category,omitempty"`
	Values      []float64 `json:"values"`
}
