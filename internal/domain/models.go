package domain

import "time"

// Account types as they appear in the net worth sheet
const (
	AccountTypeAsset     = "Asset"
	AccountTypeLiability = "Liability"
)

// CategoryIncome is the sole income discriminator for transactions;
// every other category is an expense.
const CategoryIncome = "Income"

// Transaction represents a single spending or income record.
// Sign convention: expenses negative, income positive.
type Transaction struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Merchant    string    `json:"merchant"`
	Account     string    `json:"account"`
}

// IsExpense reports whether the transaction counts as spending.
func (t Transaction) IsExpense() bool {
	return t.Category != CategoryIncome
}

// NetWorthSnapshot represents one account's balance for one month.
// Month is normalized to the first of the month. After NormalizeSigns,
// liability amounts are negative; downstream code never re-negates.
type NetWorthSnapshot struct {
	Month       time.Time `json:"month"`
	Account     string    `json:"account"`
	AccountType string    `json:"account_type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
}

// Budgets maps a category to its monthly budget. A category absent from the
// map has an implicit budget of 0. All values must be >= 0.
type Budgets map[string]float64

// PortfolioSnapshot represents one ticker's valuation on one date.
type PortfolioSnapshot struct {
	Date             time.Time `json:"date"`
	Ticker           string    `json:"ticker"`
	Brokerage        string    `json:"brokerage,omitempty"`
	AccountName      string    `json:"account_name,omitempty"`
	InvestmentType   string    `json:"investment_type,omitempty"`
	Quantity         float64   `json:"quantity"`
	LastClose        float64   `json:"last_close"`
	CurrentValue     float64   `json:"current_value"`
	CostBasis        float64   `json:"cost_basis"`
	TotalGainLoss    float64   `json:"total_gain_loss"`
	TotalGainLossPct float64   `json:"total_gain_loss_pct"`
}

// NormalizeSigns fixes the liability sign convention once, at the ingestion
// boundary. Source sheets store liabilities either as positive magnitudes or
// already negated; after this pass every liability amount is negative, so a
// plain sum over a month yields net worth.
func NormalizeSigns(snapshots []NetWorthSnapshot) []NetWorthSnapshot {
	normalized := make([]NetWorthSnapshot, len(snapshots))
	for i, s := range snapshots {
		if s.AccountType == AccountTypeLiability && s.Amount > 0 {
			s.Amount = -s.Amount
		}
		normalized[i] = s
	}
	return normalized
}
