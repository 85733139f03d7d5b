// Package loader reads the CSV-backed datasets into typed records, fixing
// sign conventions once at the ingestion boundary and rejecting malformed
// input with structural errors before any calculator runs.
package loader

import (
	"fmt"

	"github.com/findash/findash/internal/domain"
)

// Expected file names inside the data directory.
const (
	TransactionsFile = "transactions.csv"
	NetWorthFile     = "networth.csv"
	BudgetsFile      = "budgets.csv"
	PortfolioFile    = "portfolio_history.csv"
)

// LoadTransactions reads the expense transactions sheet.
// Columns: Date, Amount, Category, Subcategory, Merchant, Account.
func LoadTransactions(path string) ([]domain.Transaction, error) {
	t, err := readTable("transactions", path, []string{"Date", "Amount", "Category", "Merchant", "Account"})
	if err != nil || t == nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(t.rows))
	for i, row := range t.rows {
		date, err := t.date(row, i, "Date")
		if err != nil {
			return nil, err
		}
		amount, err := t.float(row, i, "Amount")
		if err != nil {
			return nil, err
		}

		txs = append(txs, domain.Transaction{
			Date:        date,
			Amount:      amount,
			Category:    t.cell(row, "Category"),
			Subcategory: t.cell(row, "Subcategory"),
			Merchant:    t.cell(row, "Merchant"),
			Account:     t.cell(row, "Account"),
		})
	}

	return txs, nil
}

// LoadNetWorth reads the net worth sheet and normalizes liability signs.
// Columns: Month, Account, Account Type, Category, Amount.
func LoadNetWorth(path string) ([]domain.NetWorthSnapshot, error) {
	t, err := readTable("networth", path, []string{"Month", "Account", "Account Type", "Amount"})
	if err != nil || t == nil {
		return nil, err
	}

	snaps := make([]domain.NetWorthSnapshot, 0, len(t.rows))
	for i, row := range t.rows {
		month, err := t.date(row, i, "Month")
		if err != nil {
			return nil, err
		}
		amount, err := t.float(row, i, "Amount")
		if err != nil {
			return nil, err
		}

		snaps = append(snaps, domain.NetWorthSnapshot{
			Month:       domain.MonthStart(month),
			Account:     t.cell(row, "Account"),
			AccountType: t.cell(row, "Account Type"),
			Category:    t.cell(row, "Category"),
			Amount:      amount,
		})
	}

	return domain.NormalizeSigns(snaps), nil
}

// LoadBudgets reads the per-category monthly budget table.
// Columns: Category, Monthly Budget. Negative budgets are structural errors.
func LoadBudgets(path string) (domain.Budgets, error) {
	t, err := readTable("budgets", path, []string{"Category", "Monthly Budget"})
	if err != nil || t == nil {
		return nil, err
	}

	budgets := make(domain.Budgets, len(t.rows))
	for i, row := range t.rows {
		category := t.cell(row, "Category")
		if category == "" {
			continue
		}
		monthly, err := t.float(row, i, "Monthly Budget")
		if err != nil {
			return nil, err
		}
		if monthly < 0 {
			return nil, domain.NewStructuralError("budgets",
				fmt.Sprintf("row %d: negative budget for category %q", i+2, category), nil)
		}
		budgets[category] = monthly
	}

	return budgets, nil
}

// LoadPortfolio reads the per-ticker valuation history.
func LoadPortfolio(path string) ([]domain.PortfolioSnapshot, error) {
	t, err := readTable("portfolio", path, []string{"Date", "Ticker", "Quantity", "Last Close", "Current Value", "Cost Basis"})
	if err != nil || t == nil {
		return nil, err
	}

	snaps := make([]domain.PortfolioSnapshot, 0, len(t.rows))
	for i, row := range t.rows {
		date, err := t.date(row, i, "Date")
		if err != nil {
			return nil, err
		}

		snap := domain.PortfolioSnapshot{
			Date:           date,
			Ticker:         t.cell(row, "Ticker"),
			Brokerage:      t.cell(row, "Brokerage"),
			AccountName:    t.cell(row, "Account Name"),
			InvestmentType: t.cell(row, "Investment Type"),
		}

		for _, field := range []struct {
			column string
			dst    *float64
		}{
			{"Quantity", &snap.Quantity},
			{"Last Close", &snap.LastClose},
			{"Current Value", &snap.CurrentValue},
			{"Cost Basis", &snap.CostBasis},
			{"Total Gain/Loss", &snap.TotalGainLoss},
			{"Total Gain/Loss %", &snap.TotalGainLossPct},
		} {
			v, err := t.float(row, i, field.column)
			if err != nil {
				return nil, err
			}
			*field.dst = v
		}

		snaps = append(snaps, snap)
	}

	return snaps, nil
}
