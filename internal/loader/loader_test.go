package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/domain"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTransactions(t *testing.T) {
	path := writeFixture(t, TransactionsFile,
		"Date,Amount,Category,Subcategory,Merchant,Account\n"+
			"2025-01-15,-42.50,Groceries,Produce,market,checking\n"+
			"2025-01-20,\"$1,200.00\",Income,,employer,checking\n")

	txs, err := LoadTransactions(path)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, -42.50, txs[0].Amount)
	assert.Equal(t, "Groceries", txs[0].Category)
	assert.Equal(t, "Produce", txs[0].Subcategory)

	// Currency formatting is stripped.
	assert.Equal(t, 1200.0, txs[1].Amount)
	assert.Equal(t, "Income", txs[1].Category)
}

func TestLoadTransactions_MissingFileIsEmpty(t *testing.T) {
	txs, err := LoadTransactions(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Nil(t, txs)
}

func TestLoadTransactions_MissingColumn(t *testing.T) {
	path := writeFixture(t, TransactionsFile,
		"Date,Category,Merchant,Account\n2025-01-15,Groceries,market,checking\n")

	_, err := LoadTransactions(path)
	require.Error(t, err)
	assert.True(t, domain.IsStructural(err))
	assert.Contains(t, err.Error(), "Amount")
}

func TestLoadTransactions_UnparsableAmount(t *testing.T) {
	path := writeFixture(t, TransactionsFile,
		"Date,Amount,Category,Merchant,Account\n"+
			"2025-01-15,forty,Groceries,market,checking\n")

	_, err := LoadTransactions(path)
	require.Error(t, err)
	assert.True(t, domain.IsStructural(err))
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadNetWorth_NormalizesLiabilitySigns(t *testing.T) {
	path := writeFixture(t, NetWorthFile,
		"Month,Account,Account Type,Category,Amount\n"+
			"2025-01,home,Asset,Real Estate,300000\n"+
			"2025-01,mortgage,Liability,Real Estate,210000\n"+
			"2025-01,card,Liability,Credit,-500\n")

	snaps, err := LoadNetWorth(path)
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	assert.Equal(t, 300000.0, snaps[0].Amount)
	// Positive liability magnitudes flip negative; already-negative ones stay.
	assert.Equal(t, -210000.0, snaps[1].Amount)
	assert.Equal(t, -500.0, snaps[2].Amount)

	// Month column normalizes to the first of the month.
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), snaps[0].Month)
}

func TestLoadBudgets(t *testing.T) {
	t.Run("parses categories", func(t *testing.T) {
		path := writeFixture(t, BudgetsFile,
			"Category,Monthly Budget\nGroceries,400\nDining,\"$150.00\"\n")

		budgets, err := LoadBudgets(path)
		require.NoError(t, err)
		assert.Equal(t, domain.Budgets{"Groceries": 400, "Dining": 150}, budgets)
	})

	t.Run("negative budget is structural", func(t *testing.T) {
		path := writeFixture(t, BudgetsFile,
			"Category,Monthly Budget\nGroceries,-400\n")

		_, err := LoadBudgets(path)
		require.Error(t, err)
		assert.True(t, domain.IsStructural(err))
	})

	t.Run("blank category rows skipped", func(t *testing.T) {
		path := writeFixture(t, BudgetsFile,
			"Category,Monthly Budget\nGroceries,400\n,100\n")

		budgets, err := LoadBudgets(path)
		require.NoError(t, err)
		assert.Len(t, budgets, 1)
	})
}

func TestLoadPortfolio(t *testing.T) {
	path := writeFixture(t, PortfolioFile,
		"Date,Ticker,Brokerage,Account Name,Investment Type,Quantity,Last Close,Current Value,Cost Basis,Total Gain/Loss,Total Gain/Loss %\n"+
			"2025-03-03,VTI,Broker,Taxable,ETF,10,250.00,\"2,500.00\",2000.00,500.00,25.0%\n")

	snaps, err := LoadPortfolio(path)
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	s := snaps[0]
	assert.Equal(t, "VTI", s.Ticker)
	assert.Equal(t, 10.0, s.Quantity)
	assert.Equal(t, 250.0, s.LastClose)
	assert.Equal(t, 2500.0, s.CurrentValue)
	assert.Equal(t, 2000.0, s.CostBasis)
	assert.Equal(t, 500.0, s.TotalGainLoss)
	assert.Equal(t, 25.0, s.TotalGainLossPct)
}

func TestLoadPortfolio_ParenthesizedNegatives(t *testing.T) {
	path := writeFixture(t, PortfolioFile,
		"Date,Ticker,Quantity,Last Close,Current Value,Cost Basis,Total Gain/Loss\n"+
			"2025-03-03,BND,20,70.00,1400.00,1500.00,(100.00)\n")

	snaps, err := LoadPortfolio(path)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, -100.0, snaps[0].TotalGainLoss)
}
