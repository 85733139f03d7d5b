package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/domain"
	"github.com/findash/findash/internal/loader"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func seedDataDir(t *testing.T) string {
	dir := t.TempDir()
	writeDataset(t, dir, loader.TransactionsFile,
		"Date,Amount,Category,Merchant,Account\n"+
			"2025-01-15,-42.50,Groceries,market,checking\n")
	writeDataset(t, dir, loader.NetWorthFile,
		"Month,Account,Account Type,Category,Amount\n"+
			"2025-01,mortgage,Liability,Real Estate,210000\n")
	writeDataset(t, dir, loader.BudgetsFile,
		"Category,Monthly Budget\nGroceries,400\n")
	writeDataset(t, dir, loader.PortfolioFile,
		"Date,Ticker,Quantity,Last Close,Current Value,Cost Basis\n"+
			"2025-03-03,VTI,10,250.00,2500.00,2000.00\n")
	return dir
}

func TestStore_Reload(t *testing.T) {
	st := New(seedDataDir(t), zerolog.Nop())
	require.NoError(t, st.Reload())

	assert.Len(t, st.Transactions(), 1)
	assert.Len(t, st.NetWorthSnapshots(), 1)
	assert.Len(t, st.Budgets(), 1)
	assert.Len(t, st.PortfolioSnapshots(), 1)

	// Sign normalization happens at load time.
	assert.Equal(t, -210000.0, st.NetWorthSnapshots()[0].Amount)

	stats := st.Stats()
	assert.Equal(t, 1, stats.Transactions)
	assert.False(t, stats.LoadedAt.IsZero())
}

func TestStore_Reload_MissingFilesAreEmptyDatasets(t *testing.T) {
	st := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, st.Reload())

	assert.Empty(t, st.Transactions())
	assert.Empty(t, st.Budgets())
}

func TestStore_Reload_StructuralErrorKeepsPreviousData(t *testing.T) {
	dir := seedDataDir(t)
	st := New(dir, zerolog.Nop())
	require.NoError(t, st.Reload())
	require.Len(t, st.Transactions(), 1)

	// Corrupt one dataset and reload: the error propagates and the
	// previously loaded data stays.
	writeDataset(t, dir, loader.BudgetsFile, "Category,Monthly Budget\nGroceries,oops\n")

	err := st.Reload()
	require.Error(t, err)
	assert.True(t, domain.IsStructural(err))
	assert.Len(t, st.Transactions(), 1)
	assert.Equal(t, domain.Budgets{"Groceries": 400}, st.Budgets())
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	st := New(seedDataDir(t), zerolog.Nop())
	require.NoError(t, st.Reload())

	txs := st.Transactions()
	txs[0].Amount = 999

	assert.Equal(t, -42.50, st.Transactions()[0].Amount)

	budgets := st.Budgets()
	budgets["Groceries"] = 999
	assert.Equal(t, 400.0, st.Budgets()["Groceries"])
}
