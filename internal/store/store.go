// Package store holds the loaded datasets in memory behind a read/write
// lock. Services read consistent copies; the reload job swaps all four
// datasets atomically so a request never observes a half-loaded state.
package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
	"github.com/findash/findash/internal/loader"
)

// Stats summarizes what is currently loaded, for the system status endpoint.
type Stats struct {
	Transactions       int       `json:"transactions"`
	NetWorthSnapshots  int       `json:"networth_snapshots"`
	BudgetCategories   int       `json:"budget_categories"`
	PortfolioSnapshots int       `json:"portfolio_snapshots"`
	LoadedAt           time.Time `json:"loaded_at"`
}

// Store is the in-memory dataset registry. It satisfies the DataSource
// interfaces of every calculation module.
type Store struct {
	dataDir string
	log     zerolog.Logger

	mu           sync.RWMutex
	transactions []domain.Transaction
	networth     []domain.NetWorthSnapshot
	budgets      domain.Budgets
	portfolio    []domain.PortfolioSnapshot
	loadedAt     time.Time
}

func New(dataDir string, log zerolog.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		log:     log.With().Str("component", "store").Logger(),
	}
}

// Reload re-reads every dataset from the data directory. Structural errors
// abort the reload and leave the previously loaded data in place.
func (s *Store) Reload() error {
	start := time.Now()

	txs, err := loader.LoadTransactions(filepath.Join(s.dataDir, loader.TransactionsFile))
	if err != nil {
		return err
	}
	networth, err := loader.LoadNetWorth(filepath.Join(s.dataDir, loader.NetWorthFile))
	if err != nil {
		return err
	}
	budgets, err := loader.LoadBudgets(filepath.Join(s.dataDir, loader.BudgetsFile))
	if err != nil {
		return err
	}
	portfolio, err := loader.LoadPortfolio(filepath.Join(s.dataDir, loader.PortfolioFile))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.transactions = txs
	s.networth = networth
	s.budgets = budgets
	s.portfolio = portfolio
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.log.Info().
		Int("transactions", len(txs)).
		Int("networth_snapshots", len(networth)).
		Int("budget_categories", len(budgets)).
		Int("portfolio_snapshots", len(portfolio)).
		Dur("elapsed", time.Since(start)).
		Msg("Datasets loaded")

	return nil
}

// Transactions returns a copy of the expense transactions.
func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Budgets returns a copy of the per-category budgets.
func (s *Store) Budgets() domain.Budgets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.Budgets, len(s.budgets))
	for k, v := range s.budgets {
		out[k] = v
	}
	return out
}

// NetWorthSnapshots returns a copy of the net worth history.
func (s *Store) NetWorthSnapshots() []domain.NetWorthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.NetWorthSnapshot, len(s.networth))
	copy(out, s.networth)
	return out
}

// PortfolioSnapshots returns a copy of the portfolio valuation history.
func (s *Store) PortfolioSnapshots() []domain.PortfolioSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PortfolioSnapshot, len(s.portfolio))
	copy(out, s.portfolio)
	return out
}

// Stats reports dataset sizes and the last successful load time.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Transactions:       len(s.transactions),
		NetWorthSnapshots:  len(s.networth),
		BudgetCategories:   len(s.budgets),
		PortfolioSnapshots: len(s.portfolio),
		LoadedAt:           s.loadedAt,
	}
}
