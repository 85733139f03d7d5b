package domain

import "time"

// FilterExpenses returns only spending transactions (everything that is not
// income). Refunds stay in: they net against purchases inside a group.
func FilterExpenses(txs []Transaction) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if t.IsExpense() {
			out = append(out, t)
		}
	}
	return out
}

// FilterTransactionsByDate keeps transactions with start <= Date <= end.
// Zero start or end means unbounded on that side.
func FilterTransactionsByDate(txs []Transaction, start, end time.Time) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if !start.IsZero() && t.Date.Before(start) {
			continue
		}
		if !end.IsZero() && t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterSnapshotsByMonth keeps snapshots with start <= Month <= end.
func FilterSnapshotsByMonth(snaps []NetWorthSnapshot, start, end time.Time) []NetWorthSnapshot {
	var out []NetWorthSnapshot
	for _, s := range snaps {
		if !start.IsZero() && s.Month.Before(start) {
			continue
		}
		if !end.IsZero() && s.Month.After(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterPortfolioByDate keeps portfolio snapshots with start <= Date <= end.
func FilterPortfolioByDate(snaps []PortfolioSnapshot, start, end time.Time) []PortfolioSnapshot {
	var out []PortfolioSnapshot
	for _, s := range snaps {
		if !start.IsZero() && s.Date.Before(start) {
			continue
		}
		if !end.IsZero() && s.Date.After(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// DistinctMonths counts the distinct calendar months present in the
// transactions, used to scale monthly budgets over a date range.
// Returns at least 1 so budget scaling never collapses to zero.
func DistinctMonths(txs []Transaction) int {
	months := make(map[string]struct{})
	for _, t := range txs {
		months[t.Date.Format("2006-01")] = struct{}{}
	}
	if len(months) < 1 {
		return 1
	}
	return len(months)
}

// MonthStart truncates a date to the first of its calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
