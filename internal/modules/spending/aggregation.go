package spending

import (
	"math"
	"sort"
	"time"

	"github.com/findash/findash/internal/domain"
)

// Days of week in display order.
var daysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// groupTotals sums signed amounts per key, applies the absolute value after
// summation (so refunds net against purchases within a group), and sorts
// descending by amount. Ties keep first-encountered order.
func groupTotals(txs []domain.Transaction, keyFn func(domain.Transaction) string) []GroupTotal {
	sums := make(map[string]float64)
	var order []string

	for _, t := range txs {
		key := keyFn(t)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += t.Amount
	}

	totals := make([]GroupTotal, 0, len(order))
	for _, key := range order {
		totals = append(totals, GroupTotal{Key: key, Amount: math.Abs(sums[key])})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})

	return totals
}

// TotalsByCategory aggregates spending per category, largest first.
// Empty input yields an empty result, not an error.
func TotalsByCategory(txs []domain.Transaction) []GroupTotal {
	return groupTotals(txs, func(t domain.Transaction) string { return t.Category })
}

// TotalsByAccount aggregates spending per account, largest first.
func TotalsByAccount(txs []domain.Transaction) []GroupTotal {
	return groupTotals(txs, func(t domain.Transaction) string { return t.Account })
}

// TotalsByMerchant aggregates spending per merchant, largest first.
func TotalsByMerchant(txs []domain.Transaction) []GroupTotal {
	return groupTotals(txs, func(t domain.Transaction) string { return t.Merchant })
}

// TopMerchants returns the top n merchants by spending.
func TopMerchants(txs []domain.Transaction, n int) []GroupTotal {
	totals := TotalsByMerchant(txs)
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// TotalsByDayOfWeek aggregates spending per weekday, reindexed to a fixed
// Monday-through-Sunday order. Weekdays with no transactions yield 0, so the
// result always has exactly 7 entries.
func TotalsByDayOfWeek(txs []domain.Transaction) []GroupTotal {
	sums := make(map[string]float64, 7)
	for _, t := range txs {
		sums[t.Date.Weekday().String()] += t.Amount
	}

	totals := make([]GroupTotal, 0, 7)
	for _, day := range daysOfWeek {
		totals = append(totals, GroupTotal{Key: day, Amount: math.Abs(sums[day])})
	}
	return totals
}

// TotalsByMonth aggregates spending per calendar month (year+month buckets,
// not rolling windows), in chronological order.
func TotalsByMonth(txs []domain.Transaction) []MonthTotal {
	sums := make(map[time.Time]float64)
	for _, t := range txs {
		sums[domain.MonthStart(t.Date)] += t.Amount
	}

	totals := make([]MonthTotal, 0, len(sums))
	for month, sum := range sums {
		totals = append(totals, MonthTotal{Month: month, Amount: math.Abs(sum)})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month.Before(totals[j].Month)
	})

	return totals
}

// TrendsByCategory aggregates spending per (month, category), chronological,
// categories alphabetical within a month.
func TrendsByCategory(txs []domain.Transaction) []CategoryMonthTotal {
	type cell struct {
		month    time.Time
		category string
	}

	sums := make(map[cell]float64)
	for _, t := range txs {
		sums[cell{domain.MonthStart(t.Date), t.Category}] += t.Amount
	}

	trends := make([]CategoryMonthTotal, 0, len(sums))
	for c, sum := range sums {
		trends = append(trends, CategoryMonthTotal{
			Month:    c.month,
			Category: c.category,
			Amount:   math.Abs(sum),
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if !trends[i].Month.Equal(trends[j].Month) {
			return trends[i].Month.Before(trends[j].Month)
		}
		return trends[i].Category < trends[j].Category
	})

	return trends
}
