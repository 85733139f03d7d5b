package spending

import (
	"fmt"
	"math"
	"sort"

	"github.com/findash/findash/internal/domain"
)

// Comparison matches spending aggregates against the per-category monthly
// budget table, scaled by the number of distinct months in the active range.
// One row per budget category; categories with spending but no budget entry
// are excluded here (they remain visible in the unconstrained aggregations).
func Comparison(txs []domain.Transaction, budgets domain.Budgets, numMonths int, thresholds Thresholds) ([]BudgetRow, error) {
	if numMonths < 1 {
		return nil, domain.NewStructuralError("budgets", fmt.Sprintf("numMonths must be at least 1, got %d", numMonths), nil)
	}
	if err := validateBudgets(budgets); err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]float64)
	for _, t := range txs {
		spentByCategory[t.Category] += t.Amount
	}

	categories := make([]string, 0, len(budgets))
	for category := range budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	rows := make([]BudgetRow, 0, len(categories))
	for _, category := range categories {
		scaled := budgets[category] * float64(numMonths)
		spent := math.Abs(spentByCategory[category])
		percentage := 0.0
		if scaled > 0 {
			percentage = spent / scaled * 100
		}

		rows = append(rows, BudgetRow{
			Category:   category,
			Budget:     scaled,
			Spent:      spent,
			Remaining:  scaled - spent,
			Percentage: percentage,
			Status:     thresholds.Status(percentage),
		})
	}

	return rows, nil
}

// Status classifies a budget-consumption percentage.
func (t Thresholds) Status(percentage float64) string {
	switch {
	case percentage > t.Danger:
		return StatusOverBudget
	case percentage > t.Warning:
		return StatusWarning
	default:
		return StatusOnTrack
	}
}

// Summarize computes headline statistics for an expense set against the full
// budget table over numMonths.
func Summarize(txs []domain.Transaction, budgets domain.Budgets, numMonths int) (Summary, error) {
	if numMonths < 1 {
		return Summary{}, domain.NewStructuralError("budgets", fmt.Sprintf("numMonths must be at least 1, got %d", numMonths), nil)
	}
	if err := validateBudgets(budgets); err != nil {
		return Summary{}, err
	}

	var signedTotal float64
	for _, t := range txs {
		signedTotal += t.Amount
	}
	totalSpent := math.Abs(signedTotal)

	var totalBudget float64
	for _, monthly := range budgets {
		totalBudget += monthly
	}
	totalBudget *= float64(numMonths)

	avg := 0.0
	if len(txs) > 0 {
		avg = totalSpent / float64(len(txs))
	}

	return Summary{
		TotalSpent:      totalSpent,
		TotalBudget:     totalBudget,
		Remaining:       totalBudget - totalSpent,
		NumTransactions: len(txs),
		AvgTransaction:  avg,
	}, nil
}

func validateBudgets(budgets domain.Budgets) error {
	for category, monthly := range budgets {
		if monthly < 0 {
			return domain.NewStructuralError("budgets", fmt.Sprintf("negative budget for category %q", category), nil)
		}
	}
	return nil
}
