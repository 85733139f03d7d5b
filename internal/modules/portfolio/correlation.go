package portfolio

import (
	"math"
	"sort"
	"time"

	"github.com/findash/findash/internal/domain"
	"github.com/findash/findash/pkg/formulas"
)

// ComputeCorrelationMatrix builds the pairwise Pearson correlation of daily
// returns across symbols. Prices are pivoted into a date x symbol table,
// differenced to returns per column, and dates where any symbol is missing a
// return are dropped before correlating. Tickers with fewer than 2 price
// points are excluded up front.
func ComputeCorrelationMatrix(snaps []domain.PortfolioSnapshot, tickers []string) (CorrelationMatrix, error) {
	var kept []string
	seriesByTicker := make(map[string][]DailyTotal)
	for _, ticker := range tickers {
		series := closeSeries(snaps, ticker)
		if len(series) < 2 {
			continue
		}
		kept = append(kept, ticker)
		seriesByTicker[ticker] = series
	}

	if len(kept) < 2 {
		return CorrelationMatrix{}, domain.ErrInsufficientData
	}

	// Pivot to date x symbol returns; NaN marks a missing return.
	dateSet := make(map[time.Time]struct{})
	returnsByTicker := make(map[string]map[time.Time]float64, len(kept))
	for _, ticker := range kept {
		returns := returnsByDate(seriesByTicker[ticker])
		returnsByTicker[ticker] = returns
		for date := range returns {
			dateSet[date] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// Keep only dates where every symbol has a return.
	columns := make(map[string][]float64, len(kept))
	for _, date := range dates {
		complete := true
		for _, ticker := range kept {
			if _, ok := returnsByTicker[ticker][date]; !ok {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for _, ticker := range kept {
			columns[ticker] = append(columns[ticker], returnsByTicker[ticker][date])
		}
	}

	if len(columns[kept[0]]) < 2 {
		return CorrelationMatrix{}, domain.ErrInsufficientData
	}

	matrix := make([][]float64, len(kept))
	for i := range kept {
		matrix[i] = make([]float64, len(kept))
		for j := range kept {
			if i == j {
				matrix[i][j] = 1.0
				continue
			}
			if j < i {
				matrix[i][j] = matrix[j][i]
				continue
			}
			corr := formulas.Correlation(columns[kept[i]], columns[kept[j]])
			if math.IsNaN(corr) {
				corr = 0
			}
			matrix[i][j] = corr
		}
	}

	return CorrelationMatrix{Tickers: kept, Matrix: matrix}, nil
}
