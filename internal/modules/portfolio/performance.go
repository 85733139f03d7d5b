package portfolio

import (
	"math"
	"sort"
	"time"

	"github.com/findash/findash/internal/domain"
	"github.com/findash/findash/pkg/formulas"
)

// annualizationFactor scales daily volatility to annual, assuming ~252
// trading days per year.
var annualizationFactor = math.Sqrt(252)

// ComputeSymbolPerformance derives start/end performance for one symbol over
// the range. Returns nil for symbols with fewer than 2 valuation points.
func ComputeSymbolPerformance(snaps []domain.PortfolioSnapshot, ticker string) *SymbolPerformance {
	var rows []domain.PortfolioSnapshot
	for _, s := range snaps {
		if s.Ticker == ticker {
			rows = append(rows, s)
		}
	}
	if len(rows) < 2 {
		return nil
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	first, last := rows[0], rows[len(rows)-1]

	priceReturn := 0.0
	if first.LastClose > 0 {
		priceReturn = (last.LastClose - first.LastClose) / first.LastClose * 100
	}
	valueReturn := 0.0
	if first.CurrentValue > 0 {
		valueReturn = (last.CurrentValue - first.CurrentValue) / first.CurrentValue * 100
	}
	totalReturn := 0.0
	if last.CostBasis > 0 {
		totalReturn = (last.CurrentValue - last.CostBasis) / last.CostBasis * 100
	}

	prices := make([]float64, len(rows))
	for i, r := range rows {
		prices[i] = r.LastClose
	}

	return &SymbolPerformance{
		Ticker:         ticker,
		StartPrice:     first.LastClose,
		EndPrice:       last.LastClose,
		PriceReturnPct: priceReturn,
		ValueReturnPct: valueReturn,
		TotalReturnPct: totalReturn,
		VolatilityPct:  formulas.StdDev(formulas.Returns(prices)) * 100,
	}
}

// ComputeSymbolStats derives daily return statistics for one symbol.
// Returns nil with fewer than 2 valuation points.
func ComputeSymbolStats(snaps []domain.PortfolioSnapshot, ticker string) *SymbolStats {
	series := closeSeries(snaps, ticker)
	if len(series) < 2 {
		return nil
	}

	prices := make([]float64, len(series))
	for i, p := range series {
		prices[i] = p.Value
	}
	returns := formulas.Returns(prices)

	minReturn, maxReturn := returns[0], returns[0]
	for _, r := range returns[1:] {
		if r < minReturn {
			minReturn = r
		}
		if r > maxReturn {
			maxReturn = r
		}
	}

	return &SymbolStats{
		Ticker:            ticker,
		AvgDailyReturnPct: formulas.Mean(returns) * 100,
		StdDevPct:         formulas.StdDev(returns) * 100,
		MinReturnPct:      minReturn * 100,
		MaxReturnPct:      maxReturn * 100,
		SharpeRatio:       formulas.SharpeRatio(returns),
	}
}

// NormalizeSeries scales a chronological series to 100 at its start for
// relative performance comparison. Series shorter than 2 points, or starting
// at 0, normalize to nothing.
func NormalizeSeries(series []DailyTotal) []DailyTotal {
	if len(series) < 2 || series[0].Value == 0 {
		return nil
	}

	base := series[0].Value
	normalized := make([]DailyTotal, len(series))
	for i, p := range series {
		normalized[i] = DailyTotal{Date: p.Date, Value: p.Value / base * 100}
	}
	return normalized
}

// SmoothedTotals applies a simple moving average to the aggregated daily
// valuation for the chart overlay. Points without a full window are dropped.
func SmoothedTotals(snaps []domain.PortfolioSnapshot, window int) []DailyTotal {
	totals := DailyTotals(snaps)
	if len(totals) < window || window < 1 {
		return nil
	}

	values := make([]float64, len(totals))
	for i, t := range totals {
		values[i] = t.Value
	}

	sma := formulas.SMA(values, window)
	if sma == nil {
		return nil
	}

	smoothed := make([]DailyTotal, 0, len(totals)-window+1)
	for i := window - 1; i < len(totals); i++ {
		smoothed = append(smoothed, DailyTotal{Date: totals[i].Date, Value: sma[i]})
	}
	return smoothed
}

// spanDates returns the first and last valuation dates in the snapshots.
func spanDates(snaps []domain.PortfolioSnapshot) (start, end time.Time) {
	for _, s := range snaps {
		if start.IsZero() || s.Date.Before(start) {
			start = s.Date
		}
		if end.IsZero() || s.Date.After(end) {
			end = s.Date
		}
	}
	return start, end
}
