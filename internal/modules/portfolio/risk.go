package portfolio

import (
	"sort"
	"time"

	"github.com/findash/findash/internal/domain"
	"github.com/findash/findash/pkg/formulas"
)

// DailyTotals sums CurrentValue across all tickers per date, chronological.
func DailyTotals(snaps []domain.PortfolioSnapshot) []DailyTotal {
	sums := make(map[time.Time]float64)
	for _, s := range snaps {
		sums[s.Date] = sums[s.Date] + s.CurrentValue
	}

	totals := make([]DailyTotal, 0, len(sums))
	for date, value := range sums {
		totals = append(totals, DailyTotal{Date: date, Value: value})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})

	return totals
}

// closeSeries returns the chronological (date, last close) points for one
// ticker. Multiple rows for the same ticker and date collapse to the last.
func closeSeries(snaps []domain.PortfolioSnapshot, ticker string) []DailyTotal {
	byDate := make(map[time.Time]float64)
	for _, s := range snaps {
		if s.Ticker == ticker {
			byDate[s.Date] = s.LastClose
		}
	}

	series := make([]DailyTotal, 0, len(byDate))
	for date, price := range byDate {
		series = append(series, DailyTotal{Date: date, Value: price})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// Tickers lists the distinct tickers present, sorted.
func Tickers(snaps []domain.PortfolioSnapshot) []string {
	set := make(map[string]struct{})
	for _, s := range snaps {
		set[s.Ticker] = struct{}{}
	}
	tickers := make([]string, 0, len(set))
	for t := range set {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// OwnedTickers returns the tickers currently owned at the given date: those
// whose most recent snapshot on or before the date has a positive quantity.
func OwnedTickers(snaps []domain.PortfolioSnapshot, at time.Time) []string {
	latest := make(map[string]domain.PortfolioSnapshot)
	for _, s := range snaps {
		if s.Date.After(at) {
			continue
		}
		if prev, ok := latest[s.Ticker]; !ok || s.Date.After(prev.Date) {
			latest[s.Ticker] = s
		}
	}

	var owned []string
	for ticker, s := range latest {
		if s.Quantity > 0 {
			owned = append(owned, ticker)
		}
	}
	sort.Strings(owned)
	return owned
}

// ComputePortfolioRisk derives portfolio-level risk metrics from the
// aggregated daily valuation. Fewer than 2 valuation dates is insufficient.
func ComputePortfolioRisk(snaps []domain.PortfolioSnapshot) (PortfolioRisk, error) {
	totals := DailyTotals(snaps)
	if len(totals) < 2 {
		return PortfolioRisk{}, domain.ErrInsufficientData
	}

	values := make([]float64, len(totals))
	for i, t := range totals {
		values[i] = t.Value
	}

	returns := formulas.Returns(values)
	volatility := formulas.StdDev(returns) * 100

	maxDD := 0.0
	if dd := formulas.MaxDrawdown(values); dd != nil {
		maxDD = *dd
	}

	return PortfolioRisk{
		VolatilityPct:           volatility,
		AnnualizedVolatilityPct: volatility * annualizationFactor,
		MaxDrawdownPct:          maxDD,
		AvgDrawdownPct:          formulas.AvgDrawdown(values),
		VaR95Pct:                formulas.Percentile(returns, 5) * 100,
		DrawdownSeries:          formulas.DrawdownSeries(values),
	}, nil
}

// ComputeSymbolRisk derives one symbol's risk metrics, with beta measured
// against the aggregated portfolio daily returns. Returns nil for symbols
// with fewer than 2 valuation points.
func ComputeSymbolRisk(snaps []domain.PortfolioSnapshot, ticker string) *SymbolRisk {
	series := closeSeries(snaps, ticker)
	if len(series) < 2 {
		return nil
	}

	prices := make([]float64, len(series))
	for i, p := range series {
		prices[i] = p.Value
	}

	returns := formulas.Returns(prices)
	volatility := formulas.StdDev(returns) * 100

	maxDD := 0.0
	if dd := formulas.MaxDrawdown(prices); dd != nil {
		maxDD = *dd
	}

	symbolReturns, portfolioReturns := alignedReturns(series, DailyTotals(snaps))

	return &SymbolRisk{
		Ticker:                  ticker,
		VolatilityPct:           volatility,
		AnnualizedVolatilityPct: volatility * annualizationFactor,
		MaxDrawdownPct:          maxDD,
		DownsideDeviationPct:    formulas.DownsideDeviation(returns) * 100,
		Beta:                    formulas.Beta(symbolReturns, portfolioReturns),
	}
}

// alignedReturns pairs the symbol's and the portfolio's daily returns on the
// dates where both exist, preserving chronological order. Beta needs aligned
// observations; unaligned dates are dropped, not zero-filled.
func alignedReturns(symbol, portfolio []DailyTotal) (symbolReturns, portfolioReturns []float64) {
	symbolByDate := returnsByDate(symbol)
	portfolioByDate := returnsByDate(portfolio)

	var dates []time.Time
	for date := range symbolByDate {
		if _, ok := portfolioByDate[date]; ok {
			dates = append(dates, date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	for _, date := range dates {
		symbolReturns = append(symbolReturns, symbolByDate[date])
		portfolioReturns = append(portfolioReturns, portfolioByDate[date])
	}
	return symbolReturns, portfolioReturns
}

// returnsByDate maps each date (after the first) to the percent change from
// the prior point in the series.
func returnsByDate(series []DailyTotal) map[time.Time]float64 {
	out := make(map[time.Time]float64, len(series))
	for i := 1; i < len(series); i++ {
		if series[i-1].Value != 0 {
			out[series[i].Date] = (series[i].Value - series[i-1].Value) / series[i-1].Value
		}
	}
	return out
}
