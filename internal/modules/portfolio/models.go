package portfolio

import "time"

// DailyTotal is the summed portfolio value on one date.
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SymbolRisk holds per-symbol risk metrics. Symbols with fewer than 2
// valuation points are excluded from results, not zero-filled.
type SymbolRisk struct {
	Ticker                  string  `json:"ticker"`
	VolatilityPct           float64 `json:"volatility_pct"`
	AnnualizedVolatilityPct float64 `json:"annualized_volatility_pct"`
	MaxDrawdownPct          float64 `json:"max_drawdown_pct"` // <= 0
	DownsideDeviationPct    float64 `json:"downside_deviation_pct"`
	Beta                    float64 `json:"beta"`
}

// PortfolioRisk holds portfolio-level risk metrics over the aggregated daily
// valuation.
type PortfolioRisk struct {
	VolatilityPct           float64   `json:"volatility_pct"`
	AnnualizedVolatilityPct float64   `json:"annualized_volatility_pct"`
	MaxDrawdownPct          float64   `json:"max_drawdown_pct"`
	AvgDrawdownPct          float64   `json:"avg_drawdown_pct"`
	VaR95Pct                float64   `json:"var_95_pct"` // 5th percentile of daily returns
	DrawdownSeries          []float64 `json:"drawdown_series,omitempty"`
}

// SymbolPerformance holds per-symbol start/end performance over the range.
type SymbolPerformance struct {
	Ticker         string  `json:"ticker"`
	StartPrice     float64 `json:"start_price"`
	EndPrice       float64 `json:"end_price"`
	PriceReturnPct float64 `json:"price_return_pct"`
	ValueReturnPct float64 `json:"value_return_pct"`
	TotalReturnPct float64 `json:"total_return_pct"` // vs cost basis
	VolatilityPct  float64 `json:"volatility_pct"`
}

// SymbolStats holds per-symbol daily return statistics.
type SymbolStats struct {
	Ticker            string  `json:"ticker"`
	AvgDailyReturnPct float64 `json:"avg_daily_return_pct"`
	StdDevPct         float64 `json:"std_dev_pct"`
	MinReturnPct      float64 `json:"min_return_pct"`
	MaxReturnPct      float64 `json:"max_return_pct"`
	SharpeRatio       float64 `json:"sharpe_ratio"` // mean/std, zero risk-free
}

// NormalizedSeries is one line of the performance comparison chart, scaled to
// 100 at the series start.
type NormalizedSeries struct {
	Label  string       `json:"label"`
	Points []DailyTotal `json:"points"`
}

// CorrelationMatrix is the pairwise Pearson correlation of daily returns.
// Matrix[i][j] correlates Tickers[i] with Tickers[j].
type CorrelationMatrix struct {
	Tickers []string    `json:"tickers"`
	Matrix  [][]float64 `json:"matrix"`
}
