package formulas

// SharpeRatio calculates a simplified Sharpe ratio with a zero risk-free
// rate: mean periodic return divided by the standard deviation of returns.
// Returns 0 when the standard deviation is 0.
func SharpeRatio(returns []float64) float64 {
	stdDev := StdDev(returns)
	if stdDev == 0 {
		return 0
	}
	return Mean(returns) / stdDev
}

// DownsideDeviation calculates the standard deviation of the strictly
// negative returns only. Returns 0 when there are no negative returns.
func DownsideDeviation(returns []float64) float64 {
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	return StdDev(downside)
}
