package formulas

// DrawdownSeries computes the drawdown series for a value series.
// Values are normalized to 1.0 at the series start, then each point is
// expressed as the percentage decline from the running maximum:
//
//	drawdown[i] = (cumulative[i] - runningMax[i]) / runningMax[i] * 100
//
// Every element is <= 0, and exactly 0 at a new running peak.
func DrawdownSeries(values []float64) []float64 {
	if len(values) == 0 || values[0] == 0 {
		return []float64{}
	}

	drawdowns := make([]float64, len(values))
	runningMax := values[0] / values[0] // 1.0
	for i, v := range values {
		cumulative := v / values[0]
		if cumulative > runningMax {
			runningMax = cumulative
		}
		drawdowns[i] = (cumulative - runningMax) / runningMax * 100
	}

	return drawdowns
}

// MaxDrawdown returns the largest peak-to-trough decline of a value series as
// a percentage (negative or zero), or nil with fewer than 2 points.
func MaxDrawdown(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}

	series := DrawdownSeries(values)
	if len(series) == 0 {
		return nil
	}

	maxDD := 0.0
	for _, dd := range series {
		if dd < maxDD {
			maxDD = dd
		}
	}

	return &maxDD
}

// AvgDrawdown returns the mean of the strictly negative drawdown points, or 0
// when the series never declined from a peak.
func AvgDrawdown(values []float64) float64 {
	series := DrawdownSeries(values)

	var sum float64
	var n int
	for _, dd := range series {
		if dd < 0 {
			sum += dd
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
