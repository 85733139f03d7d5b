package networth

import (
	"math"
	"sort"
	"time"

	"github.com/findash/findash/internal/domain"
)

const periodLabelFormat = "Jan 2006"

// SeriesFromSnapshots builds the per-month net worth series by summing all
// account amounts for each month. Sign convention is fixed at ingestion
// (liabilities negative); this function never re-negates.
func SeriesFromSnapshots(snaps []domain.NetWorthSnapshot) []PeriodValue {
	sums := make(map[time.Time]float64)
	for _, s := range snaps {
		sums[domain.MonthStart(s.Month)] += s.Amount
	}

	series := make([]PeriodValue, 0, len(sums))
	for month, sum := range sums {
		series = append(series, PeriodValue{
			Period: month,
			Label:  month.Format(periodLabelFormat),
			Value:  sum,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Period.Before(series[j].Period)
	})

	return series
}

// ComputeStats derives period-over-period metrics from a chronological
// series. Fewer than 2 periods is reported as insufficient data; no partial
// metrics are fabricated.
func ComputeStats(series []PeriodValue) (Stats, error) {
	if len(series) < 2 {
		return Stats{}, domain.ErrInsufficientData
	}

	latest := series[len(series)-1].Value
	previous := series[len(series)-2].Value
	first := series[0].Value

	change := latest - previous
	changePct := 0.0
	if previous != 0 {
		changePct = change / math.Abs(previous) * 100
	}

	totalChange := latest - first
	totalPct := 0.0
	if first != 0 {
		totalPct = totalChange / math.Abs(first) * 100
	}

	momentum := MomentumNotAvailable
	if len(series) >= 3 {
		priorChange := previous - series[len(series)-3].Value
		velocity := change - priorChange
		switch {
		case velocity > 0:
			momentum = MomentumAccelerating
		case velocity < 0:
			momentum = MomentumDecelerating
		default:
			momentum = MomentumSteady
		}
	}

	bestIdx, worstIdx := 0, 0
	for i, pv := range series {
		if pv.Value > series[bestIdx].Value {
			bestIdx = i
		}
		if pv.Value < series[worstIdx].Value {
			worstIdx = i
		}
	}

	return Stats{
		Periods:          len(series),
		Latest:           latest,
		Change:           change,
		ChangePct:        changePct,
		TotalChange:      totalChange,
		TotalChangePct:   totalPct,
		AvgMonthlyGrowth: totalChange / float64(len(series)),
		Momentum:         momentum,
		BestIndex:        bestIdx,
		WorstIndex:       worstIdx,
	}, nil
}

// RollingAverage computes a simple moving average with the given window and
// min-periods-of-1 semantics: the first window-1 points average over the
// partial window available so far.
func RollingAverage(series []PeriodValue, window int) []float64 {
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(series))
	for i := range series {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		var sum float64
		for j := lo; j <= i; j++ {
			sum += series[j].Value
		}
		out[i] = sum / float64(i-lo+1)
	}
	return out
}

// Milestones finds, for each milestone in the ascending ladder, the first
// period where the series value reached it. A milestone is only flagged when
// it lies strictly between the series' min and max, so milestones achieved
// before the tracked window or never reached are skipped.
func Milestones(series []PeriodValue, ladder []float64) []MilestoneCrossing {
	if len(series) == 0 {
		return nil
	}

	minV, maxV := series[0].Value, series[0].Value
	for _, pv := range series[1:] {
		if pv.Value < minV {
			minV = pv.Value
		}
		if pv.Value > maxV {
			maxV = pv.Value
		}
	}

	var crossings []MilestoneCrossing
	for _, milestone := range ladder {
		if !(minV < milestone && milestone < maxV) {
			continue
		}
		for i, pv := range series {
			if pv.Value >= milestone {
				crossings = append(crossings, MilestoneCrossing{
					Milestone: milestone,
					Index:     i,
					Period:    pv.Period,
					Value:     pv.Value,
				})
				break
			}
		}
	}

	return crossings
}

// Resample selects periods at a fixed stride counting backward from the most
// recent period, always including the earliest period as an anchor even when
// it falls off the regular stride. Interval 1 returns the series unchanged.
func Resample(series []PeriodValue, interval int) []PeriodValue {
	if interval <= 1 || len(series) == 0 {
		return series
	}

	indices := resampleIndices(len(series), interval)
	out := make([]PeriodValue, 0, len(indices))
	for _, i := range indices {
		out = append(out, series[i])
	}
	return out
}

// resampleIndices walks backward from the last index at the given stride,
// reverses into chronological order, and prepends index 0 when the stride
// did not land on it.
func resampleIndices(n, interval int) []int {
	var backward []int
	for i := n - 1; i >= 0; i -= interval {
		backward = append(backward, i)
	}

	indices := make([]int, 0, len(backward)+1)
	for i := len(backward) - 1; i >= 0; i-- {
		indices = append(indices, backward[i])
	}

	if len(indices) > 0 && indices[0] > 0 {
		indices = append([]int{0}, indices...)
	}
	return indices
}

// ComputeSnapshotMetrics derives the balance-sheet metrics for the latest
// month, with changes against the previous month when provided. Liabilities
// arrive negative (post-normalization) and are reported as positive
// magnitudes.
func ComputeSnapshotMetrics(latest, previous []domain.NetWorthSnapshot) SnapshotMetrics {
	assets, liabilitiesRaw := splitByType(latest)
	liabilities := math.Abs(liabilitiesRaw)
	netWorth := assets + liabilitiesRaw

	debtRatio := 0.0
	if denom := netWorth + liabilities; denom > 0 {
		debtRatio = liabilities / denom * 100
	}

	m := SnapshotMetrics{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    netWorth,
		DebtRatio:   debtRatio,
	}

	if len(previous) > 0 {
		prevAssets, prevLiabRaw := splitByType(previous)
		prevLiabilities := math.Abs(prevLiabRaw)
		prevNetWorth := prevAssets + prevLiabRaw

		m.NetWorthChange = netWorth - prevNetWorth
		if prevNetWorth != 0 {
			m.NetWorthChangePct = m.NetWorthChange / prevNetWorth * 100
		}

		m.LiabilityChange = liabilities - prevLiabilities
		if prevLiabilities != 0 {
			m.LiabilityChangePct = m.LiabilityChange / prevLiabilities * 100
		}
	}

	return m
}

func splitByType(snaps []domain.NetWorthSnapshot) (assets, liabilities float64) {
	for _, s := range snaps {
		if s.AccountType == domain.AccountTypeLiability {
			liabilities += s.Amount
		} else {
			assets += s.Amount
		}
	}
	return assets, liabilities
}

// ComputeAccountInfo derives each account's latest value, change from the
// prior month, and trend direction. Accounts with no rows are skipped.
func ComputeAccountInfo(snaps []domain.NetWorthSnapshot, accounts []string) []AccountInfo {
	byAccount := make(map[string][]domain.NetWorthSnapshot)
	for _, s := range snaps {
		byAccount[s.Account] = append(byAccount[s.Account], s)
	}

	var infos []AccountInfo
	for _, account := range accounts {
		rows := byAccount[account]
		if len(rows) == 0 {
			continue
		}

		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Month.Before(rows[j].Month)
		})

		latest := rows[len(rows)-1]
		change := 0.0
		if len(rows) >= 2 {
			change = latest.Amount - rows[len(rows)-2].Amount
		}

		trend := TrendFlat
		switch {
		case change > 0:
			trend = TrendUp
		case change < 0:
			trend = TrendDown
		}

		infos = append(infos, AccountInfo{
			Account:     account,
			AccountType: latest.AccountType,
			Value:       latest.Amount,
			Change:      change,
			Trend:       trend,
		})
	}

	return infos
}
