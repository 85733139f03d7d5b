package networth

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
)

// DataSource provides the loaded net worth snapshots (sign-normalized).
type DataSource interface {
	NetWorthSnapshots() []domain.NetWorthSnapshot
}

// Service orchestrates the net worth period metrics over the loaded data.
type Service struct {
	data DataSource
	log  zerolog.Logger
}

// NewService creates a new networth service.
func NewService(data DataSource, log zerolog.Logger) *Service {
	return &Service{
		data: data,
		log:  log.With().Str("service", "networth").Logger(),
	}
}

func (s *Service) snapshotsInRange(start, end time.Time) []domain.NetWorthSnapshot {
	return domain.FilterSnapshotsByMonth(s.data.NetWorthSnapshots(), start, end)
}

// Series returns the per-month net worth series for the range, resampled to
// the given interval.
func (s *Service) Series(start, end time.Time, interval int) []PeriodValue {
	series := SeriesFromSnapshots(s.snapshotsInRange(start, end))
	return Resample(series, interval)
}

// Stats returns period metrics plus the rolling average and milestone
// crossings for the monthly series in range.
func (s *Service) Stats(start, end time.Time) (Stats, []float64, []MilestoneCrossing, error) {
	series := SeriesFromSnapshots(s.snapshotsInRange(start, end))

	stats, err := ComputeStats(series)
	if err != nil {
		return Stats{}, nil, nil, err
	}

	return stats, RollingAverage(series, 3), Milestones(series, DefaultMilestones), nil
}

// Metrics returns the balance-sheet metrics for the latest month in range,
// compared against the month before it.
func (s *Service) Metrics(start, end time.Time) (SnapshotMetrics, error) {
	snaps := s.snapshotsInRange(start, end)
	if len(snaps) == 0 {
		return SnapshotMetrics{}, domain.ErrInsufficientData
	}

	months := distinctMonths(snaps)
	latestMonth := months[len(months)-1]
	var previousMonth time.Time
	if len(months) >= 2 {
		previousMonth = months[len(months)-2]
	}

	var latest, previous []domain.NetWorthSnapshot
	for _, snap := range snaps {
		month := domain.MonthStart(snap.Month)
		switch {
		case month.Equal(latestMonth):
			latest = append(latest, snap)
		case !previousMonth.IsZero() && month.Equal(previousMonth):
			previous = append(previous, snap)
		}
	}

	return ComputeSnapshotMetrics(latest, previous), nil
}

// Accounts returns per-account movement info for every account in range.
func (s *Service) Accounts(start, end time.Time) []AccountInfo {
	snaps := s.snapshotsInRange(start, end)

	seen := make(map[string]struct{})
	var accounts []string
	for _, snap := range snaps {
		if _, ok := seen[snap.Account]; !ok {
			seen[snap.Account] = struct{}{}
			accounts = append(accounts, snap.Account)
		}
	}
	sort.Strings(accounts)

	return ComputeAccountInfo(snaps, accounts)
}

// PivotTable returns the account-type (x category) by period table.
func (s *Service) PivotTable(start, end time.Time, byCategory bool, interval int) Pivot {
	return BuildPivot(s.snapshotsInRange(start, end), byCategory, interval)
}

func distinctMonths(snaps []domain.NetWorthSnapshot) []time.Time {
	set := make(map[time.Time]struct{})
	for _, snap := range snaps {
		set[domain.MonthStart(snap.Month)] = struct{}{}
	}
	months := make([]time.Time, 0, len(set))
	for m := range set {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}
