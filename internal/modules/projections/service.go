package projections

import (
	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
	"github.com/findash/findash/internal/modules/networth"
)

// Params are the inputs to a goal projection.
type Params struct {
	CurrentValue  float64 `json:"current_value"`
	GoalAmount    float64 `json:"goal_amount"`
	Contribution  float64 `json:"monthly_contribution"`
	AnnualRatePct float64 `json:"annual_return_pct"`
	Compounding   string  `json:"compounding"` // monthly or annually
}

// Result is the full projection outcome for one set of parameters.
type Result struct {
	Params             Params   `json:"params"`
	MonthsToGoal       *float64 `json:"months_to_goal"` // nil when unreachable
	TimeToGoal         string   `json:"time_to_goal"`
	TotalContributions float64  `json:"total_contributions"`
	TotalGrowth        float64  `json:"total_growth"`
	HistoricalMonths   *float64 `json:"historical_months,omitempty"` // at the historical avg growth rate
	Trace              []Point  `json:"trace"`
}

// DataSource provides the net worth history used to seed the projection's
// starting value and historical-growth comparison.
type DataSource interface {
	NetWorthSnapshots() []domain.NetWorthSnapshot
}

// Service runs goal projections, optionally seeded from the tracked net worth.
type Service struct {
	data DataSource
	log  zerolog.Logger
}

// NewService creates a new projections service.
func NewService(data DataSource, log zerolog.Logger) *Service {
	return &Service{
		data: data,
		log:  log.With().Str("service", "projections").Logger(),
	}
}

// Project computes the months-to-goal and trace for the given parameters.
func (s *Service) Project(p Params) Result {
	if p.Compounding == "" {
		p.Compounding = CompoundMonthly
	}

	months := MonthsToGoal(p.CurrentValue, p.GoalAmount, p.Contribution, p.AnnualRatePct, p.Compounding)

	result := Result{
		Params:       p,
		MonthsToGoal: months,
		TimeToGoal:   FormatTimeToGoal(months),
	}

	if months == nil {
		return result
	}

	result.TotalContributions = p.Contribution * *months
	if *months > 0 {
		result.TotalGrowth = p.GoalAmount - p.CurrentValue - result.TotalContributions
	}
	result.Trace = Trace(p.CurrentValue, p.GoalAmount, p.Contribution, p.AnnualRatePct, p.Compounding, int(*months))

	if hm := s.historicalMonths(p); hm != nil {
		result.HistoricalMonths = hm
	}

	return result
}

// CurrentNetWorth returns the latest tracked net worth, used to seed the
// projection when the caller does not supply a starting value.
func (s *Service) CurrentNetWorth() (float64, error) {
	series := networth.SeriesFromSnapshots(s.data.NetWorthSnapshots())
	if len(series) < 2 {
		return 0, domain.ErrInsufficientData
	}
	return series[len(series)-1].Value, nil
}

// historicalMonths estimates time-to-goal by extrapolating the historical
// average monthly growth, for comparison against the simulated strategy.
func (s *Service) historicalMonths(p Params) *float64 {
	series := networth.SeriesFromSnapshots(s.data.NetWorthSnapshots())
	if len(series) < 2 {
		return nil
	}

	totalChange := series[len(series)-1].Value - series[0].Value
	avgGrowth := totalChange / float64(len(series))
	if avgGrowth <= 0 {
		return nil
	}

	months := (p.GoalAmount - p.CurrentValue) / avgGrowth
	if months < 0 {
		months = 0
	}
	return &months
}
