package projections

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/domain"
)

type fakeData struct {
	snaps []domain.NetWorthSnapshot
}

func (f *fakeData) NetWorthSnapshots() []domain.NetWorthSnapshot {
	return f.snaps
}

func historyFixture(values ...float64) []domain.NetWorthSnapshot {
	snaps := make([]domain.NetWorthSnapshot, len(values))
	for i, v := range values {
		snaps[i] = domain.NetWorthSnapshot{
			Month:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			Account:     "brokerage",
			AccountType: domain.AccountTypeAsset,
			Amount:      v,
		}
	}
	return snaps
}

func TestService_Project(t *testing.T) {
	svc := NewService(&fakeData{}, zerolog.Nop())

	t.Run("reachable goal decomposes totals", func(t *testing.T) {
		result := svc.Project(Params{
			CurrentValue:  10000,
			GoalAmount:    20000,
			Contribution:  200,
			AnnualRatePct: 6,
		})

		require.NotNil(t, result.MonthsToGoal)
		assert.Equal(t, 200.0**result.MonthsToGoal, result.TotalContributions)
		assert.InDelta(t, 10000-result.TotalContributions, result.TotalGrowth, 1e-6)
		assert.NotEmpty(t, result.Trace)
		assert.NotEqual(t, "Goal unreachable", result.TimeToGoal)
	})

	t.Run("unreachable goal has no trace", func(t *testing.T) {
		result := svc.Project(Params{CurrentValue: 0, GoalAmount: 1000})

		assert.Nil(t, result.MonthsToGoal)
		assert.Equal(t, "Goal unreachable", result.TimeToGoal)
		assert.Empty(t, result.Trace)
		assert.Equal(t, 0.0, result.TotalContributions)
	})

	t.Run("achieved goal", func(t *testing.T) {
		result := svc.Project(Params{CurrentValue: 5000, GoalAmount: 5000})
		require.NotNil(t, result.MonthsToGoal)
		assert.Equal(t, 0.0, *result.MonthsToGoal)
		assert.Equal(t, "Goal achieved!", result.TimeToGoal)
	})

	t.Run("compounding defaults to monthly", func(t *testing.T) {
		result := svc.Project(Params{CurrentValue: 1000, GoalAmount: 2000, AnnualRatePct: 12})
		assert.Equal(t, CompoundMonthly, result.Params.Compounding)
	})
}

func TestService_Project_HistoricalComparison(t *testing.T) {
	t.Run("positive historical growth extrapolates", func(t *testing.T) {
		svc := NewService(&fakeData{snaps: historyFixture(10000, 11000, 12000)}, zerolog.Nop())

		result := svc.Project(Params{CurrentValue: 12000, GoalAmount: 14000, Contribution: 100})
		require.NotNil(t, result.HistoricalMonths)
		// Total change 2000 over 3 periods: avg growth 666.67/month.
		assert.InDelta(t, 3.0, *result.HistoricalMonths, 0.01)
	})

	t.Run("declining history omits the comparison", func(t *testing.T) {
		svc := NewService(&fakeData{snaps: historyFixture(12000, 11000, 10000)}, zerolog.Nop())

		result := svc.Project(Params{CurrentValue: 10000, GoalAmount: 14000, Contribution: 100})
		assert.Nil(t, result.HistoricalMonths)
	})

	t.Run("no history omits the comparison", func(t *testing.T) {
		svc := NewService(&fakeData{}, zerolog.Nop())
		result := svc.Project(Params{CurrentValue: 10000, GoalAmount: 14000, Contribution: 100})
		assert.Nil(t, result.HistoricalMonths)
	})
}

func TestService_CurrentNetWorth(t *testing.T) {
	t.Run("latest period value", func(t *testing.T) {
		svc := NewService(&fakeData{snaps: historyFixture(10000, 11000, 12500)}, zerolog.Nop())
		value, err := svc.CurrentNetWorth()
		require.NoError(t, err)
		assert.Equal(t, 12500.0, value)
	})

	t.Run("insufficient history", func(t *testing.T) {
		svc := NewService(&fakeData{snaps: historyFixture(10000)}, zerolog.Nop())
		_, err := svc.CurrentNetWorth()
		assert.ErrorIs(t, err, domain.ErrInsufficientData)
	})
}
