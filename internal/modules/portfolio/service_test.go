package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/clients/marketindex"
	"github.com/findash/findash/internal/domain"
)

type fakeData struct {
	snaps []domain.PortfolioSnapshot
}

func (f *fakeData) PortfolioSnapshots() []domain.PortfolioSnapshot {
	return f.snaps
}

type stubProvider struct {
	points []marketindex.PricePoint
	err    error
	calls  int
}

func (p *stubProvider) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]marketindex.PricePoint, error) {
	p.calls++
	return p.points, p.err
}

func comparisonFixture() []domain.PortfolioSnapshot {
	return []domain.PortfolioSnapshot{
		holding(tradingDay(0), "VTI", 10, 100, 1000),
		holding(tradingDay(1), "VTI", 10, 110, 1100),
		holding(tradingDay(2), "VTI", 10, 99, 990),
	}
}

func labels(series []NormalizedSeries) []string {
	out := make([]string, len(series))
	for i, s := range series {
		out[i] = s.Label
	}
	return out
}

func TestService_Comparison_WithIndexOverlay(t *testing.T) {
	provider := &stubProvider{
		points: []marketindex.PricePoint{
			{Date: tradingDay(0), Close: 5000},
			{Date: tradingDay(1), Close: 5100},
			{Date: tradingDay(2), Close: 5050},
		},
	}
	svc := NewService(&fakeData{snaps: comparisonFixture()}, provider, "^spx", zerolog.Nop())

	series := svc.Comparison(context.Background(), time.Time{}, time.Time{})

	assert.Equal(t, []string{"Portfolio", "VTI", "^spx"}, labels(series))
	assert.Equal(t, 1, provider.calls)

	// Every series starts at 100.
	for _, s := range series {
		require.NotEmpty(t, s.Points)
		assert.InDelta(t, 100.0, s.Points[0].Value, 1e-9)
	}
}

func TestService_Comparison_ProviderFailureDegrades(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	svc := NewService(&fakeData{snaps: comparisonFixture()}, provider, "^spx", zerolog.Nop())

	series := svc.Comparison(context.Background(), time.Time{}, time.Time{})

	// Portfolio and per-symbol series survive; only the overlay is missing.
	assert.Equal(t, []string{"Portfolio", "VTI"}, labels(series))
}

func TestService_Comparison_NilProvider(t *testing.T) {
	svc := NewService(&fakeData{snaps: comparisonFixture()}, nil, "^spx", zerolog.Nop())

	series := svc.Comparison(context.Background(), time.Time{}, time.Time{})
	assert.Equal(t, []string{"Portfolio", "VTI"}, labels(series))
}

func TestService_Risk_FiltersRange(t *testing.T) {
	snaps := append(comparisonFixture(),
		holding(tradingDay(30), "VTI", 10, 200, 2000))
	svc := NewService(&fakeData{snaps: snaps}, nil, "", zerolog.Nop())

	_, rows, err := svc.Risk(tradingDay(0), tradingDay(2))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "VTI", rows[0].Ticker)

	// With only the late snapshot in range there is one date, which is
	// insufficient.
	_, _, err = svc.Risk(tradingDay(10), tradingDay(40))
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestService_Daily_Smoothing(t *testing.T) {
	svc := NewService(&fakeData{snaps: comparisonFixture()}, nil, "", zerolog.Nop())

	totals, smoothed := svc.Daily(time.Time{}, time.Time{}, 2)
	require.Len(t, totals, 3)
	require.Len(t, smoothed, 2)
	assert.InDelta(t, 1050.0, smoothed[0].Value, 1e-6)

	_, none := svc.Daily(time.Time{}, time.Time{}, 1)
	assert.Nil(t, none)
}

func TestService_Owned_DefaultsToLatestDate(t *testing.T) {
	snaps := []domain.PortfolioSnapshot{
		holding(tradingDay(0), "VTI", 10, 100, 1000),
		holding(tradingDay(1), "SOLD", 0, 40, 0),
		holding(tradingDay(1), "VTI", 10, 105, 1050),
	}
	svc := NewService(&fakeData{snaps: snaps}, nil, "", zerolog.Nop())

	assert.Equal(t, []string{"VTI"}, svc.Owned(time.Time{}))
}
