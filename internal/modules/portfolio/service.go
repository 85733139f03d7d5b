package portfolio

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/clients/marketindex"
	"github.com/findash/findash/internal/domain"
)

// DataSource provides the loaded portfolio history.
type DataSource interface {
	PortfolioSnapshots() []domain.PortfolioSnapshot
}

// Service orchestrates portfolio risk and performance calculations.
type Service struct {
	data        DataSource
	provider    marketindex.PriceSeriesProvider
	indexSymbol string
	log         zerolog.Logger
}

// NewService creates a new portfolio service. provider may be nil, in which
// case the comparison chart simply has no index overlay.
func NewService(data DataSource, provider marketindex.PriceSeriesProvider, indexSymbol string, log zerolog.Logger) *Service {
	return &Service{
		data:        data,
		provider:    provider,
		indexSymbol: indexSymbol,
		log:         log.With().Str("service", "portfolio").Logger(),
	}
}

func (s *Service) snapshotsInRange(start, end time.Time) []domain.PortfolioSnapshot {
	return domain.FilterPortfolioByDate(s.data.PortfolioSnapshots(), start, end)
}

// Risk computes portfolio-level risk plus per-symbol risk rows. Symbols with
// fewer than 2 valuation points are excluded from the rows.
func (s *Service) Risk(start, end time.Time) (PortfolioRisk, []SymbolRisk, error) {
	snaps := s.snapshotsInRange(start, end)

	portfolioRisk, err := ComputePortfolioRisk(snaps)
	if err != nil {
		return PortfolioRisk{}, nil, err
	}

	var rows []SymbolRisk
	for _, ticker := range Tickers(snaps) {
		if row := ComputeSymbolRisk(snaps, ticker); row != nil {
			rows = append(rows, *row)
		}
	}

	return portfolioRisk, rows, nil
}

// Performance computes per-symbol performance and daily return statistics.
func (s *Service) Performance(start, end time.Time) ([]SymbolPerformance, []SymbolStats) {
	snaps := s.snapshotsInRange(start, end)

	var performance []SymbolPerformance
	var stats []SymbolStats
	for _, ticker := range Tickers(snaps) {
		if p := ComputeSymbolPerformance(snaps, ticker); p != nil {
			performance = append(performance, *p)
		}
		if st := ComputeSymbolStats(snaps, ticker); st != nil {
			stats = append(stats, *st)
		}
	}

	return performance, stats
}

// Daily returns the aggregated daily valuation, optionally smoothed.
func (s *Service) Daily(start, end time.Time, smoothWindow int) ([]DailyTotal, []DailyTotal) {
	snaps := s.snapshotsInRange(start, end)
	totals := DailyTotals(snaps)

	var smoothed []DailyTotal
	if smoothWindow > 1 {
		smoothed = SmoothedTotals(snaps, smoothWindow)
	}
	return totals, smoothed
}

// Owned lists the tickers currently owned at the end of the range.
func (s *Service) Owned(at time.Time) []string {
	if at.IsZero() {
		_, at = spanDates(s.data.PortfolioSnapshots())
	}
	return OwnedTickers(s.data.PortfolioSnapshots(), at)
}

// Comparison builds normalized performance series for each symbol plus the
// portfolio aggregate, and attempts to overlay the reference market index.
// Index fetch failure degrades to omitting that one series.
func (s *Service) Comparison(ctx context.Context, start, end time.Time) []NormalizedSeries {
	snaps := s.snapshotsInRange(start, end)

	var series []NormalizedSeries
	if portfolio := NormalizeSeries(DailyTotals(snaps)); portfolio != nil {
		series = append(series, NormalizedSeries{Label: "Portfolio", Points: portfolio})
	}
	for _, ticker := range Tickers(snaps) {
		if normalized := NormalizeSeries(closeSeries(snaps, ticker)); normalized != nil {
			series = append(series, NormalizedSeries{Label: ticker, Points: normalized})
		}
	}

	if overlay := s.indexOverlay(ctx, snaps); overlay != nil {
		series = append(series, *overlay)
	}

	return series
}

// indexOverlay fetches and normalizes the reference index over the snapshot
// span. Any failure is logged and swallowed: the overlay is optional.
func (s *Service) indexOverlay(ctx context.Context, snaps []domain.PortfolioSnapshot) *NormalizedSeries {
	if s.provider == nil || s.indexSymbol == "" || len(snaps) == 0 {
		return nil
	}

	start, end := spanDates(snaps)
	points, err := s.provider.FetchDaily(ctx, s.indexSymbol, start, end)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("symbol", s.indexSymbol).
			Msg("Index overlay unavailable, continuing without it")
		return nil
	}

	raw := make([]DailyTotal, 0, len(points))
	for _, p := range points {
		raw = append(raw, DailyTotal{Date: p.Date, Value: p.Close})
	}

	normalized := NormalizeSeries(raw)
	if normalized == nil {
		return nil
	}
	return &NormalizedSeries{Label: s.indexSymbol, Points: normalized}
}

// Correlation computes the pairwise return correlation matrix.
func (s *Service) Correlation(start, end time.Time) (CorrelationMatrix, error) {
	snaps := s.snapshotsInRange(start, end)
	return ComputeCorrelationMatrix(snaps, Tickers(snaps))
}
