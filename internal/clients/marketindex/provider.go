package marketindex

import (
	"context"
	"time"
)

// PricePoint is one daily close of an index or symbol.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeriesProvider fetches a daily close series for a symbol. The
// comparison overlay is the only fallible I/O the calculators touch: a
// provider error must degrade to omitting that one series, never abort the
// computation. Implementations are expected to honor the context deadline.
type PriceSeriesProvider interface {
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]PricePoint, error)
}
