package formulas

import (
	"github.com/markcheno/go-talib"
)

// SMA calculates the simple moving average of a value series with the given
// window, for chart smoothing overlays. The first window-1 positions have no
// full window and are zero-filled by talib; callers typically skip them.
// Returns nil when the series is shorter than the window.
func SMA(values []float64, window int) []float64 {
	if window < 1 || len(values) < window {
		return nil
	}
	return talib.Sma(values, window)
}
