package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawdownSeries(t *testing.T) {
	t.Run("zero at every new peak", func(t *testing.T) {
		series := DrawdownSeries([]float64{100, 110, 120})
		require.Len(t, series, 3)
		for _, dd := range series {
			assert.Equal(t, 0.0, dd)
		}
	})

	t.Run("decline from peak", func(t *testing.T) {
		series := DrawdownSeries([]float64{100, 120, 90, 120})
		require.Len(t, series, 4)
		assert.Equal(t, 0.0, series[0])
		assert.Equal(t, 0.0, series[1])
		assert.InDelta(t, -25.0, series[2], 1e-9) // 90 vs peak 120
		assert.Equal(t, 0.0, series[3])           // recovered
	})

	t.Run("all points non positive", func(t *testing.T) {
		for _, dd := range DrawdownSeries([]float64{100, 80, 130, 60, 140}) {
			assert.LessOrEqual(t, dd, 0.0)
		}
	})

	t.Run("empty and zero start", func(t *testing.T) {
		assert.Empty(t, DrawdownSeries(nil))
		assert.Empty(t, DrawdownSeries([]float64{0, 100}))
	})
}

func TestMaxDrawdown(t *testing.T) {
	t.Run("finds deepest trough", func(t *testing.T) {
		dd := MaxDrawdown([]float64{100, 120, 90, 110, 60})
		require.NotNil(t, dd)
		assert.InDelta(t, -50.0, *dd, 1e-9) // 60 vs peak 120
	})

	t.Run("monotonic rise is zero", func(t *testing.T) {
		dd := MaxDrawdown([]float64{100, 110, 120})
		require.NotNil(t, dd)
		assert.Equal(t, 0.0, *dd)
	})

	t.Run("too few points", func(t *testing.T) {
		assert.Nil(t, MaxDrawdown([]float64{100}))
		assert.Nil(t, MaxDrawdown(nil))
	})
}

func TestAvgDrawdown(t *testing.T) {
	t.Run("means only negative points", func(t *testing.T) {
		// series: 0, 0, -25, 0
		got := AvgDrawdown([]float64{100, 120, 90, 120})
		assert.InDelta(t, -25.0, got, 1e-9)
	})

	t.Run("no declines", func(t *testing.T) {
		assert.Equal(t, 0.0, AvgDrawdown([]float64{100, 110, 120}))
	})
}

func TestSharpeRatio(t *testing.T) {
	t.Run("positive drift", func(t *testing.T) {
		returns := []float64{0.01, 0.02, 0.015, 0.005}
		want := Mean(returns) / StdDev(returns)
		assert.InDelta(t, want, SharpeRatio(returns), 1e-9)
	})

	t.Run("constant returns give zero", func(t *testing.T) {
		assert.Equal(t, 0.0, SharpeRatio([]float64{0.01, 0.01, 0.01}))
	})

	t.Run("empty gives zero", func(t *testing.T) {
		assert.Equal(t, 0.0, SharpeRatio(nil))
	})
}

func TestDownsideDeviation(t *testing.T) {
	t.Run("only negative returns counted", func(t *testing.T) {
		mixed := []float64{0.05, -0.02, 0.03, -0.04, -0.03}
		want := StdDev([]float64{-0.02, -0.04, -0.03})
		assert.InDelta(t, want, DownsideDeviation(mixed), 1e-9)
	})

	t.Run("no losses", func(t *testing.T) {
		assert.Equal(t, 0.0, DownsideDeviation([]float64{0.01, 0.02}))
	})
}
