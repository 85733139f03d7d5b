package networth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/domain"
)

func TestBuildPivot_ByAccountType(t *testing.T) {
	jan, feb := month(2025, time.January), month(2025, time.February)
	snaps := []domain.NetWorthSnapshot{
		snap(jan, "home", domain.AccountTypeAsset, "Real Estate", 300000),
		snap(jan, "cash", domain.AccountTypeAsset, "Cash", 20000),
		snap(jan, "mortgage", domain.AccountTypeLiability, "Real Estate", -210000),
		snap(feb, "home", domain.AccountTypeAsset, "Real Estate", 302000),
		snap(feb, "cash", domain.AccountTypeAsset, "Cash", 21000),
		snap(feb, "mortgage", domain.AccountTypeLiability, "Real Estate", -209000),
	}

	pivot := BuildPivot(snaps, false, IntervalMonth)

	require.Equal(t, []string{"Jan 2025", "Feb 2025"}, pivot.Columns)
	require.Len(t, pivot.Rows, 3) // Asset, Liability, Grand Total

	assert.Equal(t, domain.AccountTypeAsset, pivot.Rows[0].AccountType)
	assert.Equal(t, []float64{320000, 323000}, pivot.Rows[0].Values)

	assert.Equal(t, domain.AccountTypeLiability, pivot.Rows[1].AccountType)
	assert.Equal(t, []float64{-210000, -209000}, pivot.Rows[1].Values)

	assert.Equal(t, GrandTotalLabel, pivot.Rows[2].AccountType)
	assert.Equal(t, []float64{110000, 114000}, pivot.Rows[2].Values)
}

func TestBuildPivot_ByCategory(t *testing.T) {
	jan := month(2025, time.January)
	snaps := []domain.NetWorthSnapshot{
		snap(jan, "home", domain.AccountTypeAsset, "Real Estate", 300000),
		snap(jan, "cash", domain.AccountTypeAsset, "Cash", 20000),
		snap(jan, "mortgage", domain.AccountTypeLiability, "Real Estate", -210000),
	}

	pivot := BuildPivot(snaps, true, IntervalMonth)
	require.Len(t, pivot.Rows, 4)

	// Rows sorted by account type then category.
	assert.Equal(t, "Cash", pivot.Rows[0].Category)
	assert.Equal(t, "Real Estate", pivot.Rows[1].Category)
	assert.Equal(t, domain.AccountTypeLiability, pivot.Rows[2].AccountType)
	assert.Equal(t, GrandTotalLabel, pivot.Rows[3].AccountType)
	assert.Equal(t, []float64{110000}, pivot.Rows[3].Values)
}

func TestBuildPivot_MissingCellsAreZero(t *testing.T) {
	jan, feb := month(2025, time.January), month(2025, time.February)
	snaps := []domain.NetWorthSnapshot{
		snap(jan, "cash", domain.AccountTypeAsset, "Cash", 20000),
		snap(feb, "loan", domain.AccountTypeLiability, "Credit", -5000),
	}

	pivot := BuildPivot(snaps, false, IntervalMonth)
	require.Len(t, pivot.Rows, 3)
	assert.Equal(t, []float64{20000, 0}, pivot.Rows[0].Values)
	assert.Equal(t, []float64{0, -5000}, pivot.Rows[1].Values)
}

func TestBuildPivot_QuarterlyColumns(t *testing.T) {
	var snaps []domain.NetWorthSnapshot
	for i := 0; i < 7; i++ {
		m := month(2025, time.January).AddDate(0, i, 0)
		snaps = append(snaps, snap(m, "cash", domain.AccountTypeAsset, "Cash", float64(1000*(i+1))))
	}

	pivot := BuildPivot(snaps, false, IntervalQuarter)
	// Months 0..6, backward stride 3 from index 6: 6, 3, 0.
	require.Equal(t, []string{"Jan 2025", "Apr 2025", "Jul 2025"}, pivot.Columns)
	assert.Equal(t, []float64{1000, 4000, 7000}, pivot.Rows[0].Values)
}

func TestBuildPivot_Empty(t *testing.T) {
	pivot := BuildPivot(nil, false, IntervalMonth)
	assert.Empty(t, pivot.Columns)
	assert.Empty(t, pivot.Rows)
}
