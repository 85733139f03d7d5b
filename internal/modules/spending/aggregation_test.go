package spending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, amount float64, category, merchant, account string) domain.Transaction {
	return domain.Transaction{
		Date:     date,
		Amount:   amount,
		Category: category,
		Merchant: merchant,
		Account:  account,
	}
}

func TestTotalsByCategory_RefundsNetBeforeAbs(t *testing.T) {
	// A purchase and its full refund cancel to zero, not to 100.
	txs := []domain.Transaction{
		tx(day(2025, 1, 10), -50, "Shopping", "store", "checking"),
		tx(day(2025, 1, 12), 50, "Shopping", "store", "checking"),
		tx(day(2025, 1, 15), -30, "Groceries", "market", "checking"),
	}

	totals := TotalsByCategory(txs)
	require.Len(t, totals, 2)
	assert.Equal(t, GroupTotal{Key: "Groceries", Amount: 30}, totals[0])
	assert.Equal(t, GroupTotal{Key: "Shopping", Amount: 0}, totals[1])
}

func TestTotalsByCategory_SortedDescending(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, 1, 1), -10, "Coffee", "cafe", "card"),
		tx(day(2025, 1, 2), -200, "Rent", "landlord", "checking"),
		tx(day(2025, 1, 3), -50, "Groceries", "market", "card"),
	}

	totals := TotalsByCategory(txs)
	require.Len(t, totals, 3)
	assert.Equal(t, "Rent", totals[0].Key)
	assert.Equal(t, "Groceries", totals[1].Key)
	assert.Equal(t, "Coffee", totals[2].Key)
}

func TestTotalsByCategory_TiesKeepFirstEncounteredOrder(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, 1, 1), -25, "Beta", "m1", "a"),
		tx(day(2025, 1, 2), -25, "Alpha", "m2", "a"),
	}

	totals := TotalsByCategory(txs)
	require.Len(t, totals, 2)
	assert.Equal(t, "Beta", totals[0].Key)
	assert.Equal(t, "Alpha", totals[1].Key)
}

func TestTotalsByCategory_Empty(t *testing.T) {
	assert.Empty(t, TotalsByCategory(nil))
}

func TestTotalsByDayOfWeek_AlwaysSevenRows(t *testing.T) {
	// 2025-01-06 is a Monday.
	txs := []domain.Transaction{
		tx(day(2025, 1, 6), -40, "Groceries", "market", "card"),  // Monday
		tx(day(2025, 1, 11), -60, "Dining", "restaurant", "card"), // Saturday
	}

	totals := TotalsByDayOfWeek(txs)
	require.Len(t, totals, 7)

	wantDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, day := range wantDays {
		assert.Equal(t, day, totals[i].Key)
	}

	assert.Equal(t, 40.0, totals[0].Amount)
	assert.Equal(t, 60.0, totals[5].Amount)
	assert.Equal(t, 0.0, totals[1].Amount) // Tuesday had no transactions
}

func TestTotalsByDayOfWeek_EmptyInputStillSevenRows(t *testing.T) {
	totals := TotalsByDayOfWeek(nil)
	require.Len(t, totals, 7)
	for _, gt := range totals {
		assert.Equal(t, 0.0, gt.Amount)
	}
}

func TestTopMerchants(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, 1, 1), -10, "Dining", "cafe", "a"),
		tx(day(2025, 1, 2), -90, "Shopping", "bigbox", "a"),
		tx(day(2025, 1, 3), -50, "Groceries", "market", "a"),
	}

	t.Run("truncates to n", func(t *testing.T) {
		top := TopMerchants(txs, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "bigbox", top[0].Key)
		assert.Equal(t, "market", top[1].Key)
	})

	t.Run("n larger than set returns all", func(t *testing.T) {
		assert.Len(t, TopMerchants(txs, 10), 3)
	})
}

func TestTotalsByMonth_CalendarBucketsChronological(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, 2, 15), -80, "Groceries", "market", "a"),
		tx(day(2025, 1, 31), -20, "Groceries", "market", "a"),
		tx(day(2025, 1, 1), -30, "Dining", "cafe", "a"),
	}

	totals := TotalsByMonth(txs)
	require.Len(t, totals, 2)
	assert.Equal(t, day(2025, 1, 1), totals[0].Month)
	assert.Equal(t, 50.0, totals[0].Amount)
	assert.Equal(t, day(2025, 2, 1), totals[1].Month)
	assert.Equal(t, 80.0, totals[1].Amount)
}

func TestTrendsByCategory_Ordering(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, 2, 3), -10, "Dining", "cafe", "a"),
		tx(day(2025, 1, 5), -20, "Dining", "cafe", "a"),
		tx(day(2025, 1, 8), -30, "Coffee", "cafe", "a"),
	}

	trends := TrendsByCategory(txs)
	require.Len(t, trends, 3)
	// January first, categories alphabetical within the month.
	assert.Equal(t, "Coffee", trends[0].Category)
	assert.Equal(t, "Dining", trends[1].Category)
	assert.Equal(t, day(2025, 2, 1), trends[2].Month)
}
