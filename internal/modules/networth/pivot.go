package networth

import (
	"sort"
	"time"

	"github.com/findash/findash/internal/domain"
)

// GrandTotalLabel marks the final summary row of a pivot table.
const GrandTotalLabel = "Grand Total"

// BuildPivot builds the account-type by period comparison table. With
// byCategory set, rows break down further into (account type, category).
// Columns are resampled to the given interval (month/quarter/year stride),
// keeping the earliest period as anchor. Cells with no snapshot are 0.
func BuildPivot(snaps []domain.NetWorthSnapshot, byCategory bool, interval int) Pivot {
	if len(snaps) == 0 {
		return Pivot{}
	}

	type rowKey struct {
		accountType string
		category    string
	}

	monthSet := make(map[time.Time]struct{})
	cells := make(map[rowKey]map[time.Time]float64)
	for _, s := range snaps {
		month := domain.MonthStart(s.Month)
		monthSet[month] = struct{}{}

		key := rowKey{accountType: s.AccountType}
		if byCategory {
			key.category = s.Category
		}
		if cells[key] == nil {
			cells[key] = make(map[time.Time]float64)
		}
		cells[key][month] += s.Amount
	}

	months := make([]time.Time, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	selected := resampleIndices(len(months), interval)
	if interval <= 1 {
		selected = selected[:0]
		for i := range months {
			selected = append(selected, i)
		}
	}

	columns := make([]string, 0, len(selected))
	columnMonths := make([]time.Time, 0, len(selected))
	for _, i := range selected {
		columns = append(columns, months[i].Format(periodLabelFormat))
		columnMonths = append(columnMonths, months[i])
	}

	keys := make([]rowKey, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].accountType != keys[j].accountType {
			return keys[i].accountType < keys[j].accountType
		}
		return keys[i].category < keys[j].category
	})

	rows := make([]PivotRow, 0, len(keys)+1)
	grandTotal := make([]float64, len(columnMonths))
	for _, key := range keys {
		values := make([]float64, len(columnMonths))
		for i, month := range columnMonths {
			values[i] = cells[key][month]
			grandTotal[i] += values[i]
		}
		rows = append(rows, PivotRow{
			AccountType: key.accountType,
			Category:    key.category,
			Values:      values,
		})
	}

	rows = append(rows, PivotRow{AccountType: GrandTotalLabel, Values: grandTotal})

	return Pivot{Columns: columns, Rows: rows}
}
