package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/findash/findash/internal/domain"
)

// table is a parsed CSV file with header-indexed access. Column lookups that
// fail produce structural errors so callers can tell malformed data from
// missing data.
type table struct {
	dataset string
	columns map[string]int
	rows    [][]string
}

// readTable parses a CSV file. A missing file is absence of data, not an
// error: it returns nil.
func readTable(dataset, path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewStructuralError(dataset, "unreadable CSV", err)
	}
	if len(records) == 0 {
		return &table{dataset: dataset, columns: map[string]int{}}, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewStructuralError(dataset,
			"missing required columns: "+strings.Join(missing, ", "), nil)
	}

	return &table{dataset: dataset, columns: columns, rows: records[1:]}, nil
}

func (t *table) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) float(row []string, rowNum int, column string) (float64, error) {
	raw := t.cell(row, column)
	if raw == "" {
		return 0, nil
	}

	cleaned := strings.NewReplacer("$", "", ",", "", "%", "", "(", "-", ")", "").Replace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, domain.NewStructuralError(t.dataset,
			fmt.Sprintf("row %d: unparsable %s value %q", rowNum+2, column, raw), err)
	}
	return v, nil
}

func (t *table) date(row []string, rowNum int, column string) (time.Time, error) {
	raw := t.cell(row, column)
	for _, layout := range []string{"2006-01-02", "2006-01", "01/02/2006", "1/2/2006"} {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, nil
		}
	}
	return time.Time{}, domain.NewStructuralError(t.dataset,
		fmt.Sprintf("row %d: unparsable %s value %q", rowNum+2, column, raw), nil)
}
