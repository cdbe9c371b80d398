package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
)

// ErrNoData signals an export request over an empty record set.
// Callers must surface this instead of producing a header-only file.
var ErrNoData = errors.New("no data to export")

// Table is an ordered, uniform-shape record set ready for serialization.
// Row order is preserved; the same table always serializes to identical bytes.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ToCSV serializes the table as RFC 4180 CSV: one header row followed by one
// row per record. Fields containing the delimiter, quotes or newlines are
// quoted by the encoder.
func ToCSV(t Table) ([]byte, error) {
	if len(t.Rows) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return nil, fmt.Errorf("row has %d fields, header has %d", len(row), len(t.Headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
