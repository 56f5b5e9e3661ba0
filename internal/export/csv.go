// Package export writes the summary table and epic pivot to spreadsheet
// formats for offline analysis.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"coverdash/internal/summarize"
)

// SummaryCSV writes the grouped summary table as CSV.
func SummaryCSV(w io.Writer, rows []summarize.SummaryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Epic", "Status", "Device", "Country", "Priority", "Count"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Epic,
			string(row.Status),
			row.Device,
			row.Country,
			row.Priority,
			strconv.Itoa(row.Count),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
