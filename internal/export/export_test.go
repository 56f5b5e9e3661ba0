package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"coverdash/internal/classify"
	"coverdash/internal/metrics"
	"coverdash/internal/summarize"
)

func sampleRows() []summarize.SummaryRow {
	return []summarize.SummaryRow{
		{Epic: "Checkout", Status: classify.FinalAutomatedJava, Device: "Desktop", Country: "MRN", Priority: "High", Count: 10},
		{Epic: "Login", Status: classify.FinalNotApplicable, Device: "Both", Country: "Unknown", Priority: "Unknown", Count: 2},
	}
}

func TestSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := SummaryCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("SummaryCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "Epic" || records[0][5] != "Count" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Checkout" || records[1][5] != "10" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestSummaryCSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := SummaryCSV(&buf, nil); err != nil {
		t.Fatalf("SummaryCSV: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Epic,Status,Device,Country,Priority,Count" {
		t.Errorf("expected header only, got %q", got)
	}
}

func TestEpicWorkbook(t *testing.T) {
	rows := sampleRows()
	overall := metrics.ComputeOverall(rows)
	pivot, _ := metrics.ComputeEpicPivot(rows)
	now := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := EpicWorkbook(&buf, "Marionnaud", overall, pivot, now); err != nil {
		t.Fatalf("EpicWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "Epic Coverage" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	unit, err := f.GetCellValue("Summary", "B2")
	if err != nil || unit != "Marionnaud" {
		t.Errorf("Summary!B2 = %q, %v", unit, err)
	}
	total, err := f.GetCellValue("Summary", "B4")
	if err != nil || total != "12" {
		t.Errorf("Summary!B4 (total cases) = %q, %v", total, err)
	}

	epic, err := f.GetCellValue("Epic Coverage", "A2")
	if err != nil || epic != "Checkout" {
		t.Errorf("Epic Coverage!A2 = %q, %v", epic, err)
	}
	coverage, err := f.GetCellValue("Epic Coverage", "H2")
	if err != nil || coverage != "100" {
		t.Errorf("Epic Coverage!H2 = %q, %v", coverage, err)
	}
}
