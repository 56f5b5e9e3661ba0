package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"coverdash/internal/metrics"
)

const (
	summarySheet = "Summary"
	epicSheet    = "Epic Coverage"
)

// EpicWorkbook writes an Excel workbook with a Summary sheet (overall
// metrics) and an Epic Coverage sheet (the pivot), matching the layout the
// reporting side-channel consumers expect.
func EpicWorkbook(w io.Writer, unit string, overall metrics.Overall, pivot []metrics.EpicRow, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, unit, overall, now); err != nil {
		return err
	}

	if _, err := f.NewSheet(epicSheet); err != nil {
		return fmt.Errorf("create epic sheet: %w", err)
	}
	if err := writeEpicSheet(f, pivot); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, unit string, m metrics.Overall, now time.Time) error {
	rows := [][2]any{
		{"Business Unit", unit},
		{"Report Generated", now.Format("2006-01-02 15:04:05")},
		{"Total Test Cases", m.Total},
		{"Total Automated", m.TotalAutomated},
		{"Effective Coverage %", fmt.Sprintf("%.1f%%", m.Coverage)},
		{"Java Automated", m.AutomatedJava},
		{"Testim Automated", m.TotalTestim},
		{"To Be Automated", m.ToBeAutomated},
		{"Not Automated", m.NotAutomated},
		{"Not Applicable", m.NotApplicable},
	}

	if err := setRow(f, summarySheet, 1, "Metric", "Value"); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, summarySheet, i+2, r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeEpicSheet(f *excelize.File, pivot []metrics.EpicRow) error {
	err := setRow(f, epicSheet, 1,
		"Epic", "Automated", "To Be Automated", "N/A", "Not Automated",
		"TOTAL", "EFFECTIVE TOTAL", "COVERAGE %")
	if err != nil {
		return err
	}
	for i, er := range pivot {
		err := setRow(f, epicSheet, i+2,
			er.Epic, er.Automated, er.ToBeAutomated, er.NotApplicable,
			er.NotAutomated, er.Total, er.EffectiveTotal, er.Coverage)
		if err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values into one sheet row starting at column A.
func setRow(f *excelize.File, sheet string, row int, vals ...any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
