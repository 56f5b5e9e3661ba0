package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coverdash/internal/export"
	"coverdash/internal/metrics"
	"coverdash/internal/store"
	"coverdash/internal/summarize"
)

var exportFlags struct {
	dbPath  string
	outPath string
}

var exportCmd = &cobra.Command{
	Use:   "export <unit>",
	Short: "Export coverage data to CSV or Excel",
	Long: `Exports the unit's coverage data from its stored snapshot. The format
follows the output file extension: .csv writes the grouped summary table,
.xlsx writes a workbook with a metric summary sheet and the epic pivot.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.dbPath, "db", store.DefaultDBPath, "Snapshot DB path")
	f.StringVarP(&exportFlags.outPath, "output", "o", "", "Output file, .csv or .xlsx (required)")

	_ = exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	unit := args[0]
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if _, err := reg.Unit(unit); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(exportFlags.outPath))
	if ext != ".csv" && ext != ".xlsx" {
		return fmt.Errorf("unsupported output extension %q: use .csv or .xlsx", ext)
	}

	snap, err := loadSnapshot(exportFlags.dbPath, unit)
	if err != nil {
		return err
	}
	result, err := summarize.New(unit, reg.Countries(unit)).Process(snap.Cases)
	if err != nil {
		return err
	}

	f, err := os.Create(exportFlags.outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportFlags.outPath, err)
	}

	switch ext {
	case ".csv":
		err = export.SummaryCSV(f, result.Rows)
	case ".xlsx":
		pivot, _ := metrics.ComputeEpicPivot(result.Rows)
		err = export.EpicWorkbook(f, unit, metrics.ComputeOverall(result.Rows), pivot, time.Now())
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", exportFlags.outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", exportFlags.outPath, len(result.Rows))
	return nil
}
