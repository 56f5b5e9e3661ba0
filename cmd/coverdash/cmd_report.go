package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coverdash/internal/metrics"
	"coverdash/internal/report"
	"coverdash/internal/store"
	"coverdash/internal/summarize"
)

var reportFlags struct {
	dbPath  string
	output  string
	epic    string
	summary bool
}

var reportCmd = &cobra.Command{
	Use:   "report <unit>",
	Short: "Report automation coverage for a business unit",
	Long: `Computes coverage metrics from the unit's stored snapshot: overall
coverage, Testim (secondary framework) coverage, a per-device breakdown and
a per-epic pivot. Use --epic to narrow the pivot to matching epics.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportFlags.dbPath, "db", store.DefaultDBPath, "Snapshot DB path")
	f.StringVarP(&reportFlags.output, "output", "o", "ascii", "Table format: ascii or markdown")
	f.StringVar(&reportFlags.epic, "epic", "", "Case-insensitive epic substring filter for the pivot")
	f.BoolVar(&reportFlags.summary, "summary", false, "Also print the grouped summary table")
}

func runReport(cmd *cobra.Command, args []string) error {
	unit := args[0]
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if _, err := reg.Unit(unit); err != nil {
		return err
	}

	snap, err := loadSnapshot(reportFlags.dbPath, unit)
	if err != nil {
		return err
	}

	pipeline := summarize.New(unit, reg.Countries(unit))
	result, err := pipeline.Process(snap.Cases)
	if err != nil {
		return err
	}

	mode := report.ParseMode(reportFlags.output)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s: %d cases (fetched %s)", unit, result.TotalCases(), snap.FetchedAt.Format("2006-01-02 15:04"))
	if result.Dropped > 0 {
		fmt.Fprintf(out, ", %d without a primary status skipped", result.Dropped)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	if reportFlags.summary {
		fmt.Fprintln(out, report.RenderSummary(result.Rows, mode))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, report.RenderOverall(metrics.ComputeOverall(result.Rows), mode))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.RenderTestim(metrics.ComputeTestim(result.Rows), mode))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.RenderDevices(metrics.ComputeDevices(result.Rows), mode))
	fmt.Fprintln(out)

	pivot, stats := metrics.ComputeEpicPivot(result.Rows)
	pivot = metrics.FilterEpics(pivot, reportFlags.epic)
	if reportFlags.epic != "" && len(pivot) == 0 {
		fmt.Fprintf(out, "no epics match %q\n", reportFlags.epic)
		return nil
	}
	fmt.Fprintln(out, report.RenderEpicPivot(pivot, stats, mode))
	return nil
}
