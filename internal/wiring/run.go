package wiring

import (
	"context"
	"fmt"
	"os"
	"time"

	"coverdash/internal/config"
	"coverdash/internal/export"
	"coverdash/internal/metrics"
	"coverdash/internal/store"
	"coverdash/internal/summarize"
	"coverdash/internal/testrail"
)

// Run executes the full flow for one business unit: fetch all cases from
// TestRail, save a snapshot, summarize, and write the epic coverage workbook.
// snaps keeps the snapshot so later reports can run offline.
func Run(
	ctx context.Context,
	client *testrail.Client,
	snaps store.Store,
	reg *config.Registry,
	unit string,
	workbookPath string,
) error {
	bu, err := reg.Unit(unit)
	if err != nil {
		return err
	}

	cases, err := client.ListAllCases(ctx, bu.ProjectID, bu.SuiteID)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", unit, err)
	}
	if err := snaps.Save(&store.Snapshot{
		Unit:      bu.Name,
		ProjectID: bu.ProjectID,
		SuiteID:   bu.SuiteID,
		FetchedAt: time.Now().UTC(),
		Cases:     cases,
	}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	result, err := summarize.New(unit, reg.Countries(unit)).Process(cases)
	if err != nil {
		return err
	}

	f, err := os.Create(workbookPath)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	pivot, _ := metrics.ComputeEpicPivot(result.Rows)
	if err := export.EpicWorkbook(f, unit, metrics.ComputeOverall(result.Rows), pivot, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	return f.Close()
}
