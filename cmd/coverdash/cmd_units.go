package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coverdash/internal/report"
	"coverdash/internal/store"
)

var unitsFlags struct {
	dbPath string
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List configured business units and their snapshots",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	unitsCmd.Flags().StringVar(&unitsFlags.dbPath, "db", store.DefaultDBPath, "Snapshot DB path")
}

func runUnits(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	fetched := map[string]store.Info{}
	if st, err := store.Open(unitsFlags.dbPath); err == nil {
		infos, err := st.List()
		st.Close()
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		for _, info := range infos {
			fetched[info.Unit] = info
		}
	}

	t := report.NewTable(report.ASCII)
	t.Header("Business Unit", "Project", "Suite", "Cases", "Fetched")
	t.RightAlign(1, 2, 3)
	for _, name := range reg.Names() {
		unit, err := reg.Unit(name)
		if err != nil {
			return err
		}
		cases, fetchedAt := "-", "-"
		if info, ok := fetched[name]; ok {
			cases = fmt.Sprintf("%d", info.CaseCount)
			fetchedAt = info.FetchedAt.Format("2006-01-02 15:04")
		}
		t.Row(name, unit.ProjectID, unit.SuiteID, cases, fetchedAt)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
