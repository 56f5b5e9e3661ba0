package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"coverdash/internal/logging"
	"coverdash/internal/store"
)

var fetchFlags struct {
	dbPath string
	all    bool
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [unit]",
	Short: "Fetch test cases from TestRail and store a snapshot",
	Long: `Fetches every test case for a business unit's project/suite and stores
the result as a snapshot in the local DB. Reports and exports run against
snapshots, so fetch first.

Credentials are read from TESTRAIL_URL, TESTRAIL_EMAIL and TESTRAIL_API_KEY.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.StringVar(&fetchFlags.dbPath, "db", store.DefaultDBPath, "Snapshot DB path")
	f.BoolVar(&fetchFlags.all, "all", false, "Fetch every configured business unit in parallel")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if !fetchFlags.all && len(args) == 0 {
		return fmt.Errorf("business unit name is required (or use --all)")
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	st, err := store.Open(fetchFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	names := reg.Names()
	if !fetchFlags.all {
		if _, err := reg.Unit(args[0]); err != nil {
			return err
		}
		names = []string{args[0]}
	}

	logger := logging.New("fetch")
	out := cmd.OutOrStdout()

	snaps := make([]*store.Snapshot, len(names))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		unit, err := reg.Unit(name)
		if err != nil {
			return err
		}
		g.Go(func() error {
			logger.Info("fetching cases", "unit", unit.Name, "project", unit.ProjectID, "suite", unit.SuiteID)
			snap, err := fetchSnapshot(ctx, client, unit)
			if err != nil {
				return err
			}
			snaps[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Saves happen serially: the store is a single SQLite file.
	for _, snap := range snaps {
		if err := st.Save(snap); err != nil {
			return fmt.Errorf("save %s: %w", snap.Unit, err)
		}
		fmt.Fprintf(out, "%s: %d cases\n", snap.Unit, len(snap.Cases))
	}
	return nil
}
