package main

import (
	"context"
	"fmt"
	"time"

	"coverdash/internal/config"
	"coverdash/internal/store"
	"coverdash/internal/testrail"
)

// loadRegistry returns the built-in business-unit registry, merged with the
// --config file when one is given.
func loadRegistry() (*config.Registry, error) {
	if rootFlags.configPath == "" {
		return config.Default(), nil
	}
	reg, err := config.LoadFromPath(rootFlags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", rootFlags.configPath, err)
	}
	return reg, nil
}

// newClient builds a TestRail client from TESTRAIL_URL / TESTRAIL_EMAIL /
// TESTRAIL_API_KEY.
func newClient() (*testrail.Client, error) {
	creds, err := config.CredentialsFromEnv()
	if err != nil {
		return nil, err
	}
	return testrail.New(creds.URL, creds.Email, creds.APIKey)
}

// fetchSnapshot pulls every case for the unit and wraps it as a snapshot.
func fetchSnapshot(ctx context.Context, client *testrail.Client, unit config.BusinessUnit) (*store.Snapshot, error) {
	cases, err := client.ListAllCases(ctx, unit.ProjectID, unit.SuiteID)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", unit.Name, err)
	}
	return &store.Snapshot{
		Unit:      unit.Name,
		ProjectID: unit.ProjectID,
		SuiteID:   unit.SuiteID,
		FetchedAt: time.Now().UTC(),
		Cases:     cases,
	}, nil
}

// loadSnapshot opens the store and returns the unit's snapshot, erroring when
// none has been fetched yet.
func loadSnapshot(dbPath, unit string) (*store.Snapshot, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	snap, err := st.Get(unit)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("no snapshot for %s: run 'coverdash fetch %s' first", unit, unit)
	}
	return snap, nil
}
