package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"coverdash/internal/config"
	"coverdash/internal/logging"
	"coverdash/internal/metrics"
	"coverdash/internal/store"
	"coverdash/internal/summarize"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server and exposes coverage tools over stdio.
type Server struct {
	MCPServer *sdkmcp.Server

	registry *config.Registry
	snaps    store.Store
	logger   *slog.Logger
}

// NewServer creates an MCP server backed by the given registry and snapshot
// store. Tools operate on previously fetched snapshots; they never call the
// TestRail API themselves.
func NewServer(reg *config.Registry, snaps store.Store) *Server {
	s := &Server{
		registry: reg,
		snaps:    snaps,
		logger:   logging.New("mcp"),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "coverdash", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_units",
		Description: "List configured business units with project/suite IDs and snapshot availability.",
	}, s.handleListUnits)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "coverage_report",
		Description: "Compute automation coverage metrics (overall, Testim, per-device) for a business unit from its stored snapshot.",
	}, s.handleCoverageReport)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "epic_pivot",
		Description: "Compute the per-epic coverage pivot for a business unit, optionally filtered by a case-insensitive epic substring.",
	}, s.handleEpicPivot)
}

// --- Tool input/output types ---

type unitInfo struct {
	Name        string `json:"name"`
	ProjectID   int    `json:"project_id"`
	SuiteID     int    `json:"suite_id"`
	HasSnapshot bool   `json:"has_snapshot"`
	FetchedAt   string `json:"fetched_at,omitempty"`
	CaseCount   int    `json:"case_count,omitempty"`
}

type listUnitsOutput struct {
	Units []unitInfo `json:"units"`
}

type coverageReportInput struct {
	Unit string `json:"unit" jsonschema:"business unit name, e.g. Marionnaud"`
}

type coverageReportOutput struct {
	Unit    string                    `json:"unit"`
	Dropped int                       `json:"dropped"`
	Overall metrics.Overall           `json:"overall"`
	Testim  metrics.Testim            `json:"testim"`
	Devices map[string]metrics.Device `json:"devices"`
}

type epicPivotInput struct {
	Unit   string `json:"unit" jsonschema:"business unit name, e.g. Marionnaud"`
	Search string `json:"search,omitempty" jsonschema:"case-insensitive epic substring filter"`
}

type epicPivotOutput struct {
	Unit  string            `json:"unit"`
	Epics []metrics.EpicRow `json:"epics"`
	Stats metrics.EpicStats `json:"stats"`
}

// --- Handlers ---

func (s *Server) handleListUnits(_ context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, listUnitsOutput, error) {
	infos, err := s.snaps.List()
	if err != nil {
		return nil, listUnitsOutput{}, fmt.Errorf("list snapshots: %w", err)
	}
	byUnit := make(map[string]store.Info, len(infos))
	for _, info := range infos {
		byUnit[info.Unit] = info
	}

	out := listUnitsOutput{}
	for _, name := range s.registry.Names() {
		unit, err := s.registry.Unit(name)
		if err != nil {
			return nil, listUnitsOutput{}, err
		}
		ui := unitInfo{Name: name, ProjectID: unit.ProjectID, SuiteID: unit.SuiteID}
		if info, ok := byUnit[name]; ok {
			ui.HasSnapshot = true
			ui.FetchedAt = info.FetchedAt.Format("2006-01-02 15:04:05")
			ui.CaseCount = info.CaseCount
		}
		out.Units = append(out.Units, ui)
	}
	return nil, out, nil
}

func (s *Server) handleCoverageReport(_ context.Context, _ *sdkmcp.CallToolRequest, input coverageReportInput) (*sdkmcp.CallToolResult, coverageReportOutput, error) {
	result, err := s.summarizeUnit(input.Unit)
	if err != nil {
		return nil, coverageReportOutput{}, err
	}
	return nil, coverageReportOutput{
		Unit:    input.Unit,
		Dropped: result.Dropped,
		Overall: metrics.ComputeOverall(result.Rows),
		Testim:  metrics.ComputeTestim(result.Rows),
		Devices: metrics.ComputeDevices(result.Rows),
	}, nil
}

func (s *Server) handleEpicPivot(_ context.Context, _ *sdkmcp.CallToolRequest, input epicPivotInput) (*sdkmcp.CallToolResult, epicPivotOutput, error) {
	result, err := s.summarizeUnit(input.Unit)
	if err != nil {
		return nil, epicPivotOutput{}, err
	}
	rows, stats := metrics.ComputeEpicPivot(result.Rows)
	rows = metrics.FilterEpics(rows, input.Search)
	return nil, epicPivotOutput{Unit: input.Unit, Epics: rows, Stats: stats}, nil
}

// summarizeUnit loads the unit's snapshot and runs the summary pipeline.
func (s *Server) summarizeUnit(name string) (*summarize.Result, error) {
	if _, err := s.registry.Unit(name); err != nil {
		return nil, err
	}
	snap, err := s.snaps.Get(name)
	if err != nil {
		return nil, fmt.Errorf("load snapshot for %s: %w", name, err)
	}
	if snap == nil {
		return nil, fmt.Errorf("no snapshot for %s: run fetch first", name)
	}
	s.logger.Debug("summarizing snapshot", "unit", name, "cases", len(snap.Cases))

	pipeline := summarize.New(name, s.registry.Countries(name))
	return pipeline.Process(snap.Cases)
}
