// Package summarize runs the coverage pipeline: it resolves the concrete
// schema fields once per batch, classifies every raw case, and folds the
// results into a grouped summary table keyed by
// (epic, status, device, country, priority).
package summarize

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"coverdash/internal/classify"
	"coverdash/internal/logging"
	"coverdash/internal/testrail"
)

// ErrPrimaryStatusField means the Java automation status field could not be
// resolved from the batch schema at all. Without it no case can be
// classified, so the whole run is aborted.
var ErrPrimaryStatusField = errors.New("java automation status field not found in schema")

// SummaryRow is one group of identical cases in the summary table.
type SummaryRow struct {
	Epic     string
	Status   classify.FinalStatus
	Device   string
	Country  string
	Priority string
	Count    int
}

// Result is the output of one pipeline run. Rows sum to the number of input
// cases that had a resolvable Java status; the rest are counted in Dropped.
type Result struct {
	Rows    []SummaryRow
	Dropped int
}

// TotalCases returns the number of cases represented by the summary table.
func (r *Result) TotalCases() int {
	total := 0
	for _, row := range r.Rows {
		total += row.Count
	}
	return total
}

// Pipeline classifies raw cases for one business unit.
type Pipeline struct {
	unit      string
	countries map[string]string
	logger    *slog.Logger
}

// New returns a Pipeline for the given business unit and its country table.
func New(unit string, countries map[string]string) *Pipeline {
	return &Pipeline{
		unit:      unit,
		countries: countries,
		logger:    logging.New("pipeline"),
	}
}

// groupKey is the 5-tuple the summary table is grouped by.
type groupKey struct {
	epic     string
	status   classify.FinalStatus
	device   string
	country  string
	priority string
}

// Process maps every raw case into the canonical taxonomy and aggregates
// identical tuples into counts. An empty input yields an empty Result, not
// an error; a schema without the Java status field yields
// ErrPrimaryStatusField.
func (p *Pipeline) Process(cases []testrail.RawCase) (*Result, error) {
	if len(cases) == 0 {
		p.logger.Warn("no cases to process", "unit", p.unit)
		return &Result{}, nil
	}

	schema := schemaOf(cases)

	javaField, ok := classify.ResolveField(schema, classify.FieldJavaStatus)
	if !ok {
		return nil, fmt.Errorf("process %s: %w", p.unit, ErrPrimaryStatusField)
	}

	desktopField, hasDesktop := classify.ResolveField(schema, classify.FieldTestimDesktop)
	mobileField, hasMobile := classify.ResolveField(schema, classify.FieldTestimMobile)
	epicField, hasEpic := classify.ResolveField(schema, classify.FieldEpic)
	deviceField, hasDevice := classify.ResolveField(schema, classify.FieldDevice)
	countryField, hasCountry := classify.ResolveField(schema, classify.FieldCountry)
	priorityField, hasPriority := classify.ResolveField(schema, classify.FieldPriority)

	if !hasDesktop {
		p.logger.Warn("testim desktop field not found, statuses default to none", "unit", p.unit)
	}
	if !hasMobile {
		p.logger.Warn("testim mobile field not found, statuses default to none", "unit", p.unit)
	}

	counts := make(map[groupKey]int)
	dropped := 0

	for _, c := range cases {
		java := classify.MapJavaStatus(c[javaField])
		if java == classify.StatusNone {
			dropped++
			p.logger.Debug("dropping case without java status", "unit", p.unit, "case", c["id"])
			continue
		}

		desktop := classify.StatusNone
		if hasDesktop {
			desktop = classify.MapTestimStatus(c[desktopField])
		}
		mobile := classify.StatusNone
		if hasMobile {
			mobile = classify.MapTestimStatus(c[mobileField])
		}

		key := groupKey{
			status:   classify.ResolveFinalStatus(java, desktop, mobile),
			epic:     classify.DefaultEpic,
			device:   classify.DefaultDevice,
			country:  classify.DefaultCountry,
			priority: classify.DefaultPriority,
		}
		if hasEpic {
			key.epic = classify.MapEpic(c[epicField])
		}
		if hasDevice {
			key.device = classify.MapDevice(c[deviceField])
		}
		if hasCountry {
			key.country = classify.MapCountry(classify.CountryValueOf(c[countryField]), p.countries)
		}
		if hasPriority {
			key.priority = classify.MapPriority(c[priorityField])
		}

		counts[key]++
	}

	rows := make([]SummaryRow, 0, len(counts))
	for key, n := range counts {
		rows = append(rows, SummaryRow{
			Epic:     key.epic,
			Status:   key.status,
			Device:   key.device,
			Country:  key.country,
			Priority: key.priority,
			Count:    n,
		})
	}

	// Consumers treat the table as unordered; sorting just keeps output and
	// tests deterministic.
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Epic != b.Epic {
			return a.Epic < b.Epic
		}
		if a.Status != b.Status {
			return a.Status < b.Status
		}
		if a.Device != b.Device {
			return a.Device < b.Device
		}
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		return a.Priority < b.Priority
	})

	p.logger.Info("processed cases",
		"unit", p.unit, "cases", len(cases), "rows", len(rows), "dropped", dropped)

	return &Result{Rows: rows, Dropped: dropped}, nil
}

// schemaOf collects the union of field names across all cases. Upstream
// pages can disagree on optional fields, so no single record is
// authoritative.
func schemaOf(cases []testrail.RawCase) classify.Schema {
	schema := make(classify.Schema)
	for _, c := range cases {
		for field := range c {
			schema[field] = struct{}{}
		}
	}
	return schema
}
