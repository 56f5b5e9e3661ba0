package metrics

import (
	"math"
	"sort"
	"strings"

	"coverdash/internal/classify"
	"coverdash/internal/summarize"
)

// EpicRow is one epic in the coverage pivot.
type EpicRow struct {
	Epic           string
	Automated      int
	ToBeAutomated  int
	NotApplicable  int
	NotAutomated   int
	Total          int
	EffectiveTotal int
	Coverage       float64 // percent, rounded to one decimal
}

// EpicStats summarizes the pivot itself.
type EpicStats struct {
	NumEpics    int
	AvgCoverage float64 // unweighted mean over epics, not cases
	Above50     int     // epics with coverage >= 50%
	Below30     int     // epics with coverage < 30%
}

// ComputeEpicPivot groups the summary table by epic and derives per-epic
// coverage, sorted by coverage descending. The stats are computed over the
// full pivot, before any filtering.
func ComputeEpicPivot(rows []summarize.SummaryRow) ([]EpicRow, EpicStats) {
	byEpic := make(map[string]*EpicRow)
	for _, row := range rows {
		er, ok := byEpic[row.Epic]
		if !ok {
			er = &EpicRow{Epic: row.Epic}
			byEpic[row.Epic] = er
		}
		switch {
		case row.Status.IsAutomated():
			er.Automated += row.Count
		case row.Status == classify.FinalToBeAutomated:
			er.ToBeAutomated += row.Count
		case row.Status == classify.FinalNotApplicable:
			er.NotApplicable += row.Count
		case row.Status == classify.FinalNotAutomated:
			er.NotAutomated += row.Count
		}
	}

	pivot := make([]EpicRow, 0, len(byEpic))
	for _, er := range byEpic {
		er.Total = er.Automated + er.ToBeAutomated + er.NotApplicable + er.NotAutomated
		er.EffectiveTotal = er.Total - er.NotApplicable
		er.Coverage = round1(pct(er.Automated, er.EffectiveTotal))
		pivot = append(pivot, *er)
	}

	sort.Slice(pivot, func(i, j int) bool {
		if pivot[i].Coverage != pivot[j].Coverage {
			return pivot[i].Coverage > pivot[j].Coverage
		}
		return pivot[i].Epic < pivot[j].Epic
	})

	var stats EpicStats
	stats.NumEpics = len(pivot)
	sum := 0.0
	for _, er := range pivot {
		sum += er.Coverage
		if er.Coverage >= 50 {
			stats.Above50++
		}
		if er.Coverage < 30 {
			stats.Below30++
		}
	}
	if stats.NumEpics > 0 {
		stats.AvgCoverage = sum / float64(stats.NumEpics)
	}

	return pivot, stats
}

// FilterEpics returns the pivot rows whose epic name contains the search
// term, case-insensitively. An empty term returns the pivot unchanged.
func FilterEpics(pivot []EpicRow, term string) []EpicRow {
	if term == "" {
		return pivot
	}
	needle := strings.ToLower(term)
	filtered := make([]EpicRow, 0, len(pivot))
	for _, er := range pivot {
		if strings.Contains(strings.ToLower(er.Epic), needle) {
			filtered = append(filtered, er)
		}
	}
	return filtered
}

// round1 rounds to one decimal and normalizes NaN/Inf to 0.
func round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
