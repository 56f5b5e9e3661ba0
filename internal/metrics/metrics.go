// Package metrics computes coverage reductions over a summary table: the
// overall totals, the Testim-framework breakdown, per-device coverage, and
// the epic-level pivot. Every reduction is a pure function that tolerates an
// empty table by returning zeroed results.
package metrics

import (
	"coverdash/internal/classify"
	"coverdash/internal/summarize"
)

// Overall is the top-level coverage summary.
type Overall struct {
	Total                  int
	AutomatedJava          int
	AutomatedTestimDesktop int
	AutomatedTestimMobile  int
	AutomatedTestimBoth    int
	TotalAutomated         int
	TotalTestim            int
	ToBeAutomated          int
	NotAutomated           int
	NotApplicable          int
	EffectiveTotal         int // total minus N/A; coverage denominator
	Coverage               float64
}

// ComputeOverall reduces the summary table into the overall metrics.
func ComputeOverall(rows []summarize.SummaryRow) Overall {
	var m Overall
	for _, row := range rows {
		m.Total += row.Count
		switch row.Status {
		case classify.FinalAutomatedJava:
			m.AutomatedJava += row.Count
		case classify.FinalAutomatedTestimDesktop:
			m.AutomatedTestimDesktop += row.Count
		case classify.FinalAutomatedTestimMobile:
			m.AutomatedTestimMobile += row.Count
		case classify.FinalAutomatedTestimBoth:
			m.AutomatedTestimBoth += row.Count
		case classify.FinalToBeAutomated:
			m.ToBeAutomated += row.Count
		case classify.FinalNotAutomated:
			m.NotAutomated += row.Count
		case classify.FinalNotApplicable:
			m.NotApplicable += row.Count
		}
	}

	m.TotalTestim = m.AutomatedTestimDesktop + m.AutomatedTestimMobile + m.AutomatedTestimBoth
	m.TotalAutomated = m.AutomatedJava + m.TotalTestim
	m.EffectiveTotal = m.Total - m.NotApplicable
	m.Coverage = pct(m.TotalAutomated, m.EffectiveTotal)
	return m
}

// Testim is the secondary-framework breakdown. Eligible is the universe of
// cases that could be automated with Testim: already Testim-automated plus
// to-be-automated plus not-automated. N/A and Java-only-automated cases are
// out of scope for it.
type Testim struct {
	Desktop       int
	Mobile        int
	Both          int
	Automated     int // Desktop + Mobile + Both
	ToBeAutomated int
	NotAutomated  int
	Eligible      int
	Coverage      float64
	DesktopPct    float64
	MobilePct     float64
	BothPct       float64
}

// ComputeTestim reduces the summary table into the Testim metrics.
func ComputeTestim(rows []summarize.SummaryRow) Testim {
	var m Testim
	for _, row := range rows {
		switch row.Status {
		case classify.FinalAutomatedTestimDesktop:
			m.Desktop += row.Count
		case classify.FinalAutomatedTestimMobile:
			m.Mobile += row.Count
		case classify.FinalAutomatedTestimBoth:
			m.Both += row.Count
		case classify.FinalToBeAutomated:
			m.ToBeAutomated += row.Count
		case classify.FinalNotAutomated:
			m.NotAutomated += row.Count
		}
	}

	m.Automated = m.Desktop + m.Mobile + m.Both
	m.Eligible = m.Automated + m.ToBeAutomated + m.NotAutomated
	m.Coverage = pct(m.Automated, m.Eligible)
	m.DesktopPct = pct(m.Desktop, m.Automated)
	m.MobilePct = pct(m.Mobile, m.Automated)
	m.BothPct = pct(m.Both, m.Automated)
	return m
}

// Device is the coverage of one device class.
type Device struct {
	Automated int
	Total     int
	Coverage  float64
}

// DeviceClasses enumerates the device breakdown in display order.
var DeviceClasses = []string{"Desktop", "Mobile", "Both"}

// ComputeDevices reduces the summary table into per-device coverage.
// A case counts as automated when its final status is any automated variant.
func ComputeDevices(rows []summarize.SummaryRow) map[string]Device {
	out := make(map[string]Device, len(DeviceClasses))
	for _, class := range DeviceClasses {
		var m Device
		for _, row := range rows {
			if row.Device != class {
				continue
			}
			m.Total += row.Count
			if row.Status.IsAutomated() {
				m.Automated += row.Count
			}
		}
		m.Coverage = pct(m.Automated, m.Total)
		out[class] = m
	}
	return out
}

// pct returns num/den*100, or 0 when the denominator is not positive.
func pct(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
