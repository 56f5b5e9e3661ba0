package report

import (
	"fmt"

	"coverdash/internal/metrics"
	"coverdash/internal/summarize"
)

// FmtPct formats a percentage with one decimal.
func FmtPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// RenderSummary renders the grouped summary table.
func RenderSummary(rows []summarize.SummaryRow, mode Mode) string {
	tb := NewTable(mode)
	tb.Header("Epic", "Status", "Device", "Country", "Priority", "Count")
	tb.RightAlign(6)

	total := 0
	for _, row := range rows {
		tb.Row(row.Epic, string(row.Status), row.Device, row.Country, row.Priority, row.Count)
		total += row.Count
	}
	tb.Footer("TOTAL", "", "", "", "", total)
	return tb.String()
}

// RenderOverall renders the overall coverage metrics as a metric/value panel.
func RenderOverall(m metrics.Overall, mode Mode) string {
	tb := NewTable(mode)
	tb.Header("Metric", "Value")
	tb.Row("Total test cases", m.Total)
	tb.Row("Automated - Java", m.AutomatedJava)
	tb.Row("Automated - Testim Desktop", m.AutomatedTestimDesktop)
	tb.Row("Automated - Testim Mobile", m.AutomatedTestimMobile)
	tb.Row("Automated - Testim Both", m.AutomatedTestimBoth)
	tb.Row("Total automated", m.TotalAutomated)
	tb.Row("To be automated", m.ToBeAutomated)
	tb.Row("Not automated", m.NotAutomated)
	tb.Row("Not applicable", m.NotApplicable)
	tb.Row("Effective total", m.EffectiveTotal)
	tb.Row("Coverage", FmtPct(m.Coverage))
	return tb.String()
}

// RenderTestim renders the Testim-framework breakdown.
func RenderTestim(m metrics.Testim, mode Mode) string {
	tb := NewTable(mode)
	tb.Header("Metric", "Value", "Share")
	tb.Row("Desktop", m.Desktop, FmtPct(m.DesktopPct))
	tb.Row("Mobile", m.Mobile, FmtPct(m.MobilePct))
	tb.Row("Both", m.Both, FmtPct(m.BothPct))
	tb.Row("Testim automated", m.Automated, "")
	tb.Row("Eligible for Testim", m.Eligible, "")
	tb.Row("Testim coverage", FmtPct(m.Coverage), "")
	return tb.String()
}

// RenderDevices renders per-device coverage in display order.
func RenderDevices(dm map[string]metrics.Device, mode Mode) string {
	tb := NewTable(mode)
	tb.Header("Device", "Automated", "Total", "Coverage")
	tb.RightAlign(2, 3, 4)
	for _, class := range metrics.DeviceClasses {
		m := dm[class]
		tb.Row(class, m.Automated, m.Total, FmtPct(m.Coverage))
	}
	return tb.String()
}

// RenderEpicPivot renders the epic coverage pivot with its stats footer.
func RenderEpicPivot(pivot []metrics.EpicRow, stats metrics.EpicStats, mode Mode) string {
	tb := NewTable(mode)
	tb.Header("Epic", "Automated", "To Be Automated", "N/A", "Not Automated", "Total", "Effective", "Coverage")
	tb.RightAlign(2, 3, 4, 5, 6, 7, 8)
	for _, er := range pivot {
		tb.Row(er.Epic, er.Automated, er.ToBeAutomated, er.NotApplicable,
			er.NotAutomated, er.Total, er.EffectiveTotal, FmtPct(er.Coverage))
	}
	tb.Footer(fmt.Sprintf("%d epics", stats.NumEpics), "", "", "", "", "", "",
		fmt.Sprintf("avg %s", FmtPct(stats.AvgCoverage)))
	return tb.String()
}
