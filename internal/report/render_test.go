package report_test

import (
	"strings"
	"testing"

	"coverdash/internal/classify"
	"coverdash/internal/metrics"
	"coverdash/internal/report"
	"coverdash/internal/summarize"
)

func sampleRows() []summarize.SummaryRow {
	return []summarize.SummaryRow{
		{Epic: "Checkout", Status: classify.FinalAutomatedJava, Device: "Desktop", Country: "MRN", Priority: "High", Count: 10},
		{Epic: "Login", Status: classify.FinalToBeAutomated, Device: "Mobile", Country: "MFR", Priority: "Medium", Count: 4},
	}
}

func TestRenderSummary_ASCII(t *testing.T) {
	out := report.RenderSummary(sampleRows(), report.ASCII)

	for _, want := range []string{"Checkout", "Automated - Java", "MRN", "TOTAL", "14"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestRenderSummary_Markdown(t *testing.T) {
	out := report.RenderSummary(sampleRows(), report.Markdown)
	if !strings.Contains(out, "| Epic") {
		t.Errorf("expected markdown header in output:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator in output:\n%s", out)
	}
}

func TestRenderOverall(t *testing.T) {
	m := metrics.ComputeOverall(sampleRows())
	out := report.RenderOverall(m, report.ASCII)

	for _, want := range []string{"Total test cases", "14", "Coverage", "71.4%"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderDevices_DisplayOrder(t *testing.T) {
	dm := metrics.ComputeDevices(sampleRows())
	out := report.RenderDevices(dm, report.ASCII)

	desktop := strings.Index(out, "Desktop")
	mobile := strings.Index(out, "Mobile")
	both := strings.LastIndex(out, "Both")
	if desktop == -1 || mobile == -1 || both == -1 {
		t.Fatalf("missing device rows:\n%s", out)
	}
	if !(desktop < mobile && mobile < both) {
		t.Errorf("device rows out of order:\n%s", out)
	}
}

func TestRenderEpicPivot(t *testing.T) {
	pivot, stats := metrics.ComputeEpicPivot(sampleRows())
	out := report.RenderEpicPivot(pivot, stats, report.Markdown)

	for _, want := range []string{"Checkout", "Login", "2 epics", "avg"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestParseMode(t *testing.T) {
	if report.ParseMode("markdown") != report.Markdown || report.ParseMode("md") != report.Markdown {
		t.Error("markdown values should parse to Markdown")
	}
	if report.ParseMode("") != report.ASCII || report.ParseMode("ascii") != report.ASCII {
		t.Error("other values should parse to ASCII")
	}
}
