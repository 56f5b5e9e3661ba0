package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"coverdash/internal/summarize"
)

func TestComputeEpicPivot(t *testing.T) {
	pivot, stats := ComputeEpicPivot(sampleRows())

	want := []EpicRow{
		{Epic: "Epic1", Automated: 30, Total: 30, EffectiveTotal: 30, Coverage: 100},
		{Epic: "Epic2", ToBeAutomated: 15, NotAutomated: 5, Total: 20, EffectiveTotal: 20, Coverage: 0},
		{Epic: "Epic3", NotApplicable: 8, Total: 8, EffectiveTotal: 0, Coverage: 0},
	}
	if diff := cmp.Diff(want, pivot); diff != "" {
		t.Errorf("pivot mismatch (-want +got):\n%s", diff)
	}

	if stats.NumEpics != 3 {
		t.Errorf("NumEpics = %d, want 3", stats.NumEpics)
	}
	if got := stats.AvgCoverage; got < 33.3 || got > 33.4 {
		t.Errorf("AvgCoverage = %v, want ~33.33", got)
	}
	if stats.Above50 != 1 || stats.Below30 != 2 {
		t.Errorf("Above50 = %d, Below30 = %d", stats.Above50, stats.Below30)
	}
}

func TestComputeEpicPivot_SortedByCoverageDescending(t *testing.T) {
	pivot, _ := ComputeEpicPivot(sampleRows())
	for i := 1; i < len(pivot); i++ {
		if pivot[i-1].Coverage < pivot[i].Coverage {
			t.Errorf("pivot not sorted: %v before %v", pivot[i-1], pivot[i])
		}
	}
}

func TestComputeEpicPivot_ZeroEffectiveTotal(t *testing.T) {
	// An epic where every case is N/A must report 0 coverage, not NaN/Inf.
	rows := []summarize.SummaryRow{
		{Epic: "Legacy", Status: "N/A", Count: 12},
	}
	pivot, _ := ComputeEpicPivot(rows)
	if len(pivot) != 1 {
		t.Fatalf("expected 1 epic, got %d", len(pivot))
	}
	if pivot[0].Coverage != 0 || pivot[0].EffectiveTotal != 0 {
		t.Errorf("got %+v", pivot[0])
	}
}

func TestComputeEpicPivot_RoundsToOneDecimal(t *testing.T) {
	rows := []summarize.SummaryRow{
		{Epic: "E", Status: "Automated - Java", Count: 1},
		{Epic: "E", Status: "Not Automated", Count: 2},
	}
	pivot, _ := ComputeEpicPivot(rows)
	// 1/3 = 33.333... -> 33.3
	if pivot[0].Coverage != 33.3 {
		t.Errorf("Coverage = %v, want 33.3", pivot[0].Coverage)
	}
}

func TestComputeEpicPivot_Empty(t *testing.T) {
	pivot, stats := ComputeEpicPivot(nil)
	if len(pivot) != 0 {
		t.Errorf("expected empty pivot, got %v", pivot)
	}
	if stats.NumEpics != 0 || stats.AvgCoverage != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestFilterEpics_CaseInsensitiveSubstring(t *testing.T) {
	pivot := []EpicRow{
		{Epic: "Epic One"},
		{Epic: "epic two"},
		{Epic: "Story Three"},
	}

	got := FilterEpics(pivot, "Epic")
	if len(got) != 2 || got[0].Epic != "Epic One" || got[1].Epic != "epic two" {
		t.Errorf("FilterEpics: got %v", got)
	}

	if got := FilterEpics(pivot, "three"); len(got) != 1 || got[0].Epic != "Story Three" {
		t.Errorf("FilterEpics(three): got %v", got)
	}
}

func TestFilterEpics_EmptyTermReturnsPivotUnchanged(t *testing.T) {
	pivot, _ := ComputeEpicPivot(sampleRows())
	got := FilterEpics(pivot, "")
	if diff := cmp.Diff(pivot, got); diff != "" {
		t.Errorf("empty filter changed pivot (-want +got):\n%s", diff)
	}
}

func TestFilterEpics_Idempotent(t *testing.T) {
	pivot, _ := ComputeEpicPivot(sampleRows())
	once := FilterEpics(pivot, "epic")
	twice := FilterEpics(once, "epic")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("filter not idempotent (-want +got):\n%s", diff)
	}
}
