package summarize

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"coverdash/internal/classify"
	"coverdash/internal/config"
	"coverdash/internal/testrail"
)

func marionnaudPipeline() *Pipeline {
	return New("Marionnaud", config.Default().Countries("Marionnaud"))
}

func TestProcess_EmptyInput(t *testing.T) {
	result, err := marionnaudPipeline().Process(nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(result.Rows) != 0 || result.Dropped != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestProcess_MissingJavaFieldIsConfigurationError(t *testing.T) {
	cases := []testrail.RawCase{
		{"id": 1, "title": "no status fields at all"},
	}
	_, err := marionnaudPipeline().Process(cases)
	if !errors.Is(err, ErrPrimaryStatusField) {
		t.Fatalf("expected ErrPrimaryStatusField, got %v", err)
	}
}

func TestProcess_DropsCasesWithoutJavaStatus(t *testing.T) {
	cases := []testrail.RawCase{
		{"id": 1, "custom_automation_status": float64(3)},
		{"id": 2, "custom_automation_status": nil},
		{"id": 3, "custom_automation_status": float64(99)}, // unmapped code
	}
	result, err := marionnaudPipeline().Process(cases)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", result.Dropped)
	}
	if result.TotalCases() != 1 {
		t.Errorf("TotalCases = %d, want 1", result.TotalCases())
	}
}

func TestProcess_GroupsIdenticalTuples(t *testing.T) {
	mk := func(id int, status float64) testrail.RawCase {
		return testrail.RawCase{
			"id":                       id,
			"custom_automation_status": status,
			"custom_epic_reference":    "Checkout",
			"custom_device":            float64(1),
			"multi_countries":          []any{float64(3)},
			"priority_id":              float64(4),
		}
	}
	cases := []testrail.RawCase{mk(1, 3), mk(2, 3), mk(3, 1)}

	result, err := marionnaudPipeline().Process(cases)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []SummaryRow{
		{Epic: "Checkout", Status: classify.FinalAutomatedJava, Device: "Desktop", Country: "MRN", Priority: "Highest", Count: 2},
		{Epic: "Checkout", Status: classify.FinalNotAutomated, Device: "Desktop", Country: "MRN", Priority: "Highest", Count: 1},
	}
	if diff := cmp.Diff(want, result.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_TestimOverridesJava(t *testing.T) {
	cases := []testrail.RawCase{
		{
			"id":                                   1,
			"custom_automation_status":             float64(1), // not automated in java
			"custom_case_automation_status_testim": float64(3), // automated in testim desktop
		},
	}
	result, err := marionnaudPipeline().Process(cases)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(result.Rows))
	}
	if result.Rows[0].Status != classify.FinalAutomatedTestimDesktop {
		t.Errorf("Status = %q, want %q", result.Rows[0].Status, classify.FinalAutomatedTestimDesktop)
	}
}

func TestProcess_MissingOptionalCategoriesDefault(t *testing.T) {
	cases := []testrail.RawCase{
		{"id": 1, "custom_automation_status": float64(2)},
	}
	result, err := marionnaudPipeline().Process(cases)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []SummaryRow{{
		Epic:     classify.DefaultEpic,
		Status:   classify.FinalToBeAutomated,
		Device:   classify.DefaultDevice,
		Country:  classify.DefaultCountry,
		Priority: classify.DefaultPriority,
		Count:    1,
	}}
	if diff := cmp.Diff(want, result.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_SchemaIsUnionAcrossCases(t *testing.T) {
	// The second case introduces the device field; resolution must still
	// see it even though the first case lacks it.
	cases := []testrail.RawCase{
		{"id": 1, "custom_automation_status": float64(3)},
		{"id": 2, "custom_automation_status": float64(3), "custom_device": float64(2)},
	}
	result, err := marionnaudPipeline().Process(cases)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	devices := map[string]int{}
	for _, row := range result.Rows {
		devices[row.Device] += row.Count
	}
	// Case 1 has no device value -> Both; case 2 -> Mobile.
	if devices["Both"] != 1 || devices["Mobile"] != 1 {
		t.Errorf("device distribution = %v", devices)
	}
}

func TestProcess_CountInvariant(t *testing.T) {
	cases := []testrail.RawCase{
		{"id": 1, "custom_automation_status": float64(3), "custom_epic_reference": "A"},
		{"id": 2, "custom_automation_status": float64(4), "custom_epic_reference": "B"},
		{"id": 3, "custom_automation_status": "bogus", "custom_epic_reference": "B"},
		{"id": 4, "custom_automation_status": float64(1), "custom_epic_reference": "A"},
	}
	result, err := marionnaudPipeline().Process(cases)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got, want := result.TotalCases()+result.Dropped, len(cases); got != want {
		t.Errorf("counted %d cases, want %d", got, want)
	}
}
