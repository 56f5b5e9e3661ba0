package classify

import (
	"testing"

	"coverdash/internal/config"
)

func TestMapDevice(t *testing.T) {
	cases := []struct {
		val  any
		want string
	}{
		{1, "Desktop"},
		{2, "Mobile"},
		{3, "Both"},
		{float64(1), "Desktop"},
		{"2", "Mobile"},
		{9, "Both"},
		{"tablet", "Both"},
		{nil, "Both"},
	}
	for _, tc := range cases {
		if got := MapDevice(tc.val); got != tc.want {
			t.Errorf("MapDevice(%v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}

func TestMapPriority(t *testing.T) {
	cases := []struct {
		val  any
		want string
	}{
		{3, "High"},
		{4, "Highest"},
		{5, "Medium"},
		{float64(4), "Highest"},
		{"5", "Medium"},
		{99, "Unknown"},
		{"highest", "Highest"},
		{"Highest priority", "Highest"},
		{"high", "High"},
		{"MEDIUM", "Medium"},
		{"critical", "Unknown"},
		{nil, "Unknown"},
	}
	for _, tc := range cases {
		if got := MapPriority(tc.val); got != tc.want {
			t.Errorf("MapPriority(%v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}

func TestMapEpic(t *testing.T) {
	cases := []struct {
		val  any
		want string
	}{
		{"Checkout", "Checkout"},
		{"  Login  ", "Login"},
		{float64(123), "123"},
		{"", DefaultEpic},
		{nil, DefaultEpic},
	}
	for _, tc := range cases {
		if got := MapEpic(tc.val); got != tc.want {
			t.Errorf("MapEpic(%v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}

func TestMapCountry_Scalar(t *testing.T) {
	mrn := config.Default().Countries("Marionnaud")
	drg := config.Default().Countries("Drogas")

	cases := []struct {
		val   CountryValue
		table map[string]string
		want  string
	}{
		{ScalarCountry("3"), mrn, "MRN"},
		{ScalarCountry(float64(3)), mrn, "MRN"},
		{ScalarCountry(" 9 "), mrn, "MFR"},
		{ScalarCountry("5"), drg, "LT"},
		{ScalarCountry("999"), mrn, "ID_999"},
		{ScalarCountry(nil), mrn, "Unknown"},
	}
	for _, tc := range cases {
		if got := MapCountry(tc.val, tc.table); got != tc.want {
			t.Errorf("MapCountry(%v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}

func TestMapCountry_Multi(t *testing.T) {
	mrn := config.Default().Countries("Marionnaud")

	got := MapCountry(MultiCountry([]any{float64(3), float64(9), float64(42)}), mrn)
	if got != "MRN, MFR, ID_42" {
		t.Errorf("multi mapping: got %q", got)
	}

	if got := MapCountry(MultiCountry(nil), mrn); got != "Unknown" {
		t.Errorf("empty list: got %q, want Unknown", got)
	}
}

func TestCountryValueOf(t *testing.T) {
	if v := CountryValueOf([]any{1, 2}); !v.multi {
		t.Error("list should classify as multi")
	}
	if v := CountryValueOf("3"); v.multi {
		t.Error("scalar should not classify as multi")
	}
}
