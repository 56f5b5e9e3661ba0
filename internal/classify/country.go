package classify

import (
	"strings"

	"github.com/spf13/cast"
)

// CountryValue is a raw country field value: either a single code or a list
// of codes. The country field is the only multi-valued category, so the
// scalar/multi distinction is made once at the boundary instead of leaking
// type switches into the mapping logic.
type CountryValue struct {
	multi bool
	codes []any
}

// ScalarCountry wraps a single raw code.
func ScalarCountry(code any) CountryValue {
	return CountryValue{codes: []any{code}}
}

// MultiCountry wraps a list of raw codes.
func MultiCountry(codes []any) CountryValue {
	return CountryValue{multi: true, codes: codes}
}

// CountryValueOf classifies a raw field value as scalar or multi-valued.
func CountryValueOf(raw any) CountryValue {
	if list, ok := raw.([]any); ok {
		return MultiCountry(list)
	}
	return ScalarCountry(raw)
}

// MapCountry maps a country value through the business unit's code table.
// Multi values are mapped element-wise and joined with ", " in original
// order. A code missing from the table keeps the raw code under a synthetic
// ID_<code> label so it stays visible without polluting filter dropdowns.
// Missing values and empty lists map to Unknown.
func MapCountry(val CountryValue, table map[string]string) string {
	if val.multi {
		if len(val.codes) == 0 {
			return DefaultCountry
		}
		mapped := make([]string, 0, len(val.codes))
		for _, code := range val.codes {
			mapped = append(mapped, mapScalarCountry(code, table))
		}
		return strings.Join(mapped, ", ")
	}

	if len(val.codes) == 0 || val.codes[0] == nil {
		return DefaultCountry
	}
	return mapScalarCountry(val.codes[0], table)
}

// mapScalarCountry resolves one code: direct string lookup first, then the
// numeric-coercion retry, then the synthetic ID_<code> label.
func mapScalarCountry(code any, table map[string]string) string {
	s := strings.TrimSpace(cast.ToString(code))

	if country, ok := table[s]; ok {
		return country
	}
	if n, ok := coerceCode(code); ok {
		if country, ok := table[cast.ToString(n)]; ok {
			return country
		}
	}
	return "ID_" + s
}
