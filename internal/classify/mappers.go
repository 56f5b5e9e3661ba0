package classify

import (
	"strings"

	"github.com/spf13/cast"
)

// Canonical defaults for the non-critical categories. An unmappable value
// resolves to the category default; it never fails the case.
const (
	DefaultEpic     = "No Epic Assigned"
	DefaultDevice   = "Both"
	DefaultCountry  = "Unknown"
	DefaultPriority = "Unknown"
)

// deviceCodes maps the device field codes.
var deviceCodes = map[int]string{
	1: "Desktop",
	2: "Mobile",
	3: "Both",
}

// priorityCodes maps the priority field codes.
var priorityCodes = map[int]string{
	3: "High",
	4: "Highest",
	5: "Medium",
}

// coerceCode turns a raw field value into an integer table key. JSON numbers
// arrive as float64 and some instances send numeric strings, so anything
// that parses as a float is truncated to int. Returns false for nil and
// non-numeric values.
func coerceCode(val any) (int, bool) {
	if val == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(val)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// MapDevice maps a device code to Desktop, Mobile or Both. Anything
// unmappable resolves to Both, the safe superset.
func MapDevice(val any) string {
	code, ok := coerceCode(val)
	if !ok {
		return DefaultDevice
	}
	if device, ok := deviceCodes[code]; ok {
		return device
	}
	return DefaultDevice
}

// MapPriority maps a priority code to High, Highest or Medium. Non-numeric
// values fall back to case-insensitive substring matching; "highest" is
// checked before "high" because the latter is a substring of the former.
func MapPriority(val any) string {
	if val == nil {
		return DefaultPriority
	}
	code, ok := coerceCode(val)
	if !ok {
		s := strings.ToLower(strings.TrimSpace(cast.ToString(val)))
		switch {
		case strings.Contains(s, "highest"):
			return "Highest"
		case strings.Contains(s, "high"):
			return "High"
		case strings.Contains(s, "medium"):
			return "Medium"
		}
		return DefaultPriority
	}
	if p, ok := priorityCodes[code]; ok {
		return p
	}
	return DefaultPriority
}

// MapEpic renders a raw epic reference as a string, substituting the default
// label for missing/empty values.
func MapEpic(val any) string {
	if val == nil {
		return DefaultEpic
	}
	s := strings.TrimSpace(cast.ToString(val))
	if s == "" {
		return DefaultEpic
	}
	return s
}
