// Package classify normalizes raw test-case records into the canonical
// coverage taxonomy: it resolves which concrete field carries each logical
// attribute, maps coded values to readable labels, and combines
// per-framework automation statuses into one final status.
package classify

// FieldCategory names a logical attribute of a test case. Each category owns
// an ordered list of concrete field-name aliases that have carried it across
// schema generations.
type FieldCategory string

const (
	FieldJavaStatus    FieldCategory = "java"
	FieldTestimDesktop FieldCategory = "testim_desktop"
	FieldTestimMobile  FieldCategory = "testim_mobile"
	FieldEpic          FieldCategory = "epic"
	FieldDevice        FieldCategory = "device"
	FieldCountry       FieldCategory = "country"
	FieldPriority      FieldCategory = "priority"
)

// Categories lists every field category the pipeline resolves.
var Categories = []FieldCategory{
	FieldJavaStatus,
	FieldTestimDesktop,
	FieldTestimMobile,
	FieldEpic,
	FieldDevice,
	FieldCountry,
	FieldPriority,
}

// fieldAliases maps each category to its candidate field names in priority
// order. New aliases are appended, never removed, so historical schemas keep
// resolving.
var fieldAliases = map[FieldCategory][]string{
	FieldJavaStatus: {
		"custom_automation_status",
		"automation_status",
	},
	FieldTestimDesktop: {
		"custom_case_automation_status_testim",
		"custom_automation_status_testim_desktop_view",
		"automation_status_testim_desktop",
	},
	FieldTestimMobile: {
		"custom_case_automation_status_mobile_view",
		"custom_automation_status_testim_mobile_view",
		"automation_status_testim_mobile",
	},
	FieldEpic: {
		"custom_epic_reference",
		"custom_epicreference",
		"custom_epic",
		"refs",
	},
	FieldDevice: {
		"custom_device",
		"device",
		"custom_devices",
	},
	FieldCountry: {
		"multi_countries",
		"custom_multi_countries",
		"countries",
	},
	FieldPriority: {
		"priority_id",
		"priority",
		"custom_priority",
	},
}

// Schema is the set of field names present in a batch of raw cases.
type Schema map[string]struct{}

// NewSchema builds a Schema from field names.
func NewSchema(fields ...string) Schema {
	s := make(Schema, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether the schema contains the field.
func (s Schema) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// ResolveField returns the first alias for the category that is present in
// the schema. The second return is false when no alias matches; that is not
// an error, callers substitute the category default.
func ResolveField(schema Schema, category FieldCategory) (string, bool) {
	for _, alias := range fieldAliases[category] {
		if schema.Has(alias) {
			return alias, true
		}
	}
	return "", false
}
