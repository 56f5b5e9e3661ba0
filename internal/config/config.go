// Package config holds the business-unit registry: which upstream
// project/suite each unit reports from and the per-unit country code tables.
// Built-in defaults cover the currently onboarded units; a YAML file can
// add or override units without a code change.
package config

import (
	"fmt"
	"sort"
)

// BusinessUnit identifies one reporting unit and the upstream suite its
// test cases live in.
type BusinessUnit struct {
	Name      string `yaml:"name"`
	ProjectID int    `yaml:"project_id"`
	SuiteID   int    `yaml:"suite_id"`
}

// Registry maps business-unit names to their configuration and country
// code tables.
type Registry struct {
	units     map[string]BusinessUnit
	countries map[string]map[string]string
}

// defaultUnits lists the onboarded business units.
var defaultUnits = []BusinessUnit{
	{Name: "Microservices", ProjectID: 17, SuiteID: 9570},
	{Name: "ICI Paris XL", ProjectID: 4, SuiteID: 1399},
	{Name: "Kruidvat", ProjectID: 11, SuiteID: 115},
	{Name: "Trekpleister", ProjectID: 3, SuiteID: 30784},
	{Name: "Superdrug", ProjectID: 5, SuiteID: 71},
	{Name: "Savers", ProjectID: 3, SuiteID: 30784},
	{Name: "The Perfume Shop", ProjectID: 22, SuiteID: 11833},
	{Name: "Marionnaud", ProjectID: 3, SuiteID: 30784},
	{Name: "Drogas", ProjectID: 22, SuiteID: 16093},
}

// defaultCountries maps upstream country field codes to readable
// abbreviations, per business unit. Units without a table report raw codes
// as synthetic ID_<code> labels.
var defaultCountries = map[string]map[string]string{
	"Marionnaud": {
		"3":  "MRN",
		"9":  "MFR",
		"10": "MCH",
		"11": "MAT",
		"12": "MRO",
		"13": "MIT",
		"14": "MCZ",
		"15": "MSK",
		"16": "MHU",
		"22": "MCH_SPR",
		"23": "MAT_SPR",
		"24": "MRO_SPR",
		"25": "MIT_SPR",
		"26": "MCZ_SPR",
		"27": "MSK_SPR",
		"28": "MHU_SPR",
	},
	"Drogas": {
		"5": "LT",
		"6": "LV",
		"7": "RU",
	},
}

// Default returns a Registry populated with the built-in units.
func Default() *Registry {
	r := &Registry{
		units:     make(map[string]BusinessUnit, len(defaultUnits)),
		countries: make(map[string]map[string]string, len(defaultCountries)),
	}
	for _, u := range defaultUnits {
		r.units[u.Name] = u
	}
	for name, table := range defaultCountries {
		m := make(map[string]string, len(table))
		for k, v := range table {
			m[k] = v
		}
		r.countries[name] = m
	}
	return r
}

// Unit returns the configuration for a business unit by name.
func (r *Registry) Unit(name string) (BusinessUnit, error) {
	u, ok := r.units[name]
	if !ok {
		return BusinessUnit{}, fmt.Errorf("unknown business unit %q", name)
	}
	return u, nil
}

// Names returns all configured business-unit names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Countries returns the country code table for a business unit. Units
// without a configured table get an empty map, which makes every code
// resolve to its synthetic ID_<code> label.
func (r *Registry) Countries(name string) map[string]string {
	if table, ok := r.countries[name]; ok {
		return table
	}
	return map[string]string{}
}
