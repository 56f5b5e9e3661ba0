package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of an override file.
//
//	units:
//	  - name: Drogas
//	    project_id: 22
//	    suite_id: 16093
//	countries:
//	  Drogas:
//	    "5": LT
type fileConfig struct {
	Units     []BusinessUnit               `yaml:"units"`
	Countries map[string]map[string]string `yaml:"countries"`
}

// LoadFromPath reads a YAML override file and merges it on top of the
// built-in defaults. Units with the same name replace the default entry;
// country tables are replaced wholesale per unit.
func LoadFromPath(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

// Load parses YAML overrides and merges them into a default Registry.
func Load(data []byte) (*Registry, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	r := Default()
	for _, u := range fc.Units {
		if u.Name == "" {
			return nil, fmt.Errorf("config unit with empty name")
		}
		r.units[u.Name] = u
	}
	for name, table := range fc.Countries {
		r.countries[name] = table
	}
	return r, nil
}

// Credentials carries the upstream API endpoint and auth material.
type Credentials struct {
	URL    string
	Email  string
	APIKey string
}

// CredentialsFromEnv reads TESTRAIL_URL, TESTRAIL_EMAIL and TESTRAIL_API_KEY.
func CredentialsFromEnv() (Credentials, error) {
	c := Credentials{
		URL:    os.Getenv("TESTRAIL_URL"),
		Email:  os.Getenv("TESTRAIL_EMAIL"),
		APIKey: os.Getenv("TESTRAIL_API_KEY"),
	}
	if c.URL == "" || c.Email == "" || c.APIKey == "" {
		return Credentials{}, fmt.Errorf("missing credentials: set TESTRAIL_URL, TESTRAIL_EMAIL and TESTRAIL_API_KEY")
	}
	return c, nil
}
