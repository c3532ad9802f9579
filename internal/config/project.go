package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project represents the optional parfun.yaml configuration.
type Project struct {
	// CounterDSN is the SQLite DSN backing counter tables.
	// Defaults to an in-memory database.
	CounterDSN string `yaml:"counter_dsn,omitempty"`

	// Paths lists additional directories searched for source files.
	Paths []string `yaml:"paths,omitempty"`
}

// LoadProject reads parfun.yaml from dir. A missing file is not an error;
// the returned project carries defaults.
func LoadProject(dir string) (*Project, error) {
	proj := &Project{CounterDSN: DefaultCounterDSN}

	path := filepath.Join(dir, ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return proj, nil
		}
		return nil, fmt.Errorf("read %s: %w", ProjectFileName, err)
	}

	if err := yaml.Unmarshal(data, proj); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ProjectFileName, err)
	}
	if proj.CounterDSN == "" {
		proj.CounterDSN = DefaultCounterDSN
	}
	return proj, nil
}
