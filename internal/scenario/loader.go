package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"buildvsbuy/internal/domain"
)

// Loader errors
var (
	ErrEmptyFile   = errors.New("scenario file defines no scenarios")
	ErrUnnamed     = errors.New("scenario without a name")
	ErrEmptyParams = errors.New("scenario without params")
)

// scenarioFile is the YAML shape consumed by the compare CLI:
//
//	scenarios:
//	  - name: base
//	    params:
//	      build_timeline: 12
//	      fte_cost: 150000
type scenarioFile struct {
	Scenarios []domain.Scenario `yaml:"scenarios"`
}

// Load reads scenario definitions from a YAML stream.
func Load(r io.Reader) ([]domain.Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	if len(file.Scenarios) == 0 {
		return nil, ErrEmptyFile
	}
	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d: %w", i, ErrUnnamed)
		}
		if len(sc.Params) == 0 {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, ErrEmptyParams)
		}
	}
	return file.Scenarios, nil
}

// LoadFile reads scenario definitions from a YAML file on disk.
func LoadFile(path string) ([]domain.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
