package dcasim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named simulation configuration, as found in a scenario
// file. Scenario files let several parameter sets be compared in one
// invocation.
type Scenario struct {
	Name             string `yaml:"name"`
	SimulationConfig `yaml:",inline"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads a YAML scenario file.
//
//	scenarios:
//	  - name: dca-weekly
//	    initial_cash: 26000
//	    annual_rate: 4.5
//	    investment_amount: 500
//	    frequency: weekly
//	    allocation: {VFV.TO: 1.0}
//	    start: 2025-01-01
//	    end: 2025-10-31
//
// Every scenario is validated; the first invalid one fails the load.
func LoadScenarios(path string) ([]Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario file: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("cannot parse scenario file %q: %w", path, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %q declares no scenarios", path)
	}
	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario #%d has no name", i+1)
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return file.Scenarios, nil
}
