package dcasim

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenarios(t *testing.T) {
	path := writeScenarioFile(t, `
scenarios:
  - name: dca-weekly
    initial_cash: 26000
    annual_rate: 4.5
    investment_amount: 500
    frequency: weekly
    allocation: {VFV.TO: 1.0}
    start: 2025-01-01
    end: 2025-10-31
  - name: savings-only
    initial_cash: 26000
    annual_rate: 4.5
    start: 2025-01-01
    end: 2025-10-31
`)
	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios() error = %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("loaded %d scenarios, want 2", len(scenarios))
	}

	dca := scenarios[0]
	if dca.Name != "dca-weekly" {
		t.Errorf("Name = %q", dca.Name)
	}
	if dca.InitialCash != 26000 || dca.Amount != 500 || dca.Cadence != Weekly {
		t.Errorf("unexpected config %+v", dca.SimulationConfig)
	}
	if dca.Allocation["VFV.TO"] != 1.0 {
		t.Errorf("allocation = %v", dca.Allocation)
	}
	if dca.Start != NewDate(2025, 1, 1) || dca.End != NewDate(2025, 10, 31) {
		t.Errorf("range = %v..%v", dca.Start, dca.End)
	}

	if scenarios[1].Amount != 0 {
		t.Errorf("savings-only scenario has amount %v", scenarios[1].Amount)
	}
}

func TestLoadScenariosRejectsBadFiles(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"no scenarios", "scenarios: []"},
		{"not yaml", "{{{"},
		{"unnamed", `
scenarios:
  - initial_cash: 100
    start: 2025-01-01
    end: 2025-02-01
`},
		{"invalid config", `
scenarios:
  - name: broken
    initial_cash: -1
    start: 2025-01-01
    end: 2025-02-01
`},
		{"investing without allocation", `
scenarios:
  - name: broken
    initial_cash: 1000
    investment_amount: 100
    start: 2025-01-01
    end: 2025-02-01
`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScenarioFile(t, tc.content)
			if _, err := LoadScenarios(path); err == nil {
				t.Error("LoadScenarios() succeeded, want error")
			}
		})
	}
}

func TestLoadScenariosMissingFile(t *testing.T) {
	if _, err := LoadScenarios(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadScenarios() succeeded on a missing file")
	}
}
