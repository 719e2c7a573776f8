// Package harness runs YAML-described diagram scenarios: compile an
// H-expression against inline signatures and check the outcome, either
// a structural expectation or a specific error code.
//
// Scenarios back the CLI check command and double as end-to-end test
// fixtures via golden-file comparison of their reports.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hexlang/hexc/internal/sig"
)

// Scenario defines one diagram check.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Signatures is the inline operation signature table.
	Signatures map[string]sig.Signature `yaml:"signatures,omitempty"`

	// Expr is the H-expression source to compile.
	Expr string `yaml:"expr"`

	// Expect describes the successful diagram. Mutually exclusive with
	// Error.
	Expect *Expectation `yaml:"expect,omitempty"`

	// Error is the expected pipeline error code (PARSE_ERROR,
	// UNKNOWN_OPERATION, EMPTY_COMPOSITION, ARITY_MISMATCH,
	// TYPE_CONFLICT, UNRESOLVED_TYPE).
	Error string `yaml:"error,omitempty"`
}

// Expectation describes the structure of a successfully compiled
// diagram. Nil fields are not checked; zero counts are expressed with
// explicit pointers so "no edges" is checkable.
type Expectation struct {
	Nodes   *int     `yaml:"nodes,omitempty"`
	Edges   *int     `yaml:"edges,omitempty"`
	Sources []string `yaml:"sources"`
	Targets []string `yaml:"targets"`

	// SourcesSet marks whether the sources key was present, so an
	// empty interface can be asserted. Populated by LoadScenario.
	SourcesSet bool `yaml:"-"`
	TargetsSet bool `yaml:"-"`
}

// LoadScenario reads one scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strippedName(path)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	if sc.Expect != nil {
		// Distinguish "sources: []" from an absent key.
		var raw map[string]yaml.Node
		if err := yaml.Unmarshal(data, &raw); err == nil {
			if expectNode, ok := raw["expect"]; ok {
				var fields map[string]yaml.Node
				if err := expectNode.Decode(&fields); err == nil {
					_, sc.Expect.SourcesSet = fields["sources"]
					_, sc.Expect.TargetsSet = fields["targets"]
				}
			}
		}
	}
	return &sc, nil
}

// LoadScenarios reads every scenario under the given paths. A
// directory contributes its *.yaml and *.yml files in sorted order.
func LoadScenarios(paths ...string) ([]*Scenario, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("load scenarios: %w", err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("load scenarios: %w", err)
		}
		var dirFiles []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".yaml", ".yml":
				dirFiles = append(dirFiles, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(dirFiles)
		files = append(files, dirFiles...)
	}

	scenarios := make([]*Scenario, 0, len(files))
	for _, file := range files {
		sc, err := LoadScenario(file)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func (sc *Scenario) validate() error {
	if sc.Expr == "" {
		return fmt.Errorf("expr is required")
	}
	if sc.Expect != nil && sc.Error != "" {
		return fmt.Errorf("expect and error are mutually exclusive")
	}
	if sc.Expect == nil && sc.Error == "" {
		return fmt.Errorf("one of expect or error is required")
	}
	return nil
}

// Table builds the sig.Table for this scenario.
func (sc *Scenario) Table() *sig.Table {
	table := sig.NewTable()
	for name, signature := range sc.Signatures {
		table.Add(name, signature)
	}
	return table
}

func strippedName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
