package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// snapshot is the serialized scenario report compared against golden
// files. Field order is fixed by the struct so output is deterministic.
type snapshot struct {
	Scenario  string          `json:"scenario"`
	Expr      string          `json:"expr"`
	Passed    bool            `json:"passed"`
	Failures  []string        `json:"failures,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
	Diagram   json.RawMessage `json:"diagram,omitempty"`
}

// RunWithGolden runs a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}

	snap := snapshot{
		Scenario:  sc.Name,
		Expr:      sc.Expr,
		Passed:    result.Passed,
		Failures:  result.Failures,
		ErrorCode: result.ErrorCode,
	}
	if result.Diagram != nil {
		data, err := json.Marshal(result.Diagram)
		if err != nil {
			return err
		}
		snap.Diagram = data
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&snap); err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, buf.Bytes())

	return nil
}
