// Package loader reads operation signature tables from files.
//
// Two formats are supported, selected by extension:
//
//	.cue        CUE, parsed with the CUE SDK's Go API
//	.yaml .yml  YAML
//
// Both describe the same shape:
//
//	signatures: {
//	    "add": { inputs: ["ℝ", "ℝ"], outputs: ["ℝ"] }
//	}
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/hexlang/hexc/internal/sig"
)

// LoadError represents a failure to read or decode a signature file.
type LoadError struct {
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// IsLoadError reports whether err is a LoadError.
// Uses errors.As to handle wrapped errors.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Load reads a signature table from path, dispatching on the file
// extension.
func Load(path string) (*sig.Table, error) {
	switch filepath.Ext(path) {
	case ".cue":
		return LoadCUE(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("unsupported signature file extension %q (want .cue, .yaml or .yml)", filepath.Ext(path))}
	}
}

// LoadCUE reads a signature table from a CUE file.
func LoadCUE(path string) (*sig.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: err.Error()}
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, &LoadError{Path: path, Message: cueerrors.Details(err, nil)}
	}

	sigsVal := v.LookupPath(cue.ParsePath("signatures"))
	if !sigsVal.Exists() {
		return nil, &LoadError{Path: path, Message: "missing top-level \"signatures\" struct"}
	}

	iter, err := sigsVal.Fields()
	if err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("signatures is not a struct: %v", err)}
	}

	table := sig.NewTable()
	for iter.Next() {
		name := iter.Label()
		opVal := iter.Value()

		inputs, err := cueStringList(opVal, "inputs")
		if err != nil {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("signature %q: %v", name, err)}
		}
		outputs, err := cueStringList(opVal, "outputs")
		if err != nil {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("signature %q: %v", name, err)}
		}

		table.Add(name, sig.Signature{Inputs: inputs, Outputs: outputs})
	}
	return table, nil
}

// cueStringList reads an optional list-of-strings field; a missing
// field is an empty list, so zero-arity sides need no ceremony.
func cueStringList(v cue.Value, field string) ([]string, error) {
	listVal := v.LookupPath(cue.ParsePath(field))
	if !listVal.Exists() {
		return nil, nil
	}
	iter, err := listVal.List()
	if err != nil {
		return nil, fmt.Errorf("%s is not a list: %v", field, err)
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, fmt.Errorf("%s[%d] is not a string: %v", field, len(out), err)
		}
		out = append(out, s)
	}
	return out, nil
}

// signatureFile is the YAML document shape.
type signatureFile struct {
	Signatures map[string]sig.Signature `yaml:"signatures"`
}

// LoadYAML reads a signature table from a YAML file.
func LoadYAML(path string) (*sig.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: err.Error()}
	}

	var file signatureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: err.Error()}
	}
	if file.Signatures == nil {
		return nil, &LoadError{Path: path, Message: "missing top-level \"signatures\" mapping"}
	}

	table := sig.NewTable()
	for name, signature := range file.Signatures {
		table.Add(name, signature)
	}
	return table, nil
}
