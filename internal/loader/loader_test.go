package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlang/hexc/internal/sig"
)

func assertArithmeticTable(t *testing.T, table *sig.Table) {
	t.Helper()
	require.Equal(t, 4, table.Len())
	assert.Equal(t, []string{"add", "copy", "discard", "zero"}, table.Names())

	add, ok := table.Get("add")
	require.True(t, ok)
	assert.Equal(t, []string{"ℝ", "ℝ"}, add.Inputs)
	assert.Equal(t, []string{"ℝ"}, add.Outputs)

	// Zero-arity sides load as empty.
	zero, ok := table.Get("zero")
	require.True(t, ok)
	assert.Empty(t, zero.Inputs)
	assert.Equal(t, []string{"ℝ"}, zero.Outputs)

	discard, ok := table.Get("discard")
	require.True(t, ok)
	assert.Empty(t, discard.Outputs)
}

func TestLoad_CUE(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "arithmetic.cue"))
	require.NoError(t, err)
	assertArithmeticTable(t, table)
}

func TestLoad_YAML(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)
	assertArithmeticTable(t, table)
}

func TestLoad_BothFormatsAgree(t *testing.T) {
	fromCUE, err := Load(filepath.Join("testdata", "arithmetic.cue"))
	require.NoError(t, err)
	fromYAML, err := Load(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)

	require.Equal(t, fromCUE.Names(), fromYAML.Names())
	for _, name := range fromCUE.Names() {
		c, _ := fromCUE.Get(name)
		y, _ := fromYAML.Get(name)
		assert.Equal(t, c, y, "signature %q differs between formats", name)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("signatures.toml")
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.Contains(t, err.Error(), "unsupported signature file extension")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.yaml"))
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}

func TestLoadCUE_BadFieldType(t *testing.T) {
	_, err := LoadCUE(filepath.Join("testdata", "bad.cue"))
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.Contains(t, err.Error(), `signature "add"`)
	assert.Contains(t, err.Error(), "not a string")
}

func TestLoadYAML_MissingSignaturesKey(t *testing.T) {
	_, err := LoadYAML(filepath.Join("testdata", "no-signatures.yaml"))
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.Contains(t, err.Error(), `missing top-level "signatures" mapping`)
}

func TestLoadCUE_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.cue")
	require.NoError(t, os.WriteFile(path, []byte("signatures: {"), 0o644))

	_, err := LoadCUE(path)
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}
