package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexlang/hexc/internal/loader"
	"github.com/hexlang/hexc/internal/sig"
)

// readExpr resolves the expression argument. A literal "-" reads the
// expression from stdin.
func readExpr(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading expression from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// loadTable loads the signature table from a CUE or YAML file. An
// empty path yields an empty table.
func loadTable(path string) (*sig.Table, error) {
	if path == "" {
		return sig.NewTable(), nil
	}
	return loader.Load(path)
}
