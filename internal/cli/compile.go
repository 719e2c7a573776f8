package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexlang/hexc/internal/compiler"
	"github.com/hexlang/hexc/internal/dot"
	"github.com/hexlang/hexc/internal/sig"
	"github.com/hexlang/hexc/internal/store"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Signatures string // signature file path (.cue, .yaml)
	Output     string // output file path
	DB         string // compilation history database path
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <expr>",
		Short: "Compile an H-expression to a typed diagram",
		Long: `Compile an H-expression into a typed open hypergraph diagram.

Pass the expression as an argument, or "-" to read it from stdin.
Operation signatures come from a CUE or YAML file given with
--signatures; without one, only pure wiring expressions parse and
those fail type resolution.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Errors are reported through the formatter
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Signatures, "signatures", "s", "", "operation signature file (.cue, .yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write diagram JSON to file")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record the compilation in this history database")

	return cmd
}

func runCompile(opts *CompileOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	src, err := readExpr(cmd, arg)
	if err != nil {
		_ = formatter.Error("IO_ERROR", err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading expression", err)
	}

	table, err := loadTable(opts.Signatures)
	if err != nil {
		_ = formatter.Error("LOAD_ERROR", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading signatures", err)
	}
	formatter.VerboseLog("Loaded %d signature(s)", table.Len())

	diagram, err := compiler.Compile(src, table)
	if err != nil {
		code := compiler.ErrorCode(err)
		_ = formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitFailure, code, err)
	}
	formatter.VerboseLog("Compiled %d wire(s), %d edge(s)", len(diagram.Nodes), len(diagram.Edges))

	if opts.Output != "" {
		if err := writeDiagramFile(diagram, opts.Output); err != nil {
			_ = formatter.Error("IO_ERROR", err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
	}

	if opts.DB != "" {
		if err := recordCompilation(cmd.Context(), opts.DB, diagram, table); err != nil {
			_ = formatter.Error("DB_ERROR", err.Error(), nil)
			return WrapExitError(ExitCommandError, "recording compilation", err)
		}
		formatter.VerboseLog("Recorded compilation in %s", opts.DB)
	}

	return outputCompileSuccess(formatter, diagram, opts.Output)
}

func outputCompileSuccess(formatter *OutputFormatter, d *compiler.Diagram, outputFile string) error {
	if formatter.Format == "json" {
		return formatter.Success(d)
	}

	fmt.Fprintf(formatter.Writer, "✓ Compiled %q\n", d.Source)
	fmt.Fprintf(formatter.Writer, "  wires: %d, edges: %d\n", len(d.Nodes), len(d.Edges))
	fmt.Fprintf(formatter.Writer, "  interface: %s → %s\n",
		formatTypeList(d.SourceTypes()), formatTypeList(d.TargetTypes()))
	if outputFile != "" {
		fmt.Fprintf(formatter.Writer, "Wrote diagram to %s\n", outputFile)
	}
	return nil
}

func formatTypeList(types []string) string {
	if len(types) == 0 {
		return "()"
	}
	return "(" + strings.Join(types, " ") + ")"
}

func writeDiagramFile(d *compiler.Diagram, filename string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling diagram: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

func recordCompilation(ctx context.Context, dbPath string, d *compiler.Diagram, table *sig.Table) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	dotText := dot.Render(d, dot.Options{})
	rec := store.NewRecord(d, table, dotText)
	return st.WriteCompilation(ctx, rec)
}
