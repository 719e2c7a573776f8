package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexlang/hexc/internal/compiler"
	"github.com/hexlang/hexc/internal/dot"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Signatures string
	Output     string
	Rankdir    string
	Minimize   bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <expr>",
		Short: "Compile an H-expression and emit Graphviz DOT",
		Long: `Compile an H-expression and render the resulting diagram as
Graphviz DOT. Pass "-" to read the expression from stdin.

With --minimize, unified wires collapse to one node per equivalence
class before rendering.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Signatures, "signatures", "s", "", "operation signature file (.cue, .yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write DOT to file instead of stdout")
	cmd.Flags().StringVar(&opts.Rankdir, "rankdir", "LR", "graph layout direction (LR|TB)")
	cmd.Flags().BoolVar(&opts.Minimize, "minimize", false, "collapse unified wires before rendering")

	return cmd
}

func runRender(opts *RenderOptions, arg string, cmd *cobra.Command) error {
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

	diagram, err := compiler.Compile(src, table)
	if err != nil {
		code := compiler.ErrorCode(err)
		_ = formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitFailure, code, err)
	}

	dotText := dot.Render(diagram, dot.Options{
		Rankdir:  opts.Rankdir,
		Minimize: opts.Minimize,
	})

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(dotText), 0o644); err != nil {
			_ = formatter.Error("IO_ERROR", err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		formatter.VerboseLog("Wrote DOT to %s", opts.Output)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]string{"dot": dotText})
	}
	fmt.Fprint(formatter.Writer, dotText)
	return nil
}
