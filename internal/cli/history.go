package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexlang/hexc/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB    string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded compilations",
		Long: `List compilations recorded with "compile --db", newest first.
Identical source and signatures record once.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "compilation history database path (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum entries to list (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(opts.DB); err != nil {
		_ = formatter.Error("DB_ERROR", fmt.Sprintf("database not found: %s", opts.DB), nil)
		return WrapExitError(ExitCommandError, "opening database", err)
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		_ = formatter.Error("DB_ERROR", err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening database", err)
	}
	defer st.Close()

	records, err := st.ListCompilations(cmd.Context(), opts.Limit)
	if err != nil {
		_ = formatter.Error("DB_ERROR", err.Error(), nil)
		return WrapExitError(ExitCommandError, "listing compilations", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "No compilations recorded.")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(formatter.Writer, "%s  %s  %q  wires=%d edges=%d\n",
			rec.CreatedAt, rec.ID, rec.Source, rec.NodeCount, rec.EdgeCount)
	}
	return nil
}
