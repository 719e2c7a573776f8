package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexlang/hexc/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
}

// CheckReport summarizes a scenario run for JSON output.
type CheckReport struct {
	Total   int                `json:"total"`
	Passed  int                `json:"passed"`
	Failed  int                `json:"failed"`
	Results []CheckResultEntry `json:"results"`
}

// CheckResultEntry is one scenario's outcome in a CheckReport.
type CheckResultEntry struct {
	Scenario  string   `json:"scenario"`
	Passed    bool     `json:"passed"`
	ErrorCode string   `json:"error_code,omitempty"`
	Failures  []string `json:"failures,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenario-file-or-dir>...",
		Short: "Run diagram scenario checks",
		Long: `Run YAML scenario files: each compiles an H-expression against
inline signatures and checks either the diagram structure or an
expected error code. Directories contribute their *.yaml files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	scenarios, err := harness.LoadScenarios(paths...)
	if err != nil {
		_ = formatter.Error("LOAD_ERROR", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading scenarios", err)
	}
	if len(scenarios) == 0 {
		_ = formatter.Error("LOAD_ERROR", "no scenario files found", nil)
		return NewExitError(ExitCommandError, "no scenario files found")
	}

	report := CheckReport{Total: len(scenarios)}
	for _, sc := range scenarios {
		result, err := harness.Run(sc)
		if err != nil {
			_ = formatter.Error("INTERNAL", err.Error(), nil)
			return WrapExitError(ExitCommandError, "running scenario", err)
		}

		entry := CheckResultEntry{
			Scenario:  result.Scenario,
			Passed:    result.Passed,
			ErrorCode: result.ErrorCode,
			Failures:  result.Failures,
		}
		report.Results = append(report.Results, entry)
		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	if err := outputCheckReport(formatter, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", report.Failed, report.Total))
	}
	return nil
}

func outputCheckReport(formatter *OutputFormatter, report CheckReport) error {
	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	for _, entry := range report.Results {
		mark := "✓"
		if !entry.Passed {
			mark = "✗"
		}
		fmt.Fprintf(formatter.Writer, "%s %s\n", mark, entry.Scenario)
		for _, failure := range entry.Failures {
			fmt.Fprintf(formatter.Writer, "    %s\n", failure)
		}
	}
	fmt.Fprintf(formatter.Writer, "\n%d passed, %d failed (%d total)\n",
		report.Passed, report.Failed, report.Total)
	return nil
}
