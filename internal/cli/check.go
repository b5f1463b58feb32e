package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/softwayapp/plugingen/internal/branding"
	"github.com/softwayapp/plugingen/internal/generator"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the manifest on disk is present, current and valid",
		Long: `Render the manifest in memory and compare it with the file on disk.
Exits non-zero when the file is missing, out of date or fails schema validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(nil)
			if err != nil {
				return err
			}

			report, err := generator.New(s).Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rel, err := filepath.Rel(s.Root, report.OutputPath)
			if err != nil {
				rel = report.OutputPath
			}

			if report.OK() {
				color.New(color.FgGreen).Fprintf(out, "✓ %s is up to date\n", rel)
				return nil
			}

			color.New(color.FgRed, color.Bold).Fprintf(out, "✗ %s needs attention\n", rel)
			for _, line := range report.Drift {
				fmt.Fprintf(out, "  %s\n", line)
			}
			if report.Missing || report.Stale {
				color.New(color.FgYellow).Fprintf(out, "  run '%s' to regenerate it\n", branding.CLIName())
			}
			return report.Err()
		},
	}
}
