package cli

import (
	"fmt"

	"github.com/softwayapp/plugingen/internal/branding"
	"github.com/softwayapp/plugingen/internal/config"
	"github.com/softwayapp/plugingen/internal/generator"
	"github.com/softwayapp/plugingen/internal/logger"
	"github.com/spf13/cobra"
)

// buildInfo is injected via ldflags.
type buildInfo struct {
	version string
	commit  string
	date    string
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	root       string
	configFile string
	logLevel   string
	logFormat  string
}

// settings resolves the configuration for the chosen root, applying
// overrides with the highest precedence.
func (o *globalOptions) settings(overrides map[string]interface{}) (*config.Settings, error) {
	return config.Load(config.Options{
		Root:       o.root,
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
}

func (o *globalOptions) setupLogging(cmd *cobra.Command) error {
	logger.SetLogOutput(cmd.ErrOrStderr())
	logger.SetLogFormat(o.logFormat)
	if err := logger.SetLogLevel(o.logLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	return nil
}

func newRootCmd(info buildInfo) *cobra.Command {
	opts := &globalOptions{}
	var (
		outputDir string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: "Generate the plugin manifest from commands and skills",
		Long: branding.CLIName() + ` scans the commands/ and skills/ directories of a plugin, reads the
metadata block of each descriptor and writes .claude/plugin.json.

Plugin identity comes from ` + branding.ConfigFile() + ` at the root, overridden by
environment variables such as ` + branding.EnvVar("version") + `.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("output-dir") {
				overrides[config.KeyOutputDir] = outputDir
			}
			return runGenerate(cmd, opts, overrides, dryRun)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.root, "root", ".", "Plugin root directory")
	pf.StringVar(&opts.configFile, "config", "", "Config file (default <root>/"+branding.ConfigFile()+")")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.Flags().StringVar(&outputDir, "output-dir", config.DefaultOutputDir, "Directory the manifest is written to, relative to the root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the manifest to stdout instead of writing it")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newVersionCmd(info))

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, overrides map[string]interface{}, dryRun bool) error {
	s, err := opts.settings(overrides)
	if err != nil {
		return err
	}

	g := generator.New(s)
	if dryRun {
		r, err := g.Render(cmd.Context())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(r.Data)
		return err
	}

	r, err := g.Generate(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Summary())
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	return newRootCmd(buildInfo{version: version, commit: commit, date: date}).Execute()
}
