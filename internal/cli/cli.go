package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath string
	layoutPath string
	logPath    string
	debug      bool
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tcwidgets",
		Short:         "Run a terminal widget layout",
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLayout(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.Flags().StringVar(&opts.layoutPath, "layout", "", "Layout file to run (default: built-in demo)")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "Write diagnostics to this file (overrides config logPath)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log at debug level")

	cmd.AddCommand(
		newConfigCmd(opts),
		newCheckCmd(),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
