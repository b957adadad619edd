package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/tcwidgets/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				store, err := config.NewStore(root.configPath)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the current settings as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				store, err := config.NewStore(root.configPath)
				if err != nil {
					return err
				}
				cfg, err := store.Load()
				if err != nil {
					return err
				}
				b, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Change one setting (empty VALUE restores the default)",
			Long:  "Change one setting. Keys: focusKey, logPath, logLevel, resizePoll, palette.<pair> (value fg,bg).",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := config.NewStore(root.configPath)
				if err != nil {
					return err
				}
				if err := store.Update(func(cfg *config.Config) error {
					return cfg.Set(args[0], args[1])
				}); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], store.Path())
				return nil
			},
		},
	)
	return cmd
}
