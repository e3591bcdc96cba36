package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shortcuts/internal/config"
)

func (a *app) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file from defaults, environment and flags",
		Long: `Write a config file from defaults, environment and flags. An existing
config file is not read, so --force can replace a broken one. A store path
equal to the default (shortcuts.json in the working directory) is left out.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupDefaults,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg, err := a.cfg.Portable()
			if err != nil {
				return err
			}
			if err := cfg.Write(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	if p := os.Getenv(config.ConfigEnv); p != "" {
		return p
	}
	return config.DefaultPath()
}
