package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	Long: `Print the settings worm would use, after applying the file found via
--config, ~/.worm/worm.yaml or ./configs/worm.yaml over the defaults.

Examples:
  worm config
  worm config --defaults > ~/.worm/worm.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if config.Resolve(flagConfig) == "" {
		if path := config.UserConfigPath(); path != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "no settings file found, using defaults (save one to %s)\n", path)
		}
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
