package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arena/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective arena config",
	Long: `Print the arena config as YAML after the search path, --config and
--difficulty have been applied. Save the output to
~/.tankarena/configs/arena.yaml to customise every round.

With --defaults the built-in arena.yaml is printed as shipped, comments
included, ignoring any config on disk.

Examples:
  tankarena config
  tankarena config --defaults
  tankarena config --difficulty hard > ~/.tankarena/configs/arena.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data := config.DefaultYAML()
	if !flagDefaults {
		cfg, err := settings.LoadConfig()
		if err != nil {
			return err
		}
		if data, err = config.Marshal(cfg); err != nil {
			return err
		}
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
