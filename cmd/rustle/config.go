package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-rustle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game tuning that play would use, after the config file
search and the difficulty preset, as YAML.

Examples:
  rustle config > ~/.rustle/configs/rustle.yaml
  rustle config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail(err)
	}
}
