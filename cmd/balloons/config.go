package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-drive/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search and flag overrides, as YAML.

Search order:
  1. --config <path>
  2. $BALLOONS_CONFIG
  3. ~/.balloons/config.yaml
  4. ./configs/balloons.yaml
  5. built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail("%v", err)
	}
}
