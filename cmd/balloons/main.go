// balloons is a small arcade game: drive a car and catch rising balloons.
//
// Usage:
//
//	balloons play            - Play in the terminal
//	balloons window          - Play in a desktop window
//	balloons serve           - Start SSH server for remote play
//	balloons config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (default: search ~/.balloons, ./configs)
//	--fps <rate>          - Terminal host callback rate (default: from config)
//	--max-catch-up <n>    - Cap simulation steps per frame (0 = unbounded)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination for the terminal game
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-drive/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagMaxCatchUp int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloon Drive - catch rising balloons with your car",
	Long: `Balloon Drive is a small arcade game. Drive the car left and right
and catch the balloons as they rise past it.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  balloons play
  balloons window --max-catch-up 10
  balloons serve --ssh :2222
  balloons config > ~/.balloons/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Terminal host callback rate (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxCatchUp, "max-catch-up", 0, "Max simulation steps per frame (0 = unbounded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write terminal game logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	applyOverrides(&cfg, flags.Changed("fps"), flags.Changed("max-catch-up"))
	return cfg, cfg.Validate()
}

// applyOverrides copies explicitly set flags into cfg.
func applyOverrides(cfg *config.Config, fpsSet, catchUpSet bool) {
	if fpsSet && flagFPS > 0 {
		cfg.Terminal.HostRate = flagFPS
	}
	if catchUpSet {
		cfg.Loop.MaxCatchUp = flagMaxCatchUp
	}
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
