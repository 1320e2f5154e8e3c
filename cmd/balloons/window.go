package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-drive/internal/balloons"
	"github.com/vovakirdan/balloon-drive/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at the configured viewport size.

Controls:
  Left/A     - Drive left
  Right/D    - Drive right
  Q/Esc      - Quit

Examples:
  balloons window
  balloons window --config ./configs/balloons.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr, "balloons")
	if err != nil {
		fail("%v", err)
	}

	game := balloons.New(cfg)
	if err := window.Run(game, logger); err != nil {
		fail("running window: %v", err)
	}

	logger.Info("game ended", "score", game.Score())
	fmt.Printf("Final score: %d\n", game.Score())
}
