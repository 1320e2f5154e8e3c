package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-drive/internal/balloons"
	"github.com/vovakirdan/balloon-drive/internal/core"
	"github.com/vovakirdan/balloon-drive/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A/H   - Drive left
  Right/D/L  - Drive right
  Ctrl+S     - Save a text screenshot to ~/.balloons/screenshots
  ?          - Toggle help
  Q/Esc      - Quit

Terminals only report key presses. A direction stays held while the
terminal keeps repeating it and is released after terminal.key_hold_ms
without a repeat. The default of 600 ms covers the usual OS delay before
key repeat starts; if the car stutters when you hold an arrow, raise it,
and if it coasts too long after you let go, lower it toward your
repeat delay.

Examples:
  balloons play
  balloons play --fps 240
  balloons play --log-file /tmp/balloons.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := playTerminal(cmd, os.Stdout); err != nil {
		fail("%v", err)
	}
}

// openLog is swapped in tests to observe the log file lifecycle.
var openLog = openLogFile

// playTerminal runs the terminal game and prints the final score to out.
// It returns instead of exiting so deferred cleanup always runs.
func playTerminal(cmd *cobra.Command, out io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stderr is the game screen, so logs go to a file or nowhere.
	logOut, closeLog, err := openLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut, "balloons")
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.HostRate = cfg.Terminal.HostRate
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	game := balloons.New(cfg)
	logger.Info("game started", "width", rc.ScreenW, "height", rc.ScreenH, "host_rate", rc.HostRate)

	score, err := tui.Run(game, rc, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("game ended", "score", score)
	fmt.Fprintf(out, "Final score: %d\n", score)
	return nil
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}
