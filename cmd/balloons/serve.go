package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-drive/internal/config"
	"github.com/vovakirdan/balloon-drive/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game with the server's configuration.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.balloons/host_key

Examples:
  balloons serve                           # Listen on :23234 with auto-generated key
  balloons serve --ssh :2222               # Listen on port 2222
  balloons serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting (0 = server default)")
}

func runServe(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr, "balloons-ssh")
	if err != nil {
		fail("%v", err)
	}

	cfg := serverConfig(gameCfg, logger)
	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Balloon Drive SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// serverConfig layers the serve flags over the server defaults.
func serverConfig(gameCfg config.Config, logger *log.Logger) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Game = gameCfg
	cfg.Logger = logger
	cfg.HostKeyPath = flagHostKey
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return cfg
}
