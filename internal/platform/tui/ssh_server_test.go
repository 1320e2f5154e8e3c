package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerRejectsInvalidGameConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Game.Loop.TickRate = 0

	if _, err := NewSSHServer(cfg); err == nil || !strings.Contains(err.Error(), "tick_rate") {
		t.Errorf("NewSSHServer() error = %v, expected tick_rate validation error", err)
	}
}

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}
