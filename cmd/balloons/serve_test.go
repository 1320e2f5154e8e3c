package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-drive/internal/config"
)

func TestServerConfig(t *testing.T) {
	defer func(addr, key string, idle int) {
		flagSSHAddr, flagHostKey, flagIdleTimeout = addr, key, idle
	}(flagSSHAddr, flagHostKey, flagIdleTimeout)

	game := config.Default()
	game.Car.MoveSpeed = 8
	logger := log.New(io.Discard)

	tests := []struct {
		name     string
		addr     string
		idle     int
		wantAddr string
		wantIdle time.Duration
	}{
		{"flags set", ":2222", 5, ":2222", 5 * time.Minute},
		{"empty flags keep defaults", "", 0, ":23234", 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagSSHAddr, flagHostKey, flagIdleTimeout = tt.addr, "/tmp/key", tt.idle

			cfg := serverConfig(game, logger)
			if cfg.Address != tt.wantAddr {
				t.Errorf("Address = %q, expected %q", cfg.Address, tt.wantAddr)
			}
			if cfg.IdleTimeout != tt.wantIdle {
				t.Errorf("IdleTimeout = %v, expected %v", cfg.IdleTimeout, tt.wantIdle)
			}
			if cfg.HostKeyPath != "/tmp/key" {
				t.Errorf("HostKeyPath = %q", cfg.HostKeyPath)
			}
			if cfg.Game.Car.MoveSpeed != 8 || cfg.Logger != logger {
				t.Error("game config and logger should be passed through")
			}
		})
	}
}
