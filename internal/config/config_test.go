package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := Default()
	if cfg.Viewport != def.Viewport || cfg.Car != def.Car || cfg.Loop != def.Loop || cfg.Terminal != def.Terminal {
		t.Errorf("embedded config %+v differs from Default() %+v", cfg, def)
	}
	if len(cfg.Balloons) != len(def.Balloons) {
		t.Fatalf("embedded has %d balloons, Default() has %d", len(cfg.Balloons), len(def.Balloons))
	}
	for i := range def.Balloons {
		if cfg.Balloons[i] != def.Balloons[i] {
			t.Errorf("balloon %d: embedded %+v, Default() %+v", i, cfg.Balloons[i], def.Balloons[i])
		}
	}
}

func TestDerivedDurations(t *testing.T) {
	cfg := Default()

	if got := cfg.Timestep(); got != 1000.0/60.0 {
		t.Errorf("Timestep() = %v, expected %v", got, 1000.0/60.0)
	}
	if got := cfg.FrameGate(); got != 1000.0/60.0 {
		t.Errorf("FrameGate() = %v, expected %v", got, 1000.0/60.0)
	}
	if got := cfg.KeyHold(); got != 600*time.Millisecond {
		t.Errorf("KeyHold() = %v, expected 600ms", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero viewport", func(c *Config) { c.Viewport.Height = 0 }, "viewport"},
		{"negative move speed", func(c *Config) { c.Car.MoveSpeed = -1 }, "move_speed"},
		{"zero tick rate", func(c *Config) { c.Loop.TickRate = 0 }, "tick_rate"},
		{"zero frame cap", func(c *Config) { c.Loop.FrameCap = 0 }, "frame_cap"},
		{"negative catch-up", func(c *Config) { c.Loop.MaxCatchUp = -2 }, "max_catch_up"},
		{"zero host rate", func(c *Config) { c.Terminal.HostRate = 0 }, "host_rate"},
		{"negative key hold", func(c *Config) { c.Terminal.KeyHoldMS = -1 }, "key_hold_ms"},
		{"no balloons", func(c *Config) { c.Balloons = nil }, "balloon"},
		{"still balloon", func(c *Config) { c.Balloons[2].Speed = 0 }, "balloons[2].speed"},
		{"bad color", func(c *Config) { c.Balloons[1].Color = "plaid" }, "plaid"},
		{"nan viewport width", func(c *Config) { c.Viewport.Width = math.NaN() }, "viewport.width"},
		{"infinite viewport height", func(c *Config) { c.Viewport.Height = math.Inf(1) }, "viewport.height"},
		{"nan start x", func(c *Config) { c.Car.StartX = math.NaN() }, "car.start_x"},
		{"infinite move speed", func(c *Config) { c.Car.MoveSpeed = math.Inf(1) }, "car.move_speed"},
		{"nan balloon x", func(c *Config) { c.Balloons[0].X = math.NaN() }, "balloons[0].x"},
		{"negative infinite balloon y", func(c *Config) { c.Balloons[3].Y = math.Inf(-1) }, "balloons[3].y"},
		{"nan balloon speed", func(c *Config) { c.Balloons[1].Speed = math.NaN() }, "balloons[1].speed"},
		{"infinite balloon speed", func(c *Config) { c.Balloons[2].Speed = math.Inf(1) }, "balloons[2].speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseRejectsNonFiniteValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"nan width", "viewport: {width: .nan, height: 600}\n", "viewport.width"},
		{"inf height", "viewport: {width: 800, height: .inf}\n", "viewport.height"},
		{"nan speed", "balloons:\n  - {x: 150, y: 600, color: red, speed: .nan}\n", "balloons[0].speed"},
		{"inf y", "balloons:\n  - {x: 150, y: -.inf, color: red, speed: 1}\n", "balloons[0].y"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			err = cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadRejectsNonFiniteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("car: {move_speed: .nan}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "car.move_speed") {
		t.Errorf("Load() error = %v, expected car.move_speed to be rejected", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("car:\n  move_speed: 8\nloop:\n  max_catch_up: 10\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Car.MoveSpeed != 8 {
		t.Errorf("move_speed = %v, expected 8", cfg.Car.MoveSpeed)
	}
	if cfg.Loop.MaxCatchUp != 10 {
		t.Errorf("max_catch_up = %v, expected 10", cfg.Loop.MaxCatchUp)
	}
	if cfg.Loop.TickRate != 60 || cfg.Viewport.Height != 600 || len(cfg.Balloons) != 4 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestParseBalloonListReplacesDefault(t *testing.T) {
	cfg, err := Parse([]byte("balloons:\n  - {x: 10, y: 20, color: magenta, speed: 2}\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.Balloons) != 1 {
		t.Fatalf("expected 1 balloon, got %d", len(cfg.Balloons))
	}
	want := BalloonConfig{X: 10, Y: 20, Color: "magenta", Speed: 2}
	if cfg.Balloons[0] != want {
		t.Errorf("balloon = %+v, expected %+v", cfg.Balloons[0], want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("viewport:\n  width: 1024\n  height: 768\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Viewport.Width != 1024 || cfg.Viewport.Height != 768 {
		t.Errorf("viewport = %+v, expected 1024x768", cfg.Viewport)
	}
}

func TestLoadEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(path, []byte("car:\n  start_x: 400\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Car.StartX != 400 {
		t.Errorf("start_x = %v, expected 400", cfg.Car.StartX)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("viewport: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("loop:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() of an invalid config should fail validation")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Balloons) != 4 || cfg.Loop.TickRate != 60 {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "move_speed: 5") {
		t.Errorf("marshaled config should use yaml keys, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("marshaled default no longer validates: %v", err)
	}
}
