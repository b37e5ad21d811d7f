package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivierh59500/netpulse-go/internal/network"
)

// clearEnv unsets the override variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvGridSize, EnvNodeColor, EnvIntensity, EnvAnimate, EnvSeed, EnvBackground, EnvDebug} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Engine.GridSize != 30 {
		t.Errorf("expected grid size 30, got %v", cfg.Engine.GridSize)
	}
	if cfg.Engine.NodeColor != "#00f5d4" {
		t.Errorf("expected node color #00f5d4, got %q", cfg.Engine.NodeColor)
	}
	if !cfg.Engine.Animate {
		t.Error("default animate should be true")
	}
	if cfg.Tuning != network.DefaultTuning() {
		t.Error("default tuning should match the network defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	if dir := ConfigDir(); dir != "/tmp/test-xdg/netpulse" {
		t.Errorf("expected /tmp/test-xdg/netpulse, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	if dir := ConfigDir(); dir != filepath.Join(home, ".config", "netpulse") {
		t.Errorf("unexpected config dir %q", dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Engine.GridSize = 45
	cfg.Engine.Animate = false
	cfg.Tuning.HubChance = 0.35

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Engine.GridSize != 45 {
		t.Errorf("expected grid size 45, got %v", loaded.Engine.GridSize)
	}
	if loaded.Engine.Animate {
		t.Error("expected animate false after load")
	}
	if loaded.Tuning.HubChance != 0.35 {
		t.Errorf("expected hub chance 0.35, got %v", loaded.Tuning.HubChance)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[engine]\nintensity = 0.25\n\n[tuning]\nlink_chance = 0.9\n"), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine.Intensity != 0.25 {
		t.Errorf("expected intensity 0.25, got %v", cfg.Engine.Intensity)
	}
	if cfg.Engine.GridSize != 30 || cfg.Tuning.HubMaxLinks != 5 {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Tuning.LinkChance != 0.9 {
		t.Errorf("expected link chance 0.9, got %v", cfg.Tuning.LinkChance)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := Load(""); err != nil {
		t.Errorf("missing default config should fall back to defaults: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing explicit config should fail")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"zero grid", "[engine]\ngrid_size = 0\n", "GridSize"},
		{"sub-pixel grid", "[engine]\ngrid_size = 0.05\n", "GridSize"},
		{"intensity above one", "[engine]\nintensity = 1.5\n", "Intensity"},
		{"bad background", "[engine]\nbackground = \"dark\"\n", "Background"},
		{"zero fps", "[render]\nfps = 0\n", "FPS"},
		{"probability above one", "[tuning]\nnode_chance = 2.0\n", "NodeChance"},
		{"unknown noise", "[tuning]\nnoise = \"worley\"\n", "Noise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte(tt.content), 0o644)

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention %s", err, tt.field)
			}
		})
	}
}

func TestValidateRejectsSubPixelGrid(t *testing.T) {
	cfg := Default()
	cfg.Engine.GridSize = 0.5
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "GridSize fails gte=1") {
		t.Errorf("expected grid size below one pixel to be rejected, got %v", err)
	}
}

func TestMalformedNodeColorIsAccepted(t *testing.T) {
	cfg := Default()
	cfg.Engine.NodeColor = "hsl(120, 50%, 50%)"
	if err := cfg.Validate(); err != nil {
		t.Errorf("node colors pass through unvalidated: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGridSize, "12.5")
	t.Setenv(EnvNodeColor, "rgb(1, 2, 3)")
	t.Setenv(EnvIntensity, "not-a-number")
	t.Setenv(EnvAnimate, "false")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvDebug, "yes")

	cfg := Default()
	ApplyEnv(cfg)

	if cfg.Engine.GridSize != 12.5 {
		t.Errorf("grid size = %v", cfg.Engine.GridSize)
	}
	if cfg.Engine.NodeColor != "rgb(1, 2, 3)" {
		t.Errorf("node color = %q", cfg.Engine.NodeColor)
	}
	if cfg.Engine.Intensity != 1 {
		t.Errorf("unparseable intensity should keep the default, got %v", cfg.Engine.Intensity)
	}
	if cfg.Engine.Animate {
		t.Error("animate should be false")
	}
	if cfg.Engine.Seed != 99 {
		t.Errorf("seed = %d", cfg.Engine.Seed)
	}
	if cfg.Log.Debug {
		t.Error("only true/false are accepted for booleans")
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	os.WriteFile(path, []byte("NETPULSE_SEED=1234\n"), 0o644)

	LoadEnv(path)

	cfg := Default()
	ApplyEnv(cfg)
	if cfg.Engine.Seed != 1234 {
		t.Errorf("seed from .env = %d, want 1234", cfg.Engine.Seed)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Engine.Seed = 5
	opts := cfg.EngineOptions()

	if opts.GridSize != cfg.Engine.GridSize || opts.Color != cfg.Engine.NodeColor || opts.Seed != 5 {
		t.Errorf("unexpected options %+v", opts)
	}
	if bg := cfg.BackgroundColor(); bg.R != 0x0a || bg.B != 0x0f || bg.A != 0xff {
		t.Errorf("unexpected background %v", bg)
	}
}
