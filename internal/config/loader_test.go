package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShooterExplicitPathMissing(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("a missing explicit config path should surface an error")
	}
}

func TestLoadShooterExplicitPathBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("player: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadShooter(path); err == nil {
		t.Fatal("an unparseable explicit config should surface an error")
	}
}

func TestLoadShooterExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte("player:\n  max_health: 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Player.MaxHealth != 250 {
		t.Errorf("max_health = %d, want 250", cfg.Player.MaxHealth)
	}
}

func TestLoadShooterEmbeddedFallback(t *testing.T) {
	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Player.MaxHealth <= 0 {
		t.Errorf("embedded default should set max_health, got %d", cfg.Player.MaxHealth)
	}
}
