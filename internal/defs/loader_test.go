package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-top-down-shooter/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGunDefinition_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "gun.json", `{"max_ammo": 12, "fire_cooldown_secs": 0.25}`)
	cfg, err := LoadGunDefinition(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxAmmo != 12 || cfg.FireCooldownSecs != 0.25 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ReloadSecs != 2.0 || cfg.ProjectileSpeed != 320 || cfg.ProjectileRadius != 8 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadGunDefinition_Invalid(t *testing.T) {
	path := writeFile(t, "gun.json", `{"max_ammo": 0}`)
	if _, err := LoadGunDefinition(path); !errors.Is(err, config.ErrInvalidGunConfig) {
		t.Fatalf("expected ErrInvalidGunConfig, got %v", err)
	}
}

func TestLoadGunDefinition_MissingFile(t *testing.T) {
	_, err := LoadGunDefinition(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadEnemyDefinitions(t *testing.T) {
	path := writeFile(t, "enemies.json", `[
		{"id": "DEFAULT_ENEMY", "name": "Tetra", "health": 20, "speed": 30},
		{"id": "FAST", "name": "Dart", "speed": 90, "radius": 10}
	]`)
	lib, err := LoadEnemyDefinitions(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib) != 2 {
		t.Fatalf("len = %d, want 2", len(lib))
	}
	if lib["DEFAULT_ENEMY"].Radius != config.EnemyRadius {
		t.Fatalf("missing radius should default: %+v", lib["DEFAULT_ENEMY"])
	}
	if fast := lib["FAST"]; fast.Health != config.EnemyHealth || fast.Speed != 90 {
		t.Fatalf("unexpected FAST: %+v", fast)
	}
}

func TestLoadEnemyDefinitions_MissingID(t *testing.T) {
	path := writeFile(t, "enemies.json", `[{"name": "Nameless"}]`)
	if _, err := LoadEnemyDefinitions(path); err == nil {
		t.Fatal("expected error for definition without id")
	}
}
