package config

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultGunConfig_Valid(t *testing.T) {
	cfg := DefaultGunConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.MaxAmmo != 7 || cfg.FireCooldownSecs != 0.5 || cfg.ReloadSecs != 2.0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ProjectileSpeed != 320 || cfg.ProjectileRadius != 8 {
		t.Fatalf("unexpected projectile defaults: %+v", cfg)
	}
}

func TestGunConfig_ValidateRejects(t *testing.T) {
	cases := map[string]func(*GunConfig){
		"negative cooldown": func(c *GunConfig) { c.FireCooldownSecs = -1 },
		"negative reload":   func(c *GunConfig) { c.ReloadSecs = -0.1 },
		"zero speed":        func(c *GunConfig) { c.ProjectileSpeed = 0 },
		"zero ammo":         func(c *GunConfig) { c.MaxAmmo = 0 },
		"zero radius":       func(c *GunConfig) { c.ProjectileRadius = 0 },
		"NaN cooldown":      func(c *GunConfig) { c.FireCooldownSecs = math.NaN() },
		"NaN reload":        func(c *GunConfig) { c.ReloadSecs = math.NaN() },
		"infinite reload":   func(c *GunConfig) { c.ReloadSecs = math.Inf(1) },
		"NaN speed":         func(c *GunConfig) { c.ProjectileSpeed = math.NaN() },
		"infinite speed":    func(c *GunConfig) { c.ProjectileSpeed = math.Inf(1) },
		"NaN radius":        func(c *GunConfig) { c.ProjectileRadius = math.NaN() },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultGunConfig()
			mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidGunConfig) {
				t.Fatalf("expected ErrInvalidGunConfig, got %v", err)
			}
		})
	}
}
