package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGunConfig is returned by Validate for out-of-range tuning values.
var ErrInvalidGunConfig = errors.New("invalid gun config")

// GunConfig holds the tunable gun constants.
type GunConfig struct {
	FireCooldownSecs float64 `json:"fire_cooldown_secs"`
	ReloadSecs       float64 `json:"reload_secs"`
	ProjectileSpeed  float64 `json:"projectile_speed"`
	MaxAmmo          int     `json:"max_ammo"`
	ProjectileRadius float64 `json:"projectile_radius"`
}

// DefaultGunConfig returns the reference tuning: 0.5s cooldown, 2s reload,
// 320 px/s projectiles, 7 rounds, 8 px collider.
func DefaultGunConfig() GunConfig {
	return GunConfig{
		FireCooldownSecs: 0.5,
		ReloadSecs:       2.0,
		ProjectileSpeed:  320.0,
		MaxAmmo:          7,
		ProjectileRadius: 8.0,
	}
}

// Validate checks that every value is usable by the gun state machine.
func (c GunConfig) Validate() error {
	switch {
	case !finite(c.FireCooldownSecs):
		return fmt.Errorf("%w: fire_cooldown_secs must be finite, got %v", ErrInvalidGunConfig, c.FireCooldownSecs)
	case !finite(c.ReloadSecs):
		return fmt.Errorf("%w: reload_secs must be finite, got %v", ErrInvalidGunConfig, c.ReloadSecs)
	case !finite(c.ProjectileSpeed):
		return fmt.Errorf("%w: projectile_speed must be finite, got %v", ErrInvalidGunConfig, c.ProjectileSpeed)
	case !finite(c.ProjectileRadius):
		return fmt.Errorf("%w: projectile_radius must be finite, got %v", ErrInvalidGunConfig, c.ProjectileRadius)
	case c.FireCooldownSecs < 0:
		return fmt.Errorf("%w: fire_cooldown_secs must be >= 0, got %v", ErrInvalidGunConfig, c.FireCooldownSecs)
	case c.ReloadSecs < 0:
		return fmt.Errorf("%w: reload_secs must be >= 0, got %v", ErrInvalidGunConfig, c.ReloadSecs)
	case c.ProjectileSpeed <= 0:
		return fmt.Errorf("%w: projectile_speed must be > 0, got %v", ErrInvalidGunConfig, c.ProjectileSpeed)
	case c.MaxAmmo <= 0:
		return fmt.Errorf("%w: max_ammo must be > 0, got %d", ErrInvalidGunConfig, c.MaxAmmo)
	case c.ProjectileRadius <= 0:
		return fmt.Errorf("%w: projectile_radius must be > 0, got %v", ErrInvalidGunConfig, c.ProjectileRadius)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
