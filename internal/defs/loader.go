// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-top-down-shooter/internal/config"
)

// LoadGunDefinition reads gun tuning from a JSON file. Fields missing from
// the file keep their DefaultGunConfig values.
func LoadGunDefinition(path string) (config.GunConfig, error) {
	cfg := config.DefaultGunConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read gun definition file: %w", err)
	}
	if err := json.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal gun definition: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("gun definition %s: %w", path, err)
	}
	log.Printf("Loaded gun definition from %s: %+v", path, cfg)
	return cfg, nil
}

// LoadEnemyDefinitions reads the enemy configuration file, keyed by ID.
func LoadEnemyDefinitions(path string) (map[string]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition %q has no id", def.Name)
		}
		base := DefaultEnemy()
		if def.Health <= 0 {
			def.Health = base.Health
		}
		if def.Speed <= 0 {
			def.Speed = base.Speed
		}
		if def.Radius <= 0 {
			def.Radius = base.Radius
		}
		library[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions", len(library))
	return library, nil
}
