// internal/defs/enemies.go
package defs

import "go-top-down-shooter/internal/config"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health float64 `json:"health"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
}

// DefaultEnemy is the chaser used when no definitions file is loaded.
func DefaultEnemy() EnemyDefinition {
	return EnemyDefinition{
		ID:     config.EnemyDefaultDefID,
		Name:   "Tetra",
		Health: config.EnemyHealth,
		Speed:  config.EnemySpeed,
		Radius: config.EnemyRadius,
	}
}
