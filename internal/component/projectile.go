// internal/component/projectile.go
package component

import "go-top-down-shooter/internal/physics"

// Projectile помечает летящий снаряд.
type Projectile struct {
	Speed  float64
	Radius float64
	Damage float64
}

// RigidBody связывает сущность с телом во внешней физике.
type RigidBody struct {
	Body physics.BodyID
}
