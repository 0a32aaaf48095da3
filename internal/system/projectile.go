// internal/system/projectile.go
package system

import (
	"go-top-down-shooter/internal/entity"
)

// ProjectileSystem двигает снаряды с собственной скоростью (без физики).
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// FixedUpdate advances every manually integrated projectile by velocity·dt.
// It must be driven with the fixed timestep, not the frame delta.
func (s *ProjectileSystem) FixedUpdate(deltaTime float64) {
	for id := range s.ecs.Projectiles {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue // движением управляет физика
		}
		pos := s.ecs.Transforms[id]
		if pos == nil {
			s.ecs.Despawn(id)
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
	}
}
