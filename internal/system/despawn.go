package system

import (
	"math"

	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/types"
)

// DespawnSystem removes entities together with their physics bodies and
// culls projectiles that flew out of play.
type DespawnSystem struct {
	ecs      *entity.ECS
	physics  *PhysicsSystem
	maxRange float64
}

func NewDespawnSystem(ecs *entity.ECS, physicsSystem *PhysicsSystem) *DespawnSystem {
	return &DespawnSystem{ecs: ecs, physics: physicsSystem, maxRange: config.ProjectileMaxRange}
}

// Despawn removes a single entity.
func (s *DespawnSystem) Despawn(id types.EntityID) {
	if body, ok := s.ecs.Despawn(id); ok && s.physics != nil {
		s.physics.Detach(body)
	}
}

// DespawnRecursive removes id and everything parented below it.
func (s *DespawnSystem) DespawnRecursive(id types.EntityID) {
	for _, child := range s.ecs.Descendants(id) {
		s.Despawn(child)
	}
	s.Despawn(id)
}

// Update despawns escaped bodies and manually integrated projectiles farther
// than the maximum range from the camera.
func (s *DespawnSystem) Update(escaped []types.EntityID) int {
	removed := 0
	for _, id := range escaped {
		s.Despawn(id)
		removed++
	}
	cam := s.ecs.Camera
	for id := range s.ecs.Projectiles {
		if _, kinematic := s.ecs.Velocities[id]; !kinematic {
			continue
		}
		pos := s.ecs.Transforms[id]
		if pos == nil || math.Hypot(pos.X-cam.X, pos.Y-cam.Y) > s.maxRange {
			s.Despawn(id)
			removed++
		}
	}
	return removed
}
