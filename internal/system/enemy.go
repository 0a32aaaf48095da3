package system

import (
	"log"

	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/defs"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/physics"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

// EnemySystem spawns, animates and damages enemies.
type EnemySystem struct {
	ecs             *entity.ECS
	assets          assets.EnemyAssets
	def             defs.EnemyDefinition
	rng             *utils.PRNGService
	physics         *PhysicsSystem
	despawner       *DespawnSystem
	eventDispatcher *event.Dispatcher
	level           types.EntityID
}

func NewEnemySystem(ecs *entity.ECS, a assets.EnemyAssets, def defs.EnemyDefinition, rng *utils.PRNGService,
	physicsSystem *PhysicsSystem, despawner *DespawnSystem, eventDispatcher *event.Dispatcher, level types.EntityID) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		assets:          a,
		def:             def,
		rng:             rng,
		physics:         physicsSystem,
		despawner:       despawner,
		eventDispatcher: eventDispatcher,
		level:           level,
	}
}

// Spawn places a new enemy on a ring around the target.
func (s *EnemySystem) Spawn(targetID types.EntityID) types.EntityID {
	center := s.ecs.WorldTransform(targetID)
	x, y := s.rng.PointOnRing(center.X, center.Y, config.EnemySpawnRadius)
	return s.SpawnAt(x, y)
}

// SpawnAt places a new enemy at (x, y), clamped into the world.
func (s *EnemySystem) SpawnAt(x, y float64) types.EntityID {
	halfW := config.WorldWidth/2 - s.def.Radius
	halfH := config.WorldHeight/2 - s.def.Radius
	x = utils.Clamp(x, -halfW, halfW)
	y = utils.Clamp(y, -halfH, halfH)

	enemy := component.Enemy{
		DefID:  s.def.ID,
		Health: s.def.Health,
		Speed:  s.def.Speed,
		Radius: s.def.Radius,
	}
	id := s.ecs.SpawnEnemy(entity.NewEnemyBundle(s.assets, enemy, x, y), s.level)
	if s.physics != nil {
		s.physics.Attach(id, physics.BodyDef{
			Kind:   physics.Kinematic,
			Layer:  physics.LayerEnemy,
			X:      x,
			Y:      y,
			Radius: s.def.Radius,
		})
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}

// Animate advances every enemy animation on its repeating frame timer.
func (s *EnemySystem) Animate(deltaTime float64) {
	for id, anim := range s.ecs.EnemyAnimations {
		AdvanceAnimation(anim, deltaTime)
		if anim.Changed {
			if sprite, ok := s.ecs.Sprites[id]; ok {
				sprite.Frame = anim.Frame
			}
		}
	}
}

// AdvanceAnimation ticks a repeating frame timer. Changed reports whether at
// least one frame boundary was crossed during this tick.
func AdvanceAnimation(anim *component.EnemyAnimation, deltaTime float64) {
	anim.Changed = false
	if anim.FrameDuration <= 0 || anim.FrameCount <= 0 {
		return
	}
	anim.Elapsed += deltaTime
	for anim.Elapsed >= anim.FrameDuration {
		anim.Elapsed -= anim.FrameDuration
		anim.Frame = (anim.Frame + 1) % anim.FrameCount
		anim.Changed = true
	}
}

// ApplyDamage subtracts damage from an enemy and despawns it at zero health.
// It reports whether the enemy died.
func (s *EnemySystem) ApplyDamage(id types.EntityID, damage float64) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}
	enemy.Health -= damage
	if enemy.Health > 0 {
		s.ecs.DamageFlashes[id] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
		return false
	}
	s.despawner.Despawn(id)
	log.Printf("EnemySystem: enemy %d destroyed", id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	return true
}
