package system

import (
	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/physics"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

// MotionMode selects who moves projectiles.
type MotionMode int

const (
	// MotionKinematic stores a Velocity that ProjectileSystem integrates; a
	// kinematic body follows it for hit detection.
	MotionKinematic MotionMode = iota
	// MotionPhysics hands the velocity to a dynamic physics body.
	MotionPhysics
)

func (m MotionMode) String() string {
	if m == MotionPhysics {
		return "physics"
	}
	return "kinematic"
}

// ParseMotionMode maps "kinematic" or "physics" to a MotionMode.
func ParseMotionMode(s string) (MotionMode, bool) {
	switch s {
	case "kinematic":
		return MotionKinematic, true
	case "physics":
		return MotionPhysics, true
	}
	return MotionKinematic, false
}

// SpawnerSystem creates projectile entities for the gun.
type SpawnerSystem struct {
	ecs     *entity.ECS
	assets  assets.GunAssets
	cfg     config.GunConfig
	mode    MotionMode
	physics *PhysicsSystem
	level   types.EntityID
}

func NewSpawnerSystem(ecs *entity.ECS, a assets.GunAssets, cfg config.GunConfig, mode MotionMode, physicsSystem *PhysicsSystem, level types.EntityID) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:     ecs,
		assets:  a,
		cfg:     cfg,
		mode:    mode,
		physics: physicsSystem,
		level:   level,
	}
}

// Mode returns the motion strategy new projectiles use.
func (s *SpawnerSystem) Mode() MotionMode {
	return s.mode
}

// Spawn creates a projectile at origin travelling along angle at the
// configured speed, parented under the level. origin is in world space; the
// level container sits at the world origin.
func (s *SpawnerSystem) Spawn(origin component.Transform, angle float64) types.EntityID {
	dx, dy := utils.FromAngle(angle)
	velocity := component.Velocity{X: dx * s.cfg.ProjectileSpeed, Y: dy * s.cfg.ProjectileSpeed}

	bundle := entity.NewProjectileBundle(s.assets, origin, velocity)
	bundle.Projectile.Radius = s.cfg.ProjectileRadius
	if s.mode == MotionPhysics && s.physics != nil {
		bundle.Velocity = nil
	}
	id := s.ecs.SpawnProjectile(bundle, s.level)

	if s.physics == nil {
		return id
	}
	def := physics.BodyDef{
		Kind:         physics.Dynamic,
		Layer:        physics.LayerProjectile,
		X:            origin.X,
		Y:            origin.Y,
		VelocityX:    velocity.X,
		VelocityY:    velocity.Y,
		Rotation:     origin.Rotation,
		LockRotation: true,
		Radius:       s.cfg.ProjectileRadius,
	}
	if bundle.Velocity != nil {
		// Датчик попаданий: позицию задаёт ProjectileSystem, физика только ищет контакты.
		def.Kind = physics.Kinematic
		def.VelocityX, def.VelocityY = 0, 0
	}
	s.physics.Attach(id, def)
	return id
}
