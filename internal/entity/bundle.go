package entity

import (
	"math"

	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/types"
)

// GunBundle is the initial component set of the player's gun.
type GunBundle struct {
	Sprite    component.Sprite
	Gun       component.Gun
	Transform component.Transform
}

// NewGunBundle returns a gun loaded to max ammo, Ready, held GunOffset
// in front of its parent.
func NewGunBundle(a assets.GunAssets, cfg config.GunConfig) GunBundle {
	return GunBundle{
		Sprite:    component.Sprite{Image: a.Gun},
		Gun:       component.NewGun(cfg.MaxAmmo),
		Transform: component.Transform{X: config.GunOffset},
	}
}

// SpawnGun creates the gun entity under parent.
func (ecs *ECS) SpawnGun(b GunBundle, parent types.EntityID) types.EntityID {
	id := ecs.NewEntity()
	sprite, gun, transform := b.Sprite, b.Gun, b.Transform
	ecs.Sprites[id] = &sprite
	ecs.Guns[id] = &gun
	ecs.Transforms[id] = &transform
	ecs.SetParent(id, parent)
	return id
}

// ProjectileBundle is the initial component set of a bullet. Velocity is
// nil when a physics body owns the motion.
type ProjectileBundle struct {
	Sprite     component.Sprite
	Projectile component.Projectile
	Transform  component.Transform
	Velocity   *component.Velocity
}

// NewProjectileBundle builds a manually integrated bullet at transform
// moving with velocity.
func NewProjectileBundle(a assets.GunAssets, transform component.Transform, velocity component.Velocity) ProjectileBundle {
	return ProjectileBundle{
		Sprite: component.Sprite{Image: a.Bullet},
		Projectile: component.Projectile{
			Speed:  math.Hypot(velocity.X, velocity.Y),
			Damage: config.ProjectileDamage,
		},
		Transform: transform,
		Velocity:  &velocity,
	}
}

// SpawnProjectile creates the bullet entity under parent.
func (ecs *ECS) SpawnProjectile(b ProjectileBundle, parent types.EntityID) types.EntityID {
	id := ecs.NewEntity()
	sprite, proj, transform := b.Sprite, b.Projectile, b.Transform
	ecs.Sprites[id] = &sprite
	ecs.Projectiles[id] = &proj
	ecs.Transforms[id] = &transform
	if b.Velocity != nil {
		vel := *b.Velocity
		ecs.Velocities[id] = &vel
	}
	ecs.SetParent(id, parent)
	return id
}

// SpawnLevel creates the root container everything in a session hangs off.
func (ecs *ECS) SpawnLevel(name string) types.EntityID {
	id := ecs.NewEntity()
	ecs.Levels[id] = &component.Level{Name: name}
	ecs.Transforms[id] = &component.Transform{}
	return id
}

// SpawnPlayer creates the player at the level origin.
func (ecs *ECS) SpawnPlayer(a assets.LevelAssets, level types.EntityID) types.EntityID {
	id := ecs.NewEntity()
	ecs.Players[id] = &component.Player{Speed: config.PlayerSpeed, Radius: config.PlayerRadius}
	ecs.Transforms[id] = &component.Transform{}
	ecs.Sprites[id] = &component.Sprite{Image: a.Player}
	ecs.SetParent(id, level)
	return id
}

// EnemyBundle is the initial component set of a chasing enemy.
type EnemyBundle struct {
	Sprite    component.Sprite
	Enemy     component.Enemy
	Animation component.EnemyAnimation
	Transform component.Transform
}

// NewEnemyBundle places an enemy at (x, y) with the given stats.
func NewEnemyBundle(a assets.EnemyAssets, enemy component.Enemy, x, y float64) EnemyBundle {
	return EnemyBundle{
		Sprite: component.Sprite{Image: a.Image},
		Enemy:  enemy,
		Animation: component.EnemyAnimation{
			FrameDuration: config.EnemyFrameDuration,
			FrameCount:    config.EnemyFrameCount,
		},
		Transform: component.Transform{X: x, Y: y},
	}
}

// SpawnEnemy creates the enemy entity under parent.
func (ecs *ECS) SpawnEnemy(b EnemyBundle, parent types.EntityID) types.EntityID {
	id := ecs.NewEntity()
	sprite, enemy, anim, transform := b.Sprite, b.Enemy, b.Animation, b.Transform
	ecs.Sprites[id] = &sprite
	ecs.Enemies[id] = &enemy
	ecs.EnemyAnimations[id] = &anim
	ecs.Transforms[id] = &transform
	ecs.SetParent(id, parent)
	return id
}
