// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/defs"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/input"
	"go-top-down-shooter/internal/physics"
	"go-top-down-shooter/internal/system"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

// Options configures a new session.
type Options struct {
	Gun    config.GunConfig
	Enemy  defs.EnemyDefinition
	Motion system.MotionMode
	Assets assets.Library
	Seed   int64 // 0 seeds from the clock
}

// DefaultOptions returns the reference tuning with physics-driven projectiles.
func DefaultOptions() Options {
	return Options{
		Gun:    config.DefaultGunConfig(),
		Enemy:  defs.DefaultEnemy(),
		Motion: system.MotionPhysics,
		Assets: assets.DefaultLibrary(),
	}
}

// Game holds the main game state and logic for one session. It owns the
// only gun; GunID, PlayerID and LevelID are fixed for its lifetime.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Physics         *physics.World
	Assets          assets.Library

	AimSystem        *system.AimSystem
	GunSystem        *system.GunSystem
	SpawnerSystem    *system.SpawnerSystem
	ProjectileSystem *system.ProjectileSystem
	PhysicsSystem    *system.PhysicsSystem
	MovementSystem   *system.MovementSystem
	CameraSystem     *system.CameraSystem
	EnemySystem      *system.EnemySystem
	DespawnSystem    *system.DespawnSystem
	VisualSystem     *system.VisualEffectSystem

	LevelID  types.EntityID
	PlayerID types.EntityID
	GunID    types.EntityID

	ShotsFired int
	Kills      int

	accumulator float64
	tornDown    bool
}

// NewGame validates opts and builds a session with its level, player and gun.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Gun.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	world := physics.NewWorld(config.WorldWidth, config.WorldHeight, config.PhysicsCell)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Physics:         world,
		Assets:          opts.Assets,
	}
	g.LevelID = ecs.SpawnLevel("Level")
	g.PlayerID = ecs.SpawnPlayer(opts.Assets.Level, g.LevelID)
	g.GunID = ecs.SpawnGun(entity.NewGunBundle(opts.Assets.Gun, opts.Gun), g.PlayerID)

	g.PhysicsSystem = system.NewPhysicsSystem(ecs, world, eventDispatcher)
	g.DespawnSystem = system.NewDespawnSystem(ecs, g.PhysicsSystem)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, opts.Assets.Gun, opts.Gun, opts.Motion, g.PhysicsSystem, g.LevelID)
	g.GunSystem = system.NewGunSystem(ecs, opts.Gun, g.SpawnerSystem, eventDispatcher)
	g.AimSystem = system.NewAimSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.VisualSystem = system.NewVisualEffectSystem(ecs)
	g.CameraSystem = system.NewCameraSystem(ecs)
	g.EnemySystem = system.NewEnemySystem(ecs, opts.Assets.Enemy, opts.Enemy, utils.NewPRNGService(opts.Seed),
		g.PhysicsSystem, g.DespawnSystem, eventDispatcher, g.LevelID)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.ShotFired, listener)
	eventDispatcher.Subscribe(event.ProjectileHit, listener)
	eventDispatcher.Subscribe(event.EnemyKilled, listener)

	log.Printf("Game: session started (motion=%s, ammo=%d)", opts.Motion, opts.Gun.MaxAmmo)
	return g, nil
}

// Update runs one variable-rate frame: player and camera, aim, gun countdown,
// fire and reload gates, enemies, then as many fixed ticks as the
// accumulated time allows. A broken single-gun invariant is returned as an
// error and must be treated as fatal.
func (g *Game) Update(deltaTime float64, in input.Snapshot) error {
	if g.tornDown {
		return nil
	}
	gunID, _, err := g.ECS.SingleGun()
	if err != nil {
		return fmt.Errorf("game update: %w", err)
	}
	if gunID != g.GunID {
		return fmt.Errorf("game update: gun %d is not the session gun %d: %w", gunID, g.GunID, entity.ErrMultipleGuns)
	}
	g.ECS.GameTime += deltaTime

	g.MovementSystem.MovePlayer(g.PlayerID, in, deltaTime)
	g.CameraSystem.Update(g.PlayerID)

	g.AimSystem.Update(g.GunID, in)
	extra := g.GunSystem.Tick(g.GunID, deltaTime)
	g.GunSystem.Pose(g.GunID, extra)
	if in.Fire {
		g.GunSystem.TryFire(g.GunID)
	}
	if in.Reload {
		g.GunSystem.TryReload(g.GunID)
	}

	if in.SpawnEnemy {
		g.EnemySystem.Spawn(g.PlayerID)
	}
	g.MovementSystem.Chase(g.PlayerID, deltaTime)
	g.EnemySystem.Animate(deltaTime)
	g.VisualSystem.Update(deltaTime)

	g.accumulator += deltaTime
	steps := 0
	for g.accumulator >= config.FixedTimestep && steps < config.MaxFixedStepsPerFrame {
		g.FixedUpdate(config.FixedTimestep)
		g.accumulator -= config.FixedTimestep
		steps++
	}
	if g.accumulator >= config.FixedTimestep {
		// Не догоняем: лишнее время отбрасывается, а не копится.
		g.accumulator = 0
	}
	return nil
}

// FixedUpdate advances projectile motion and physics by one fixed tick.
func (g *Game) FixedUpdate(fixedDelta float64) {
	g.ProjectileSystem.FixedUpdate(fixedDelta)
	escaped := g.PhysicsSystem.Step(fixedDelta)
	g.DespawnSystem.Update(escaped)
}

// Teardown despawns the level and everything parented to it.
func (g *Game) Teardown() {
	if g.tornDown {
		return
	}
	g.DespawnSystem.DespawnRecursive(g.LevelID)
	g.tornDown = true
	log.Printf("Game: level torn down (shots=%d, kills=%d)", g.ShotsFired, g.Kills)
}

// Gun returns the session gun.
func (g *Game) Gun() (*component.Gun, bool) {
	gun, ok := g.ECS.Guns[g.GunID]
	return gun, ok
}
