package system

import (
	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/defs"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/physics"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

type rig struct {
	ecs       *entity.ECS
	events    *event.Dispatcher
	world     *physics.World
	physics   *PhysicsSystem
	despawner *DespawnSystem
	spawner   *SpawnerSystem
	guns      *GunSystem
	aim       *AimSystem
	enemies   *EnemySystem
	level     types.EntityID
	player    types.EntityID
	gun       types.EntityID
	cfg       config.GunConfig
}

func newRig(mode MotionMode) *rig {
	cfg := config.DefaultGunConfig()
	lib := assets.DefaultLibrary()
	ecs := entity.NewECS()
	events := event.NewDispatcher()
	world := physics.NewWorld(config.WorldWidth, config.WorldHeight, config.PhysicsCell)

	r := &rig{ecs: ecs, events: events, world: world, cfg: cfg}
	r.level = ecs.SpawnLevel("test")
	r.player = ecs.SpawnPlayer(lib.Level, r.level)
	r.gun = ecs.SpawnGun(entity.NewGunBundle(lib.Gun, cfg), r.player)

	r.physics = NewPhysicsSystem(ecs, world, events)
	r.despawner = NewDespawnSystem(ecs, r.physics)
	r.spawner = NewSpawnerSystem(ecs, lib.Gun, cfg, mode, r.physics, r.level)
	r.guns = NewGunSystem(ecs, cfg, r.spawner, events)
	r.aim = NewAimSystem(ecs)
	r.enemies = NewEnemySystem(ecs, lib.Enemy, defs.DefaultEnemy(), utils.NewPRNGService(1), r.physics, r.despawner, events, r.level)
	return r
}

func (r *rig) countEvents(t event.EventType) *int {
	n := new(int)
	r.events.Subscribe(t, event.ListenerFunc(func(event.Event) { *n++ }))
	return n
}
