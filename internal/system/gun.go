package system

import (
	"log"
	"math"

	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/types"
	"go-top-down-shooter/internal/utils"
)

// timerEpsilon is the remainder below which a countdown counts as expired.
// Frame deltas such as 1/60 s are not exact in binary and leave ~1e-16 behind.
const timerEpsilon = 1e-9

// countdown returns remaining−dt, clamped at zero and snapped to zero
// within timerEpsilon.
func countdown(remaining, dt float64) float64 {
	remaining = math.Max(0, remaining-dt)
	if remaining <= timerEpsilon {
		return 0
	}
	return remaining
}

// TickGun advances the gun's countdown by dt. A countdown that reaches zero
// returns the gun to Ready; an expired reload also refills the magazine.
// extra is the decorative rotation for the current state: the remaining
// cooldown while Shooting, remaining·π while Reloading.
func TickGun(gun *component.Gun, dt float64) (extra float64, reloaded bool) {
	switch st := gun.State.(type) {
	case component.Shooting:
		remaining := countdown(st.Remaining, dt)
		if remaining == 0 {
			gun.State = component.Ready{}
			return 0, false
		}
		gun.State = component.Shooting{Remaining: remaining}
		return remaining, false
	case component.Reloading:
		remaining := countdown(st.Remaining, dt)
		if remaining == 0 {
			gun.State = component.Ready{}
			gun.Ammo = gun.MaxAmmo
			return 0, true
		}
		gun.State = component.Reloading{Remaining: remaining}
		return remaining * math.Pi, false
	case nil:
		gun.State = component.Ready{}
	}
	return 0, false
}

// GunSystem runs the ammo/reload state machine and its fire and reload gates.
type GunSystem struct {
	ecs             *entity.ECS
	cfg             config.GunConfig
	spawner         *SpawnerSystem
	eventDispatcher *event.Dispatcher
}

func NewGunSystem(ecs *entity.ECS, cfg config.GunConfig, spawner *SpawnerSystem, eventDispatcher *event.Dispatcher) *GunSystem {
	return &GunSystem{
		ecs:             ecs,
		cfg:             cfg,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
	}
}

// Tick advances the gun's countdown and returns the extra rotation to pose with.
func (s *GunSystem) Tick(gunID types.EntityID, deltaTime float64) float64 {
	gun, ok := s.ecs.Guns[gunID]
	if !ok {
		return 0
	}
	extra, reloaded := TickGun(gun, deltaTime)
	if reloaded {
		log.Printf("GunSystem: reload complete, ammo %d/%d", gun.Ammo, gun.MaxAmmo)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ReloadCompleted, Data: gunID})
	}
	return extra
}

// Pose rebuilds the gun's local transform from its aim angle: it orbits its
// parent at GunOffset and is rotated by angle, plus extra toward the side it
// faces.
func (s *GunSystem) Pose(gunID types.EntityID, extra float64) {
	gun, ok := s.ecs.Guns[gunID]
	if !ok {
		return
	}
	transform, ok := s.ecs.Transforms[gunID]
	if !ok {
		return
	}
	dx, dy := utils.FromAngle(gun.Angle)
	transform.X = dx * config.GunOffset
	transform.Y = dy * config.GunOffset
	if gun.FacingLeft {
		transform.Rotation = gun.Angle - extra
	} else {
		transform.Rotation = gun.Angle + extra
	}
}

// TryFire fires one projectile if the gun is Ready with ammo left.
// A closed gate is a silent no-op.
func (s *GunSystem) TryFire(gunID types.EntityID) (types.EntityID, bool) {
	gun, ok := s.ecs.Guns[gunID]
	if !ok || !gun.IsReady() || gun.Ammo <= 0 {
		return 0, false
	}
	gun.Ammo--
	gun.State = component.Shooting{Remaining: s.cfg.FireCooldownSecs}

	origin := s.ecs.WorldTransform(gunID)
	projectile := s.spawner.Spawn(origin, gun.Angle)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotFiredData{Gun: gunID, Projectile: projectile, AmmoLeft: gun.Ammo},
	})
	return projectile, true
}

// TryReload starts a reload if the gun is Ready and not full.
func (s *GunSystem) TryReload(gunID types.EntityID) bool {
	gun, ok := s.ecs.Guns[gunID]
	if !ok || !gun.IsReady() || gun.Ammo >= gun.MaxAmmo {
		return false
	}
	gun.State = component.Reloading{Remaining: s.cfg.ReloadSecs}
	log.Printf("GunSystem: reloading (%d/%d)", gun.Ammo, gun.MaxAmmo)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ReloadStarted, Data: gunID})
	return true
}
