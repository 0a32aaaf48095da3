package system

import (
	"math"
	"testing"

	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/event"
)

func TestTickGun_CountdownMonotonic(t *testing.T) {
	gun := component.NewGun(7)
	gun.State = component.Shooting{Remaining: 0.5}

	steps := []float64{0.125, 0.125, 0.125}
	want := []float64{0.375, 0.25, 0.125}
	for i, dt := range steps {
		extra, _ := TickGun(&gun, dt)
		st, ok := gun.State.(component.Shooting)
		if !ok {
			t.Fatalf("step %d: left Shooting early (%T)", i, gun.State)
		}
		if st.Remaining != want[i] || extra != want[i] {
			t.Fatalf("step %d: remaining=%v extra=%v, want %v", i, st.Remaining, extra, want[i])
		}
	}

	extra, _ := TickGun(&gun, 0.125)
	if !gun.IsReady() || extra != 0 {
		t.Fatalf("expected Ready exactly when remaining hits 0, got %T extra=%v", gun.State, extra)
	}
}

func TestTickGun_OvershootClampsToZero(t *testing.T) {
	gun := component.NewGun(7)
	gun.Ammo = 2
	gun.State = component.Reloading{Remaining: 0.1}

	_, reloaded := TickGun(&gun, 1.0)
	if !reloaded || !gun.IsReady() || gun.Ammo != 7 {
		t.Fatalf("reload overshoot: reloaded=%v state=%T ammo=%d", reloaded, gun.State, gun.Ammo)
	}
}

func TestTickGun_ReloadWobbleDecays(t *testing.T) {
	gun := component.NewGun(7)
	gun.State = component.Reloading{Remaining: 2}
	prev := math.Inf(1)
	for i := 0; i < 15; i++ {
		extra, _ := TickGun(&gun, 0.125)
		if extra >= prev {
			t.Fatalf("wobble did not decay: %v after %v", extra, prev)
		}
		if st := gun.State.(component.Reloading); extra != st.Remaining*math.Pi {
			t.Fatalf("extra %v != remaining·π %v", extra, st.Remaining*math.Pi)
		}
		prev = extra
	}
}

func TestTickGun_InexactFrameDeltas(t *testing.T) {
	const dt = 1.0 / 60.0
	cases := []struct {
		name  string
		state component.GunState
		ticks int
	}{
		{"cooldown 0.5s", component.Shooting{Remaining: 0.5}, 30},
		{"reload 2s", component.Reloading{Remaining: 2}, 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gun := component.NewGun(7)
			gun.Ammo = 0
			gun.State = tc.state
			for i := 1; i < tc.ticks; i++ {
				TickGun(&gun, dt)
				if gun.IsReady() {
					t.Fatalf("Ready after %d ticks, want %d", i, tc.ticks)
				}
			}
			TickGun(&gun, dt)
			if !gun.IsReady() {
				t.Fatalf("still %#v after %d ticks of 1/60s", gun.State, tc.ticks)
			}
		})
	}
}

func TestTickGun_ReadyIsIdle(t *testing.T) {
	gun := component.NewGun(7)
	extra, reloaded := TickGun(&gun, 1)
	if extra != 0 || reloaded || !gun.IsReady() || gun.Ammo != 7 {
		t.Fatalf("Ready tick changed something: %+v", gun)
	}
}

func TestTryFire_FromReady(t *testing.T) {
	for ammo := 1; ammo <= 7; ammo++ {
		r := newRig(MotionKinematic)
		shots := r.countEvents(event.ShotFired)
		gun := r.ecs.Guns[r.gun]
		gun.Ammo = ammo
		gun.Angle = math.Pi / 3
		r.guns.Pose(r.gun, 0)

		id, ok := r.guns.TryFire(r.gun)
		if !ok {
			t.Fatalf("ammo=%d: fire refused", ammo)
		}
		if gun.Ammo != ammo-1 {
			t.Fatalf("ammo=%d: after fire %d", ammo, gun.Ammo)
		}
		st, isShooting := gun.State.(component.Shooting)
		if !isShooting || st.Remaining != r.cfg.FireCooldownSecs {
			t.Fatalf("state = %#v, want Shooting{%v}", gun.State, r.cfg.FireCooldownSecs)
		}
		if len(r.ecs.Projectiles) != 1 || *shots != 1 {
			t.Fatalf("projectiles=%d events=%d, want 1", len(r.ecs.Projectiles), *shots)
		}

		origin := r.ecs.WorldTransform(r.gun)
		pos := r.ecs.Transforms[id]
		if pos.X != origin.X || pos.Y != origin.Y || pos.Rotation != origin.Rotation {
			t.Fatalf("projectile at %+v, gun at %+v", *pos, origin)
		}
		vel := r.ecs.Velocities[id]
		if speed := math.Hypot(vel.X, vel.Y); math.Abs(speed-r.cfg.ProjectileSpeed) > 1e-9 {
			t.Fatalf("speed = %v, want %v", speed, r.cfg.ProjectileSpeed)
		}
		if dir := math.Atan2(vel.Y, vel.X); math.Abs(dir-math.Pi/3) > 1e-9 {
			t.Fatalf("direction = %v, want π/3", dir)
		}
		if r.ecs.Parents[id] != r.level {
			t.Fatalf("projectile parent = %d, want level %d", r.ecs.Parents[id], r.level)
		}
	}
}

func TestTryFire_GateClosed(t *testing.T) {
	cases := []struct {
		name  string
		state component.GunState
		ammo  int
	}{
		{"shooting", component.Shooting{Remaining: 0.25}, 5},
		{"reloading", component.Reloading{Remaining: 1}, 5},
		{"empty", component.Ready{}, 0},
		{"shooting and empty", component.Shooting{Remaining: 0.1}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(MotionKinematic)
			gun := r.ecs.Guns[r.gun]
			gun.State, gun.Ammo = c.state, c.ammo

			if _, ok := r.guns.TryFire(r.gun); ok {
				t.Fatal("fire accepted through a closed gate")
			}
			if gun.Ammo != c.ammo || gun.State != c.state || len(r.ecs.Projectiles) != 0 {
				t.Fatalf("closed gate had effects: ammo=%d state=%#v projectiles=%d", gun.Ammo, gun.State, len(r.ecs.Projectiles))
			}
		})
	}
}

func TestTryReload(t *testing.T) {
	r := newRig(MotionKinematic)
	started := r.countEvents(event.ReloadStarted)
	completed := r.countEvents(event.ReloadCompleted)
	gun := r.ecs.Guns[r.gun]

	if r.guns.TryReload(r.gun) {
		t.Fatal("reload accepted with a full magazine")
	}

	gun.Ammo = 3
	if !r.guns.TryReload(r.gun) {
		t.Fatal("reload refused")
	}
	if st, ok := gun.State.(component.Reloading); !ok || st.Remaining != r.cfg.ReloadSecs {
		t.Fatalf("state = %#v, want Reloading{%v}", gun.State, r.cfg.ReloadSecs)
	}
	if r.guns.TryReload(r.gun) {
		t.Fatal("reload accepted while reloading")
	}
	if _, ok := r.guns.TryFire(r.gun); ok {
		t.Fatal("fire accepted while reloading")
	}

	for i := 0; i < 15; i++ {
		r.guns.Tick(r.gun, 0.125)
		if gun.Ammo != 3 {
			t.Fatalf("ammo refilled early at step %d", i)
		}
	}
	r.guns.Tick(r.gun, 0.125)
	if !gun.IsReady() || gun.Ammo != gun.MaxAmmo {
		t.Fatalf("after 2s: state=%T ammo=%d", gun.State, gun.Ammo)
	}
	if *started != 1 || *completed != 1 {
		t.Fatalf("events started=%d completed=%d", *started, *completed)
	}
}

func TestTryReload_BlockedWhileShooting(t *testing.T) {
	r := newRig(MotionKinematic)
	gun := r.ecs.Guns[r.gun]
	if _, ok := r.guns.TryFire(r.gun); !ok {
		t.Fatal("fire refused")
	}
	if r.guns.TryReload(r.gun) {
		t.Fatal("reload accepted during recoil")
	}
	if _, ok := gun.State.(component.Shooting); !ok {
		t.Fatalf("state = %T", gun.State)
	}
}
