package system

import (
	"math"
	"testing"

	"go-top-down-shooter/internal/assets"
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/entity"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/physics"
)

func TestProjectileSystem_SubstepsMatchSingleStep(t *testing.T) {
	for _, steps := range []int{1, 2, 5, 32, 60, 333} {
		ecs := entity.NewECS()
		id := ecs.SpawnProjectile(entity.NewProjectileBundle(assets.DefaultLibrary().Gun,
			component.Transform{}, component.Velocity{X: 320}), 0)
		sys := NewProjectileSystem(ecs)

		dt := 0.5 / float64(steps)
		for i := 0; i < steps; i++ {
			sys.FixedUpdate(dt)
		}
		pos := ecs.Transforms[id]
		if math.Abs(pos.X-160) > 1e-9 || pos.Y != 0 {
			t.Fatalf("%d steps: position (%v, %v), want (160, 0)", steps, pos.X, pos.Y)
		}
	}
}

func TestProjectileSystem_SkipsPhysicsDriven(t *testing.T) {
	r := newRig(MotionPhysics)
	id := r.spawner.Spawn(component.Transform{X: 5}, 0)
	if _, ok := r.ecs.Velocities[id]; ok {
		t.Fatal("physics projectile should not carry a Velocity")
	}
	NewProjectileSystem(r.ecs).FixedUpdate(1)
	if x := r.ecs.Transforms[id].X; x != 5 {
		t.Fatalf("kinematic integrator moved a physics projectile to %v", x)
	}
}

func TestSpawner_PhysicsBody(t *testing.T) {
	r := newRig(MotionPhysics)
	id := r.spawner.Spawn(component.Transform{X: 10, Y: -4, Rotation: math.Pi / 2}, math.Pi/2)

	rb, ok := r.ecs.RigidBodies[id]
	if !ok {
		t.Fatal("no rigid body attached")
	}
	st, ok := r.world.Body(rb.Body)
	if !ok {
		t.Fatal("body missing from the world")
	}
	if st.Radius != r.cfg.ProjectileRadius || st.X != 10 || st.Y != -4 {
		t.Fatalf("body = %+v", st)
	}
	if math.Abs(st.VelocityX) > 1e-9 || math.Abs(st.VelocityY-r.cfg.ProjectileSpeed) > 1e-9 {
		t.Fatalf("velocity = (%v, %v)", st.VelocityX, st.VelocityY)
	}

	for i := 0; i < 32; i++ {
		r.physics.Step(1.0 / 64.0)
	}
	pos := r.ecs.Transforms[id]
	if math.Abs(pos.Y-156) > 1e-9 || pos.Rotation != math.Pi/2 {
		t.Fatalf("after 0.5s: %+v, want y=156 and unchanged rotation", *pos)
	}
}

func TestSpawner_KinematicSensorBody(t *testing.T) {
	r := newRig(MotionKinematic)
	var hits []event.ProjectileHitData
	r.events.Subscribe(event.ProjectileHit, event.ListenerFunc(func(e event.Event) {
		hits = append(hits, e.Data.(event.ProjectileHitData))
	}))
	enemy := r.enemies.SpawnAt(100, 0)
	id := r.spawner.Spawn(component.Transform{X: 40}, 0)

	if _, ok := r.ecs.Velocities[id]; !ok {
		t.Fatal("kinematic projectile lost its Velocity")
	}
	rb, ok := r.ecs.RigidBodies[id]
	if !ok {
		t.Fatal("kinematic projectile has no sensor body")
	}
	if st, _ := r.world.Body(rb.Body); st.Kind != physics.Kinematic || st.Layer != physics.LayerProjectile {
		t.Fatalf("sensor body = %+v", st)
	}

	motion := NewProjectileSystem(r.ecs)
	for i := 0; i < 64 && len(hits) == 0; i++ {
		motion.FixedUpdate(1.0 / 64.0)
		r.physics.Step(1.0 / 64.0)
	}
	if len(hits) != 1 || hits[0].Projectile != id || hits[0].Target != enemy {
		t.Fatalf("hits = %+v, want projectile %d on enemy %d", hits, id, enemy)
	}
}

func TestParseMotionMode(t *testing.T) {
	if m, ok := ParseMotionMode("physics"); !ok || m != MotionPhysics {
		t.Fatal("physics not parsed")
	}
	if m, ok := ParseMotionMode("kinematic"); !ok || m != MotionKinematic {
		t.Fatal("kinematic not parsed")
	}
	if _, ok := ParseMotionMode("rocket"); ok {
		t.Fatal("unknown mode accepted")
	}
}
