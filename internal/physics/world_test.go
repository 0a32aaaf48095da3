package physics

import (
	"math"
	"testing"
)

func newTestWorld() *World {
	return NewWorld(1024, 1024, 32)
}

func TestWorld_DynamicBodyIntegrates(t *testing.T) {
	w := newTestWorld()
	id := w.CreateBody(BodyDef{Kind: Dynamic, Layer: LayerProjectile, VelocityX: 320, Radius: 8, LockRotation: true})

	for i := 0; i < 32; i++ {
		w.Step(1.0 / 64.0)
	}
	st, ok := w.Body(id)
	if !ok {
		t.Fatal("body should exist")
	}
	if math.Abs(st.X-160) > 1e-9 || st.Y != 0 {
		t.Fatalf("expected (160, 0) after 0.5s, got (%v, %v)", st.X, st.Y)
	}
}

func TestWorld_LockedRotationDoesNotSpin(t *testing.T) {
	w := newTestWorld()
	locked := w.CreateBody(BodyDef{Kind: Dynamic, Radius: 8, Rotation: 0.3, AngularVelocity: 5, LockRotation: true})
	free := w.CreateBody(BodyDef{Kind: Dynamic, Radius: 8, AngularVelocity: 2})

	w.Step(0.5)

	if st, _ := w.Body(locked); st.Rotation != 0.3 {
		t.Fatalf("locked body rotated to %v", st.Rotation)
	}
	if st, _ := w.Body(free); math.Abs(st.Rotation-1) > 1e-9 {
		t.Fatalf("free body rotation = %v, want 1", st.Rotation)
	}
}

func TestWorld_KinematicBodyIgnoresVelocity(t *testing.T) {
	w := newTestWorld()
	id := w.CreateBody(BodyDef{Kind: Kinematic, Layer: LayerEnemy, VelocityX: 100, Radius: 16})
	w.Step(1)
	if st, _ := w.Body(id); st.X != 0 {
		t.Fatalf("kinematic body moved by simulator: x=%v", st.X)
	}
	w.SetPosition(id, 40, -20)
	if st, _ := w.Body(id); st.X != 40 || st.Y != -20 {
		t.Fatalf("SetPosition not applied: %+v", st)
	}
}

func TestWorld_ProjectileEnemyContact(t *testing.T) {
	w := newTestWorld()
	enemy := w.CreateBody(BodyDef{Kind: Kinematic, Layer: LayerEnemy, X: 100, Radius: 16})
	bullet := w.CreateBody(BodyDef{Kind: Dynamic, Layer: LayerProjectile, X: 70, VelocityX: 320, Radius: 8, LockRotation: true})

	res := w.Step(1.0 / 64.0) // x=75, gap 25 > radii 24
	if len(res.Contacts) != 0 {
		t.Fatalf("unexpected early contact: %+v", res.Contacts)
	}
	res = w.Step(1.0 / 64.0) // x=80, overlap
	if len(res.Contacts) != 1 {
		t.Fatalf("expected one contact, got %+v", res.Contacts)
	}
	if res.Contacts[0].A != bullet || res.Contacts[0].B != enemy {
		t.Fatalf("contact = %+v, want {%d %d}", res.Contacts[0], bullet, enemy)
	}
}

func TestWorld_ProjectilesDoNotHitEachOther(t *testing.T) {
	w := newTestWorld()
	w.CreateBody(BodyDef{Kind: Dynamic, Layer: LayerProjectile, Radius: 8})
	w.CreateBody(BodyDef{Kind: Dynamic, Layer: LayerProjectile, X: 4, Radius: 8})
	if res := w.Step(1.0 / 64.0); len(res.Contacts) != 0 {
		t.Fatalf("projectiles should not collide: %+v", res.Contacts)
	}
}

func TestWorld_EscapedBodyReportedOnce(t *testing.T) {
	w := NewWorld(256, 256, 32)
	id := w.CreateBody(BodyDef{Kind: Dynamic, Layer: LayerProjectile, X: 120, VelocityX: 320, Radius: 8})

	res := w.Step(1.0 / 32.0) // x = 130 > 128
	if len(res.Escaped) != 1 || res.Escaped[0] != id {
		t.Fatalf("expected body %d to escape, got %+v", id, res.Escaped)
	}
	if res = w.Step(1.0 / 32.0); len(res.Escaped) != 0 {
		t.Fatalf("escape should be reported once, got %+v", res.Escaped)
	}
}

func TestWorld_RemoveBody(t *testing.T) {
	w := newTestWorld()
	enemy := w.CreateBody(BodyDef{Kind: Kinematic, Layer: LayerEnemy, Radius: 16})
	w.CreateBody(BodyDef{Kind: Dynamic, Layer: LayerProjectile, Radius: 8})

	w.RemoveBody(enemy)
	w.RemoveBody(enemy)

	if _, ok := w.Body(enemy); ok {
		t.Fatal("removed body still present")
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d, want 1", w.Len())
	}
	if res := w.Step(1.0 / 64.0); len(res.Contacts) != 0 {
		t.Fatalf("removed body still produced contacts: %+v", res.Contacts)
	}
}

func TestWorld_KinematicProjectileContact(t *testing.T) {
	w := newTestWorld()
	enemy := w.CreateBody(BodyDef{Kind: Kinematic, Layer: LayerEnemy, X: 100, Radius: 16})
	bullet := w.CreateBody(BodyDef{Kind: Kinematic, Layer: LayerProjectile, X: 50, Radius: 8})

	if res := w.Step(1.0 / 64.0); len(res.Contacts) != 0 {
		t.Fatalf("unexpected contact at distance 50: %+v", res.Contacts)
	}
	w.SetPosition(bullet, 80, 0)
	res := w.Step(1.0 / 64.0)
	if len(res.Contacts) != 1 || res.Contacts[0].A != bullet || res.Contacts[0].B != enemy {
		t.Fatalf("contacts = %+v, want one {%d %d}", res.Contacts, bullet, enemy)
	}
	if st, _ := w.Body(bullet); st.X != 80 {
		t.Fatalf("kinematic projectile moved by the world to %v", st.X)
	}
}

func TestWorld_KinematicProjectileEscape(t *testing.T) {
	w := NewWorld(256, 256, 32)
	id := w.CreateBody(BodyDef{Kind: Kinematic, Layer: LayerProjectile, X: 100, Radius: 8})

	if res := w.Step(1.0 / 64.0); len(res.Escaped) != 0 {
		t.Fatalf("in-bounds body escaped: %+v", res.Escaped)
	}
	w.SetPosition(id, 200, 0)
	if res := w.Step(1.0 / 64.0); len(res.Escaped) != 1 || res.Escaped[0] != id {
		t.Fatalf("escaped = %+v, want [%d]", res.Escaped, id)
	}
	if res := w.Step(1.0 / 64.0); len(res.Escaped) != 0 {
		t.Fatalf("escape should be reported once, got %+v", res.Escaped)
	}
}
