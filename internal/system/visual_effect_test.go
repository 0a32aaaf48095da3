package system

import (
	"testing"

	"go-top-down-shooter/internal/config"
)

func TestDamageFlash_SetOnHitAndExpires(t *testing.T) {
	r := newRig(MotionKinematic)
	id := r.enemies.SpawnAt(100, 0)
	visuals := NewVisualEffectSystem(r.ecs)

	if r.enemies.ApplyDamage(id, config.ProjectileDamage) {
		t.Fatal("enemy died from a single hit")
	}
	flash, ok := r.ecs.DamageFlashes[id]
	if !ok {
		t.Fatal("surviving enemy has no damage flash")
	}
	if flash.Intensity() != 1 {
		t.Fatalf("fresh flash intensity = %v, want 1", flash.Intensity())
	}

	visuals.Update(config.DamageFlashDuration / 2)
	if got := flash.Intensity(); got <= 0 || got >= 1 {
		t.Fatalf("half-way intensity = %v", got)
	}
	visuals.Update(config.DamageFlashDuration)
	if _, ok := r.ecs.DamageFlashes[id]; ok {
		t.Fatal("flash outlived its duration")
	}
}

func TestDamageFlash_RemovedWithEnemy(t *testing.T) {
	r := newRig(MotionKinematic)
	id := r.enemies.SpawnAt(100, 0)
	r.enemies.ApplyDamage(id, config.ProjectileDamage)
	if !r.enemies.ApplyDamage(id, config.ProjectileDamage) {
		t.Fatal("second hit did not kill")
	}
	if _, ok := r.ecs.DamageFlashes[id]; ok {
		t.Fatal("despawned enemy kept its flash")
	}
}
