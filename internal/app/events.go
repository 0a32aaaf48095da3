package app

import (
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/event"
)

// GameEventListener applies gameplay consequences of dispatched events.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		l.game.ShotsFired++
	case event.ProjectileHit:
		hit, ok := e.Data.(event.ProjectileHitData)
		if !ok {
			return
		}
		damage := config.ProjectileDamage
		if proj, ok := l.game.ECS.Projectiles[hit.Projectile]; ok && proj.Damage > 0 {
			damage = proj.Damage
		}
		l.game.DespawnSystem.Despawn(hit.Projectile)
		l.game.EnemySystem.ApplyDamage(hit.Target, damage)
	case event.EnemyKilled:
		l.game.Kills++
	}
}
