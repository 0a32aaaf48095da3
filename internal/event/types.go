// internal/event/types.go
package event

import "go-top-down-shooter/internal/types"

const (
	ShotFired       EventType = "ShotFired"       // Выстрел произведён
	ReloadStarted   EventType = "ReloadStarted"   // Началась перезарядка
	ReloadCompleted EventType = "ReloadCompleted" // Магазин снова полон
	ProjectileHit   EventType = "ProjectileHit"   // Снаряд задел врага
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled" // Враг уничтожен
)

// ShotFiredData is the payload of ShotFired.
type ShotFiredData struct {
	Gun        types.EntityID
	Projectile types.EntityID
	AmmoLeft   int
}

// ProjectileHitData is the payload of ProjectileHit.
type ProjectileHitData struct {
	Projectile types.EntityID
	Target     types.EntityID
}
