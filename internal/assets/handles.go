// internal/assets/handles.go
package assets

// Handle names a sprite owned by the renderer's sprite manager.
// The zero Handle means "nothing to draw".
type Handle string

const (
	GunImage        Handle = "images/gun"
	BulletImage     Handle = "images/bullet"
	EnemyImage      Handle = "images/tetra"
	PlayerImage     Handle = "images/player"
	BackgroundImage Handle = "images/background"
)

// GunAssets groups the handles the gun and its projectiles are drawn with.
type GunAssets struct {
	Gun    Handle
	Bullet Handle
}

// EnemyAssets holds the enemy sprite sheet handle.
type EnemyAssets struct {
	Image Handle
}

// LevelAssets holds level-wide visuals.
type LevelAssets struct {
	Player     Handle
	Background Handle
}

// Library is the full set of handles used by a session.
type Library struct {
	Gun   GunAssets
	Enemy EnemyAssets
	Level LevelAssets
}

// DefaultLibrary returns handles for the procedurally generated sprites.
func DefaultLibrary() Library {
	return Library{
		Gun:   GunAssets{Gun: GunImage, Bullet: BulletImage},
		Enemy: EnemyAssets{Image: EnemyImage},
		Level: LevelAssets{Player: PlayerImage, Background: BackgroundImage},
	}
}

// All lists every handle in the library.
func (l Library) All() []Handle {
	return []Handle{l.Gun.Gun, l.Gun.Bullet, l.Enemy.Image, l.Level.Player, l.Level.Background}
}
