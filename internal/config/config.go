// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// FixedTimestep — шаг фиксированного обновления (движение снарядов, физика).
	FixedTimestep         = 1.0 / 64.0
	MaxFixedStepsPerFrame = 8

	// Мир центрирован в начале координат, ось Y направлена вверх.
	WorldWidth  = 4096
	WorldHeight = 4096
	PhysicsCell = 32

	PlayerSpeed  = 100.0 // pixels per second
	PlayerRadius = 14.0
	GunOffset    = 32.0 // расстояние от центра игрока до оружия
	GunLength    = 28.0
	GunThickness = 8.0

	ProjectileDamage   = 10.0
	ProjectileMaxRange = 1800.0

	EnemyHealth         = 20.0
	EnemySpeed          = 30.0
	EnemyRadius         = 16.0
	EnemySpawnRadius    = 360.0
	EnemyFrameCount     = 12
	EnemyFrameDuration  = 0.1
	EnemySpriteSize     = 32
	EnemyDefaultDefID   = "DEFAULT_ENEMY"
	DamageFlashDuration = 0.15
	HUDMargin           = 16
	HUDFontSize         = 16
	AmmoPipRadius       = 5.0
	AmmoPipSpacing      = 4.0
	ReloadBarWidth      = 120.0
	ReloadBarHeight     = 6.0
	PauseOverlayAlpha   = 140
	BackgroundGridCells = 64.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GridColor        = color.RGBA{40, 40, 58, 255}
	PlayerColor      = color.RGBA{70, 130, 180, 255}
	GunColor         = color.RGBA{200, 200, 210, 255}
	GunMuzzleColor   = color.RGBA{255, 215, 0, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	EnemyStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	AmmoFullColor    = color.RGBA{255, 215, 0, 255}
	AmmoEmptyColor   = color.RGBA{60, 60, 70, 255}
	ReloadBarColor   = color.RGBA{50, 205, 50, 255}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
)
