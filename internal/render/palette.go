// internal/render/palette.go
package render

import (
	"image/color"

	"go-top-down-shooter/internal/config"
)

// Palette holds all the colors the world renderer needs.
type Palette struct {
	Background  color.RGBA
	Grid        color.RGBA
	Player      color.RGBA
	Gun         color.RGBA
	Muzzle      color.RGBA
	Projectile  color.RGBA
	Enemy       color.RGBA
	EnemyStroke color.RGBA
	StrokeWidth float32
}

// DefaultPalette returns the colors from config.
func DefaultPalette() Palette {
	return Palette{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Player:      config.PlayerColor,
		Gun:         config.GunColor,
		Muzzle:      config.GunMuzzleColor,
		Projectile:  config.ProjectileColor,
		Enemy:       config.EnemyColor,
		EnemyStroke: config.EnemyStrokeColor,
		StrokeWidth: 2,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves a color halfway to white.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}
