// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	readyColor     = color.RGBA{50, 205, 50, 255}
	shootingColor  = color.RGBA{255, 165, 0, 255}
	reloadingColor = color.RGBA{70, 130, 180, 255}
)

// StateIndicator — кружок цвета состояния оружия, вспыхивает при выстреле.
type StateIndicator struct {
	X, Y         float32
	Radius       float32
	LastShotTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// StateColor maps a gun state to the indicator color.
func StateColor(state component.GunState) color.RGBA {
	switch state.(type) {
	case component.Shooting:
		return shootingColor
	case component.Reloading:
		return reloadingColor
	}
	return readyColor
}

// Pulse запускает вспышку.
func (i *StateIndicator) Pulse() {
	i.LastShotTime = time.Now()
}

func (i *StateIndicator) Draw(screen *ebiten.Image, state component.GunState) {
	elapsed := time.Since(i.LastShotTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, StateColor(state), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.TextLightColor, true)
}
