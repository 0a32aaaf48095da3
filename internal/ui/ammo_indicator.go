// internal/ui/ammo_indicator.go
package ui

import (
	"strconv"

	"go-top-down-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const ammoTextHeight = 22

// AmmoIndicator отображает магазин в виде ряда кружков.
type AmmoIndicator struct {
	X, Y float32
}

// NewAmmoIndicator создает новый индикатор патронов.
func NewAmmoIndicator(x, y float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y}
}

// Draw рисует по кружку на патрон, пустые кружки тёмные.
func (i *AmmoIndicator) Draw(screen *ebiten.Image, face font.Face, ammo, maxAmmo int) {
	r := float32(config.AmmoPipRadius)
	step := r*2 + config.AmmoPipSpacing
	top := i.Y + ammoTextHeight

	for j := 0; j < maxAmmo; j++ {
		cx := i.X + float32(j)*step + r
		cy := top + r
		c := config.AmmoEmptyColor
		if j < ammo {
			c = config.AmmoFullColor
		}
		vector.DrawFilledCircle(screen, cx, cy, r, c, true)
		vector.StrokeCircle(screen, cx, cy, r, 1, config.TextLightColor, true)
	}

	ammoText := strconv.Itoa(ammo) + "/" + strconv.Itoa(maxAmmo)
	text.Draw(screen, ammoText, face, int(i.X), int(i.Y)+config.HUDFontSize, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *AmmoIndicator) GetHeight() float32 {
	return ammoTextHeight + config.AmmoPipRadius*2
}
