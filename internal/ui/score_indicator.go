// internal/ui/score_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-top-down-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator отображает счёт убийств и выстрелов с обводкой.
type ScoreIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewScoreIndicator создает индикатор, выровненный по правому краю в точке x.
func NewScoreIndicator(x, y int) *ScoreIndicator {
	return &ScoreIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, face font.Face, kills, shots int) {
	s := fmt.Sprintf("Kills: %d  Shots: %d", kills, shots)
	bounds := text.BoundString(face, s)
	x := i.X - bounds.Dx()
	y := i.Y

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, s, face, x, y, i.Color)
}
