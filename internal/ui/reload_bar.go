// internal/ui/reload_bar.go
package ui

import (
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ReloadBar заполняется по мере перезарядки и скрыт в остальное время.
type ReloadBar struct {
	X, Y          float32
	Width, Height float32
	ReloadSecs    float64
}

func NewReloadBar(x, y float32, reloadSecs float64) *ReloadBar {
	return &ReloadBar{
		X:          x,
		Y:          y,
		Width:      config.ReloadBarWidth,
		Height:     config.ReloadBarHeight,
		ReloadSecs: reloadSecs,
	}
}

// Progress returns reload completion in [0, 1] and whether a reload is running.
func (b *ReloadBar) Progress(state component.GunState) (float64, bool) {
	reloading, ok := state.(component.Reloading)
	if !ok || b.ReloadSecs <= 0 {
		return 0, false
	}
	p := 1 - reloading.Remaining/b.ReloadSecs
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p, true
}

func (b *ReloadBar) Draw(screen *ebiten.Image, state component.GunState) {
	p, ok := b.Progress(state)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, render.DarkenColor(config.ReloadBarColor), false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*float32(p), b.Height, config.ReloadBarColor, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.TextLightColor, false)
}
