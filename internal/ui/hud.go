// internal/ui/hud.go
package ui

import (
	"go-top-down-shooter/internal/component"
	"go-top-down-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// HUD собирает все индикаторы поверх мира.
type HUD struct {
	face      font.Face
	ammo      *AmmoIndicator
	reloadBar *ReloadBar
	state     *StateIndicator
	score     *ScoreIndicator
}

func NewHUD(face font.Face, reloadSecs float64) *HUD {
	margin := float32(config.HUDMargin)
	ammo := NewAmmoIndicator(margin, margin)
	barY := margin + ammo.GetHeight() + config.AmmoPipSpacing*2
	return &HUD{
		face:      face,
		ammo:      ammo,
		reloadBar: NewReloadBar(margin, barY, reloadSecs),
		state:     NewStateIndicator(float32(config.ScreenWidth)-margin-10, float32(config.ScreenHeight)-margin-10, 10),
		score:     NewScoreIndicator(config.ScreenWidth-config.HUDMargin, config.HUDMargin+config.HUDFontSize),
	}
}

// OnShot отмечает выстрел для вспышки индикатора.
func (h *HUD) OnShot() {
	h.state.Pulse()
}

func (h *HUD) Draw(screen *ebiten.Image, gun *component.Gun, kills, shots int) {
	if gun != nil {
		h.ammo.Draw(screen, h.face, gun.Ammo, gun.MaxAmmo)
		h.reloadBar.Draw(screen, gun.State)
		h.state.Draw(screen, gun.State)
	}
	h.score.Draw(screen, h.face, kills, shots)
}
