// internal/state/input.go
package state

import (
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput читает клавиатуру и мышь в снимок на текущий кадр.
func pollInput() input.Snapshot {
	in := input.Snapshot{
		WindowWidth:  config.ScreenWidth,
		WindowHeight: config.ScreenHeight,
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsFocused() && x >= 0 && y >= 0 && x < config.ScreenWidth && y < config.ScreenHeight {
		in = in.WithCursor(float64(x), float64(y))
	}

	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Reload = ebiten.IsKeyPressed(ebiten.KeyR)
	in.SpawnEnemy = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY--
	}
	return in
}

// pausePressed — клавиши паузы, общие для игры и паузы.
func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
}
