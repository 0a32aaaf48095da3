// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-top-down-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: время сессии не идёт, мир рисуется под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if pausePressed() {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, config.PauseOverlayAlpha}, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.font, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight / 2
	text.Draw(screen, pauseText, s.font, x, y, config.TextLightColor)
}

func (s *PauseState) Exit() {}
