// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"go-top-down-shooter/internal/app"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/event"
	"go-top-down-shooter/internal/render"
	"go-top-down-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	opts     app.Options
	sprites  *render.SpriteManager
	renderer *render.Renderer
	hud      *ui.HUD
	face     font.Face
	debug    bool
}

func NewGameState(sm *StateMachine, opts app.Options) (*GameState, error) {
	gameLogic, err := app.NewGame(opts)
	if err != nil {
		return nil, err
	}
	face, err := ui.NewFace(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}

	palette := render.DefaultPalette()
	sprites := render.NewSpriteManager(palette)
	sprites.Load(opts.Assets)

	gs := &GameState{
		sm:       sm,
		game:     gameLogic,
		opts:     opts,
		sprites:  sprites,
		renderer: render.NewRenderer(sprites, palette, config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(face, opts.Gun.ReloadSecs),
		face:     face,
	}
	gameLogic.EventDispatcher.Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) {
		gs.hud.OnShot()
	}))
	return gs, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) error {
	if pausePressed() {
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.restart()
		return nil
	}
	return g.game.Update(deltaTime, pollInput())
}

// restart начинает новую сессию с теми же настройками.
func (g *GameState) restart() {
	gameLogic, err := app.NewGame(g.opts)
	if err != nil {
		log.Printf("GameState: restart failed: %v", err)
		return
	}
	g.game.Teardown()
	g.game = gameLogic
	g.game.EventDispatcher.Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) {
		g.hud.OnShot()
	}))
	g.sprites.Reload(g.opts.Assets)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)
	gun, _ := g.game.Gun()
	g.hud.Draw(screen, gun, g.game.Kills, g.game.ShotsFired)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f\nProjectiles: %d  Enemies: %d  Bodies: %d\nMotion: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			len(g.game.ECS.Projectiles), len(g.game.ECS.Enemies), g.game.Physics.Len(),
			g.game.SpawnerSystem.Mode()), config.HUDMargin, config.ScreenHeight-4*config.HUDMargin-16)
	}
}

func (g *GameState) Exit() {}

// Close завершает сессию.
func (g *GameState) Close() {
	g.game.Teardown()
	g.sprites.Cleanup()
}
