// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-top-down-shooter/internal/app"
	"go-top-down-shooter/internal/config"
	"go-top-down-shooter/internal/defs"
	"go-top-down-shooter/internal/state"
	"go-top-down-shooter/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	gunPath := flag.String("gun", "assets/data/gun.json", "gun tuning JSON (missing file keeps defaults)")
	enemiesPath := flag.String("enemies", "assets/data/enemies.json", "enemy definitions JSON (missing file keeps defaults)")
	enemyID := flag.String("enemy", config.EnemyDefaultDefID, "enemy definition id to spawn")
	motion := flag.String("motion", "physics", "projectile motion: kinematic or physics")
	seed := flag.Int64("seed", 0, "enemy spawn seed (0 = time based)")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address (empty disables)")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts := app.DefaultOptions()
	opts.Seed = *seed

	mode, ok := system.ParseMotionMode(*motion)
	if !ok {
		log.Fatalf("unknown -motion %q (want kinematic or physics)", *motion)
	}
	opts.Motion = mode

	gunCfg, err := defs.LoadGunDefinition(*gunPath)
	switch {
	case err == nil:
		opts.Gun = gunCfg
	case errors.Is(err, os.ErrNotExist):
		log.Printf("gun definition %s not found, using defaults", *gunPath)
	default:
		log.Fatal(err)
	}

	enemyDefs, err := defs.LoadEnemyDefinitions(*enemiesPath)
	switch {
	case err == nil:
		def, ok := enemyDefs[*enemyID]
		if !ok {
			log.Fatalf("enemy definition %q not found in %s", *enemyID, *enemiesPath)
		}
		opts.Enemy = def
	case errors.Is(err, os.ErrNotExist):
		log.Printf("enemy definitions %s not found, using defaults", *enemiesPath)
	default:
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	gameState, err := state.NewGameState(sm, opts)
	if err != nil {
		log.Fatal(err)
	}
	sm.SetState(gameState)
	defer gameState.Close()

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Top-Down Shooter")
	if err := ebiten.RunGame(appGame); err != nil {
		gameState.Close()
		log.Fatal(err)
	}
}
