// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/state"
	"github.com/aeft/zombie-shooter-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать сразу с игры, минуя меню

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
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadAll("assets/data/"); err != nil {
		log.Printf("WARNING: using built-in definitions: %v", err)
	}

	faces := ui.LoadFaces()
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, faces))
	} else {
		sm.SetState(state.NewMenuState(sm, faces))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Zone Z")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
