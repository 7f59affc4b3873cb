// internal/state/game_state.go
package state

import (
	"math"

	game "github.com/aeft/zombie-shooter-game/internal/app"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние одного забега
type GameState struct {
	sm      *StateMachine
	game    *game.Game
	faces   *ui.Faces
	hud     *ui.HUD
	banner  *ui.Banner
	overlay *ui.DefeatOverlay
}

func NewGameState(sm *StateMachine, faces *ui.Faces) *GameState {
	gameLogic := game.NewGame(0)

	return &GameState{
		sm:      sm,
		game:    gameLogic,
		faces:   faces,
		hud:     ui.NewHUD(faces),
		banner:  ui.NewBanner(faces, gameLogic.EventDispatcher),
		overlay: ui.NewDefeatOverlay(faces),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.ECS.Run.Over {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.sm.SetState(NewMenuState(g.sm, g.faces))
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.TogglePause()
	}

	g.readMovement()
	g.readWeaponKeys()
	g.readFire()

	g.game.Update(deltaTime)
	g.banner.Update(deltaTime)
}

// restart строит новый мир и переподключает баннер к его диспетчеру.
func (g *GameState) restart() {
	g.game.Reset()
	g.banner = ui.NewBanner(g.faces, g.game.EventDispatcher)
}

func (g *GameState) readMovement() {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	g.game.SetPlayerInput(dx, dy)
}

func (g *GameState) readWeaponKeys() {
	hotkeys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for i, key := range hotkeys {
		if i < len(defs.WeaponDefs) && inpututil.IsKeyJustPressed(key) {
			g.game.PurchaseWeapon(defs.WeaponDefs[i].ID)
		}
	}
}

// readFire целится от игрока в курсор; стрельба работает с зажатой кнопкой.
func (g *GameState) readFire() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	playerPos, ok := g.game.ECS.Positions[g.game.PlayerID]
	if !ok {
		return
	}
	cursorX, cursorY := ebiten.CursorPosition()
	angle := math.Atan2(float64(cursorY)-playerPos.Y, float64(cursorX)-playerPos.X)
	g.game.FireWeapon(angle)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen, g.game.ECS, g.game.GetGameTime())
	g.banner.Draw(screen)

	if g.game.ECS.Run.Over {
		g.overlay.Draw(screen, g.game.ECS.Run)
	}
}

func (g *GameState) Exit() {}
