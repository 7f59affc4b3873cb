// internal/state/menu_state.go
package state

import (
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	faces *ui.Faces
}

func NewMenuState(sm *StateMachine, faces *ui.Faces) *MenuState {
	return &MenuState{sm: sm, faces: faces}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.faces))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	centerLine := func(str string, y int) {
		bounds := text.BoundString(m.faces.Regular, str)
		text.Draw(screen, str, m.faces.Regular, (config.ScreenWidth-bounds.Dx())/2, y, config.TextDimColor)
	}

	title := "ZONE Z"
	titleBounds := text.BoundString(m.faces.Title, title)
	text.Draw(screen, title, m.faces.Title, (config.ScreenWidth-titleBounds.Dx())/2, 380, config.BannerColor)

	centerLine("WASD — move    Mouse — shoot", 440)
	centerLine("1-3 — buy and switch weapons    P — pause", 466)
	centerLine("Press Space to start", 520)
}

func (m *MenuState) Exit() {}
