// internal/ui/overlay.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DefeatOverlay затемняет экран и показывает итоги забега.
type DefeatOverlay struct {
	faces *Faces
}

func NewDefeatOverlay(faces *Faces) *DefeatOverlay {
	return &DefeatOverlay{faces: faces}
}

func (o *DefeatOverlay) Draw(screen *ebiten.Image, run *component.RunState) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 180}, false)

	centerLine := func(str string, face font.Face, y int, clr color.RGBA) {
		bounds := text.BoundString(face, str)
		text.Draw(screen, str, face, (config.ScreenWidth-bounds.Dx())/2, y, clr)
	}

	totalKills := 0
	for _, count := range run.Kills {
		totalKills += count
	}

	centerLine("YOU DIED", o.faces.Title, 360, config.DefeatColor)
	centerLine(fmt.Sprintf("Survived %02d:%02d", run.SurvivalSeconds/60, run.SurvivalSeconds%60),
		o.faces.Regular, 410, config.TextLightColor)
	centerLine(fmt.Sprintf("Kills: %d    Coins: %d", totalKills, run.Coins),
		o.faces.Regular, 436, config.TextLightColor)

	y := 470
	for _, def := range defs.ZombieDefs {
		if count := run.Kills[def.ID]; count > 0 {
			centerLine(fmt.Sprintf("%s x%d", def.Name, count), o.faces.Regular, y, config.TextDimColor)
			y += 22
		}
	}

	centerLine("Press R to restart", o.faces.Regular, y+30, config.TextDimColor)
}
