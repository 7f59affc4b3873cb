// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUD рисует счёт, таймер выживания и прилавок с оружием.
type HUD struct {
	faces *Faces
}

func NewHUD(faces *Faces) *HUD {
	return &HUD{faces: faces}
}

func (h *HUD) Draw(screen *ebiten.Image, ecs *entity.ECS, gameTime float64) {
	run := ecs.Run

	totalKills := 0
	for _, count := range run.Kills {
		totalKills += count
	}

	minutes := int(gameTime) / 60
	seconds := int(gameTime) % 60

	lines := []string{
		fmt.Sprintf("%02d:%02d", minutes, seconds),
		fmt.Sprintf("Coins: %d", run.Coins),
		fmt.Sprintf("Kills: %d", totalKills),
		fmt.Sprintf("Threat: x%.2f", run.Multiplier),
	}
	y := 24
	for _, line := range lines {
		text.Draw(screen, line, h.faces.Regular, 16, y, config.TextLightColor)
		y += 22
	}

	h.drawShop(screen, ecs)
}

// drawShop выводит прилавок в правом верхнем углу.
func (h *HUD) drawShop(screen *ebiten.Image, ecs *entity.ECS) {
	run := ecs.Run
	y := 24
	for i, weapon := range defs.WeaponDefs {
		label := fmt.Sprintf("[%d] %s", i+1, weapon.Name)
		if run.CurrentWeapon == weapon.ID {
			label += " <"
		} else if !run.Owns(weapon.ID) {
			label += fmt.Sprintf("  %dc", weapon.Cost)
		}

		clr := config.TextDimColor
		if run.CurrentWeapon == weapon.ID {
			clr = config.TextLightColor
		}
		text.Draw(screen, label, h.faces.Regular, config.ScreenWidth-190, y, clr)
		y += 22
	}
}
