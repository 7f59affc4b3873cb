// internal/ui/banner.go
package ui

import (
	"fmt"

	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Banner показывает короткие уведомления: рост сложности, покупку оружия.
// Подписывается на события и живёт, пока тикает таймер.
type Banner struct {
	faces   *Faces
	message string
	timer   float64
}

func NewBanner(faces *Faces, dispatcher *event.Dispatcher) *Banner {
	b := &Banner{faces: faces}
	dispatcher.Subscribe(event.DifficultyIncreased, b)
	dispatcher.Subscribe(event.WeaponPurchased, b)
	return b
}

// OnEvent обрабатывает события, на которые подписан баннер.
func (b *Banner) OnEvent(e event.Event) {
	switch e.Type {
	case event.DifficultyIncreased:
		if multiplier, ok := e.Data.(float64); ok {
			b.show(fmt.Sprintf("THE HORDE GROWS  x%.2f", multiplier))
		}
	case event.WeaponPurchased:
		if weaponID, ok := e.Data.(string); ok {
			name := weaponID
			if def, found := defs.WeaponLibrary[weaponID]; found {
				name = def.Name
			}
			b.show(fmt.Sprintf("PURCHASED: %s", name))
		}
	}
}

func (b *Banner) show(message string) {
	b.message = message
	b.timer = config.BannerDuration
}

func (b *Banner) Update(deltaTime float64) {
	if b.timer > 0 {
		b.timer -= deltaTime
	}
}

func (b *Banner) Draw(screen *ebiten.Image) {
	if b.timer <= 0 {
		return
	}

	bounds := text.BoundString(b.faces.Regular, b.message)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, b.message, b.faces.Regular, x, 64, config.BannerColor)
}
