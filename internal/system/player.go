// internal/system/player.go
package system

import (
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/event"
)

// PlayerSystem отвечает за счёт игрока: монеты и статистику убийств.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.ZombieKilled {
		return
	}
	kill, ok := e.Data.(event.KillData)
	if !ok {
		return
	}

	s.ecs.Run.Coins += kill.Reward
	s.ecs.Run.Kills[kill.DefID]++
}
