// internal/system/visual_effect.go
package system

import (
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Растим кольца взрывов
	for id, explosion := range s.ecs.Explosions {
		explosion.CurrentTimer += deltaTime

		if explosion.CurrentTimer >= explosion.Duration {
			// Эффект завершился, удаляем его
			delete(s.ecs.Explosions, id)
			delete(s.ecs.Renderables, id)
			delete(s.ecs.Positions, id)
			continue
		}

		// Обновляем радиус для анимации
		renderable, ok := s.ecs.Renderables[id]
		if ok {
			progress := float32(explosion.CurrentTimer / explosion.Duration)
			renderable.Radius = utils.Lerp(0, float32(explosion.MaxRadius), progress)
		}
	}
}
