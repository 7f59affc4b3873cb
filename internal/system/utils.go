// internal/system/utils.go
package system

import (
	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/types"
)

// ApplyDamage наносит урон сущности и вешает на неё вспышку.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 {
		return
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	if _, isZombie := ecs.Zombies[entityID]; isZombie {
		ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
	}
}

// RemoveEntity выбрасывает сущность из всех коллекций.
func RemoveEntity(ecs *entity.ECS, entityID types.EntityID) {
	delete(ecs.Positions, entityID)
	delete(ecs.Velocities, entityID)
	delete(ecs.Healths, entityID)
	delete(ecs.Renderables, entityID)
	delete(ecs.Players, entityID)
	delete(ecs.Zombies, entityID)
	delete(ecs.Projectiles, entityID)
	delete(ecs.Beams, entityID)
	delete(ecs.Obstacles, entityID)
	delete(ecs.MoveShapes, entityID)
	delete(ecs.HitShapes, entityID)
	delete(ecs.DamageFlashes, entityID)
	delete(ecs.Explosions, entityID)
}
