// internal/system/movement.go
package system

import (
	"math"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs       *entity.ECS
	collision *CollisionSystem
}

func NewMovementSystem(ecs *entity.ECS, collision *CollisionSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, collision: collision}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.updatePlayer(deltaTime)
	s.updateZombies(deltaTime)
}

func (s *MovementSystem) updatePlayer(deltaTime float64) {
	for id, player := range s.ecs.Players {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		dx, dy := player.InputX, player.InputY
		length := math.Sqrt(dx*dx + dy*dy)
		if length == 0 {
			continue
		}
		dx, dy = dx/length, dy/length

		step := player.Speed * deltaTime
		s.moveBlocked(pos, dx*step, dy*step, player.Radius)

		pos.X = geom.Clamp(pos.X, player.Radius, config.ScreenWidth-player.Radius)
		pos.Y = geom.Clamp(pos.Y, player.Radius, config.ScreenHeight-player.Radius)
	}
}

func (s *MovementSystem) updateZombies(deltaTime float64) {
	playerPos := s.playerPosition()
	if playerPos == nil {
		return
	}

	for id, zombie := range s.ecs.Zombies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		// Чистое преследование: вектор пересчитывается каждый тик.
		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist == 0 {
			vel.X, vel.Y = 0, 0
			continue
		}

		speed := zombieSpeed(zombie.DefID)
		vel.X = dx / dist * speed
		vel.Y = dy / dist * speed

		radius := 10.0
		if render, ok := s.ecs.Renderables[id]; ok {
			radius = float64(render.Radius)
		}
		s.moveBlocked(pos, vel.X*deltaTime, vel.Y*deltaTime, radius)
	}
}

// moveBlocked advances a circle axis by axis so it can slide along the
// movement shapes instead of sticking to them.
func (s *MovementSystem) moveBlocked(pos *component.Position, stepX, stepY, radius float64) {
	if stepX != 0 && !s.collision.MoveBlocked(pos.X+stepX, pos.Y, radius) {
		pos.X += stepX
	}
	if stepY != 0 && !s.collision.MoveBlocked(pos.X, pos.Y+stepY, radius) {
		pos.Y += stepY
	}
}

func (s *MovementSystem) playerPosition() *component.Position {
	for id := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return pos
		}
	}
	return nil
}

func zombieSpeed(defID string) float64 {
	if def, ok := defs.ZombieLibrary[defID]; ok {
		return def.Speed
	}
	return 0
}
