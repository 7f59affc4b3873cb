// internal/system/render.go
package system

import (
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawObstacles(screen)
	s.drawRenderables(screen)
	s.drawBeams(screen)
	s.drawExplosions(screen)
}

func (s *RenderSystem) drawObstacles(screen *ebiten.Image) {
	for id, obstacle := range s.ecs.Obstacles {
		pos, hasPos := s.ecs.Positions[id]
		move, hasMove := s.ecs.MoveShapes[id]
		if !hasPos || !hasMove {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)

		switch obstacle.Kind {
		case defs.ObstacleWall:
			halfW, halfH := float32(move.HalfW), float32(move.HalfH)
			vector.DrawFilledRect(screen, x-halfW, y-halfH, halfW*2, halfH*2, config.WallColor, true)
		case defs.ObstacleTree:
			// Ствол под кроной.
			halfW, halfH := float32(move.HalfW), float32(move.HalfH)
			vector.DrawFilledRect(screen, x-halfW, y-halfH, halfW*2, halfH*2, config.TreeTrunkColor, true)
			canopy := float32(config.TreeHitHalf)
			vector.DrawFilledCircle(screen, x, y, canopy, config.TreeColor, true)
		case defs.ObstacleBarrel:
			vector.DrawFilledCircle(screen, x, y, float32(move.HalfW)+2, config.BarrelColor, true)
			if obstacle.Exploding {
				vector.StrokeCircle(screen, x, y, float32(move.HalfW)+5, 2, config.FlashColor, true)
			}
		}
	}
}

func (s *RenderSystem) drawRenderables(screen *ebiten.Image) {
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if _, isExplosion := s.ecs.Explosions[id]; isExplosion {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)

		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+3, config.EliteStroke, true)
		}

		bodyRadius := render.Radius
		if fraction, damaged := s.healthFraction(id); damaged {
			// Тёмный силуэт остаётся полным, яркое тело сжимается к остатку здоровья.
			silhouette := render.Color
			silhouette.R /= 2
			silhouette.G /= 2
			silhouette.B /= 2
			vector.DrawFilledCircle(screen, x, y, render.Radius, silhouette, true)
			bodyRadius = render.Radius * (0.45 + 0.55*fraction)
		}
		vector.DrawFilledCircle(screen, x, y, bodyRadius, render.Color, true)

		if flash, ok := s.ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
			overlay := config.FlashColor
			overlay.A = uint8(200 * flash.Timer / flash.Duration)
			vector.DrawFilledCircle(screen, x, y, render.Radius, overlay, true)
		}
	}
}

// healthFraction returns the remaining health share for a damaged zombie,
// so the body can be drawn proportionally smaller inside its silhouette.
func (s *RenderSystem) healthFraction(id types.EntityID) (float32, bool) {
	zombie, ok := s.ecs.Zombies[id]
	if !ok {
		return 1, false
	}
	health, hasHealth := s.ecs.Healths[id]
	def, hasDef := defs.ZombieLibrary[zombie.DefID]
	if !hasHealth || !hasDef || def.Health <= 0 || health.Value >= def.Health {
		return 1, false
	}
	return float32(health.Value) / float32(def.Health), true
}

func (s *RenderSystem) drawBeams(screen *ebiten.Image) {
	for _, beam := range s.ecs.Beams {
		vector.StrokeLine(screen,
			float32(beam.X1), float32(beam.Y1),
			float32(beam.X2), float32(beam.Y2),
			float32(beam.Width), config.BeamColor, true)
	}
}

func (s *RenderSystem) drawExplosions(screen *ebiten.Image) {
	for id := range s.ecs.Explosions {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, 4, config.ExplosionColor, true)
	}
}
