// internal/system/explosion.go
package system

import (
	"sort"

	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/event"
	"github.com/aeft/zombie-shooter-game/internal/schedule"
	"github.com/aeft/zombie-shooter-game/internal/types"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

// ExplosionGameContext определяет методы, которые ExplosionSystem требует от Game.
type ExplosionGameContext interface {
	Defeat()
}

// ExplosionSystem раскручивает цепные взрывы бочек через очередь задач.
type ExplosionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	queue           *schedule.Queue
	game            ExplosionGameContext
}

func NewExplosionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, queue *schedule.Queue, game ExplosionGameContext) *ExplosionSystem {
	return &ExplosionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		queue:           queue,
		game:            game,
	}
}

// Explode detonates the barrel: the entity disappears, the blast covers a
// fixed radius, and every effect works off a snapshot taken right now.
func (s *ExplosionSystem) Explode(barrelID types.EntityID) {
	pos, ok := s.ecs.Positions[barrelID]
	if !ok {
		// Бочку уже снесло другим взрывом.
		return
	}
	x, y := pos.X, pos.Y
	radius := config.BarrelExplosionRadius

	RemoveEntity(s.ecs, barrelID)
	s.spawnBlast(x, y, radius)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ExplosionTriggered,
		Data: event.ExplosionData{X: x, Y: y, Radius: radius},
	})

	s.killZombiesInRadius(x, y, radius)
	s.destroyObstaclesInRadius(x, y, radius)
	s.chainBarrelsInRadius(x, y, radius)
	s.checkPlayerInRadius(x, y, radius)
}

// killZombiesInRadius снимает всё здоровье: награду начислит cleanup.
func (s *ExplosionSystem) killZombiesInRadius(x, y, radius float64) {
	for id := range s.ecs.Zombies {
		pos, hasPos := s.ecs.Positions[id]
		health, hasHealth := s.ecs.Healths[id]
		if !hasPos || !hasHealth {
			continue
		}
		if geom.Dist(x, y, pos.X, pos.Y) <= radius {
			health.Value = 0
		}
	}
}

func (s *ExplosionSystem) destroyObstaclesInRadius(x, y, radius float64) {
	var doomed []types.EntityID
	for id, obstacle := range s.ecs.Obstacles {
		if obstacle.Kind == defs.ObstacleBarrel {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if geom.Dist(x, y, pos.X, pos.Y) <= radius {
			doomed = append(doomed, id)
		}
	}
	sort.Slice(doomed, func(i, j int) bool { return doomed[i] < doomed[j] })

	for _, id := range doomed {
		data := event.ObstacleData{ID: id, Kind: string(s.ecs.Obstacles[id].Kind)}
		if pos, ok := s.ecs.Positions[id]; ok {
			data.X, data.Y = pos.X, pos.Y
		}
		RemoveEntity(s.ecs, id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ObstacleDestroyed, Data: data})
	}
}

// chainBarrelsInRadius marks every not-yet-exploding barrel in range and
// schedules its detonation with a staggered delay. The candidate set is
// fixed here; later explosions cannot re-enter it.
func (s *ExplosionSystem) chainBarrelsInRadius(x, y, radius float64) {
	var triggered []types.EntityID
	for id, obstacle := range s.ecs.Obstacles {
		if obstacle.Kind != defs.ObstacleBarrel || obstacle.Exploding {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if geom.Dist(x, y, pos.X, pos.Y) <= radius {
			triggered = append(triggered, id)
		}
	}
	sort.Slice(triggered, func(i, j int) bool { return triggered[i] < triggered[j] })

	for i, id := range triggered {
		s.ecs.Obstacles[id].Exploding = true
		chainID := id
		delay := config.ChainDelayBase.Seconds() + float64(i)*config.ChainDelayStep.Seconds()
		s.queue.After(delay, func() { s.Explode(chainID) })
	}
}

func (s *ExplosionSystem) checkPlayerInRadius(x, y, radius float64) {
	if s.ecs.Run.Over {
		return
	}
	for id := range s.ecs.Players {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if geom.Dist(x, y, pos.X, pos.Y) <= radius {
			s.game.Defeat()
			return
		}
	}
}

func (s *ExplosionSystem) spawnBlast(x, y, radius float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Explosions[id] = &component.Explosion{
		MaxRadius: radius,
		Duration:  config.ExplosionEffectDuration,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ExplosionColor,
		Radius: 0,
	}
}
