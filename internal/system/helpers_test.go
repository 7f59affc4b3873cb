// internal/system/helpers_test.go
package system

import (
	"github.com/aeft/zombie-shooter-game/internal/component"
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/event"
	"github.com/aeft/zombie-shooter-game/internal/types"
)

// fakeGame counts defeat calls and mirrors the real game's freeze flag so
// the touch check stops after the first contact, like in a live run.
type fakeGame struct {
	ecs     *entity.ECS
	defeats int
}

func (f *fakeGame) Defeat() {
	f.defeats++
	f.ecs.Run.Over = true
}

// eventRecorder собирает события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func addPlayer(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Players[id] = &component.Player{Radius: config.PlayerRadius, Speed: config.PlayerSpeed}
	return id
}

func addZombie(ecs *entity.ECS, defID string, x, y float64, health int) types.EntityID {
	def := defs.ZombieLibrary[defID]
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Healths[id] = &component.Health{Value: health}
	ecs.Zombies[id] = &component.Zombie{DefID: defID}
	ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color, Radius: def.Visuals.Radius}
	return id
}

func addObstacle(ecs *entity.ECS, kind defs.ObstacleKind, x, y float64) types.EntityID {
	var moveHalf, hitHalf float64
	switch kind {
	case defs.ObstacleWall:
		moveHalf, hitHalf = config.WallMoveHalf, config.WallHitHalf
	case defs.ObstacleTree:
		moveHalf, hitHalf = config.TreeMoveHalf, config.TreeHitHalf
	default:
		moveHalf, hitHalf = config.BarrelMoveHalf, config.BarrelHitHalf
	}

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Obstacles[id] = &component.Obstacle{Kind: kind, Health: config.ObstacleStartHealth}
	ecs.MoveShapes[id] = &component.MoveShape{HalfW: moveHalf, HalfH: moveHalf}
	ecs.HitShapes[id] = &component.HitShape{HalfW: hitHalf, HalfH: hitHalf}
	return id
}
