// internal/system/collision.go
package system

import (
	"sort"

	"github.com/aeft/zombie-shooter-game/internal/entity"
	"github.com/aeft/zombie-shooter-game/internal/types"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

// CollisionSystem отвечает на запросы о столкновениях для остальных систем.
// Каждое препятствие несёт две рамки: узкую для движения и широкую для
// попаданий, обе привязаны к одной сущности.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

// MoveBlocked reports whether a circle at (x, y) overlaps any movement shape.
func (s *CollisionSystem) MoveBlocked(x, y, radius float64) bool {
	for id, shape := range s.ecs.MoveShapes {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		rect := geom.Rect{X: pos.X, Y: pos.Y, HalfW: shape.HalfW, HalfH: shape.HalfH}
		if geom.CircleRectOverlap(x, y, radius, rect) {
			return true
		}
	}
	return false
}

// HitObstacleAt returns the obstacle whose hit shape overlaps the circle.
func (s *CollisionSystem) HitObstacleAt(x, y, radius float64) (types.EntityID, bool) {
	for id, shape := range s.ecs.HitShapes {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		rect := geom.Rect{X: pos.X, Y: pos.Y, HalfW: shape.HalfW, HalfH: shape.HalfH}
		if geom.CircleRectOverlap(x, y, radius, rect) {
			return id, true
		}
	}
	return 0, false
}

// ZombieAt returns the zombie whose body overlaps the circle.
func (s *CollisionSystem) ZombieAt(x, y, radius float64) (types.EntityID, bool) {
	for id := range s.ecs.Zombies {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		body := float64(render.Radius)
		if geom.DistSq(x, y, pos.X, pos.Y) < (radius+body)*(radius+body) {
			return id, true
		}
	}
	return 0, false
}

// BeamHit is one segment intersection, ordered by distance from the origin.
type BeamHit struct {
	ID       types.EntityID
	T        float64
	IsZombie bool
}

// BeamFirstHit returns the closest zombie or obstacle hit along the segment.
func (s *CollisionSystem) BeamFirstHit(x1, y1, x2, y2 float64) (BeamHit, bool) {
	var hits []BeamHit

	for id := range s.ecs.Zombies {
		pos, hasPos := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		if t, hit := geom.SegmentCircleHit(x1, y1, x2, y2, pos.X, pos.Y, float64(render.Radius)); hit {
			hits = append(hits, BeamHit{ID: id, T: t, IsZombie: true})
		}
	}

	for id, shape := range s.ecs.HitShapes {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		rect := geom.Rect{X: pos.X, Y: pos.Y, HalfW: shape.HalfW, HalfH: shape.HalfH}
		if t, hit := geom.SegmentRectHit(x1, y1, x2, y2, rect); hit {
			hits = append(hits, BeamHit{ID: id, T: t})
		}
	}

	if len(hits) == 0 {
		return BeamHit{}, false
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return hits[0], true
}
