// internal/level/layout.go
package level

import (
	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

// Placement is one authored or generated obstacle position.
type Placement struct {
	Kind     defs.ObstacleKind
	X        float64
	Y        float64
	Landmark bool
}

// Zone is a circular exclusion region where obstacle generation is
// suppressed. Landmark-tagged wall candidates ignore zones that carry
// the LandmarkExempt flag but are still filtered by every other zone.
type Zone struct {
	Circle         geom.Circle
	LandmarkExempt bool
}

// Layout holds the final filtered obstacle placements for one run.
type Layout struct {
	Walls   []Placement
	Trees   []Placement
	Barrels []Placement
}

// All returns every placement in one slice, walls first.
func (l Layout) All() []Placement {
	out := make([]Placement, 0, len(l.Walls)+len(l.Trees)+len(l.Barrels))
	out = append(out, l.Walls...)
	out = append(out, l.Trees...)
	out = append(out, l.Barrels...)
	return out
}

// Generate filters the candidate lists into a final layout. Rules, in order:
// trees are dropped near any wall candidate, walls and trees are dropped
// inside protected zones (landmark walls keep their exemption), and barrels
// are dropped near any surviving wall or tree and inside any zone.
func Generate(wallCands, treeCands, barrelCands []Placement, zones []Zone) Layout {
	var layout Layout

	// Деревья не должны пересекаться со стенами.
	trees := make([]Placement, 0, len(treeCands))
	for _, tree := range treeCands {
		if !nearAny(tree, wallCands, config.TreeWallMinDistance) {
			trees = append(trees, tree)
		}
	}

	for _, wall := range wallCands {
		if blockedByZone(wall, zones) {
			continue
		}
		layout.Walls = append(layout.Walls, wall)
	}

	for _, tree := range trees {
		if blockedByZone(tree, zones) {
			continue
		}
		layout.Trees = append(layout.Trees, tree)
	}

	for _, barrel := range barrelCands {
		if nearAny(barrel, layout.Walls, config.BarrelMinDistance) {
			continue
		}
		if nearAny(barrel, layout.Trees, config.BarrelMinDistance) {
			continue
		}
		if blockedByZone(barrel, zones) {
			continue
		}
		layout.Barrels = append(layout.Barrels, barrel)
	}

	return layout
}

func nearAny(p Placement, others []Placement, minDistance float64) bool {
	for _, other := range others {
		if geom.Dist(p.X, p.Y, other.X, other.Y) < minDistance {
			return true
		}
	}
	return false
}

func blockedByZone(p Placement, zones []Zone) bool {
	for _, zone := range zones {
		if p.Landmark && zone.LandmarkExempt {
			continue
		}
		if zone.Circle.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}
