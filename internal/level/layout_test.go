// internal/level/layout_test.go
package level

import (
	"testing"

	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

func TestDefaultLayoutSeparationRules(t *testing.T) {
	layout := DefaultLayout()

	if len(layout.Walls) == 0 || len(layout.Trees) == 0 || len(layout.Barrels) == 0 {
		t.Fatalf("layout unexpectedly empty: %d walls, %d trees, %d barrels",
			len(layout.Walls), len(layout.Trees), len(layout.Barrels))
	}

	for _, tree := range layout.Trees {
		for _, wall := range layout.Walls {
			if d := geom.Dist(tree.X, tree.Y, wall.X, wall.Y); d < config.TreeWallMinDistance {
				t.Errorf("tree (%v,%v) is %.1f from wall (%v,%v), want >= %v",
					tree.X, tree.Y, d, wall.X, wall.Y, config.TreeWallMinDistance)
			}
		}
	}

	for _, b := range layout.Barrels {
		for _, other := range append(append([]Placement{}, layout.Walls...), layout.Trees...) {
			if d := geom.Dist(b.X, b.Y, other.X, other.Y); d < config.BarrelMinDistance {
				t.Errorf("barrel (%v,%v) is %.1f from %s (%v,%v), want >= %v",
					b.X, b.Y, d, other.Kind, other.X, other.Y, config.BarrelMinDistance)
			}
		}
	}
}

func TestDefaultLayoutRespectsZones(t *testing.T) {
	layout := DefaultLayout()
	zones := DefaultZones()

	for _, p := range layout.All() {
		if p.Landmark {
			continue
		}
		for _, zone := range zones {
			if zone.Circle.Contains(p.X, p.Y) {
				t.Errorf("%s (%v,%v) placed inside protected zone at (%v,%v)",
					p.Kind, p.X, p.Y, zone.Circle.X, zone.Circle.Y)
			}
		}
	}

	// Весь глиф должен лежать внутри собственной зоны.
	landmarkZone := zones[1].Circle
	for _, wall := range layout.Walls {
		if wall.Landmark && !landmarkZone.Contains(wall.X, wall.Y) {
			t.Errorf("landmark wall (%v,%v) outside the landmark zone", wall.X, wall.Y)
		}
	}
}

func TestDefaultLayoutDropsMarkedCandidates(t *testing.T) {
	layout := DefaultLayout()

	dropped := []struct {
		kind defs.ObstacleKind
		x, y float64
	}{
		{defs.ObstacleTree, 760, 90},
		{defs.ObstacleTree, 270, 690},
		{defs.ObstacleTree, 620, 470},
		{defs.ObstacleBarrel, 300, 680},
		{defs.ObstacleBarrel, 700, 520},
	}
	for _, want := range dropped {
		for _, p := range layout.All() {
			if p.Kind == want.kind && p.X == want.x && p.Y == want.y {
				t.Errorf("expected %s (%v,%v) to be filtered out", want.kind, want.x, want.y)
			}
		}
	}

	// Глиф переживает фильтрацию целиком: 13 сегментов буквы Z.
	landmarks := 0
	for _, wall := range layout.Walls {
		if wall.Landmark {
			landmarks++
		}
	}
	if landmarks != 13 {
		t.Errorf("expected 13 landmark walls, got %d", landmarks)
	}
}

func TestGenerateLandmarkExemption(t *testing.T) {
	zone := Zone{Circle: geom.Circle{X: 100, Y: 100, Radius: 50}, LandmarkExempt: true}
	strictZone := Zone{Circle: geom.Circle{X: 400, Y: 400, Radius: 50}}

	walls := []Placement{
		{Kind: defs.ObstacleWall, X: 100, Y: 100, Landmark: true},
		{Kind: defs.ObstacleWall, X: 110, Y: 100},
		{Kind: defs.ObstacleWall, X: 400, Y: 400, Landmark: true},
	}

	layout := Generate(walls, nil, nil, []Zone{zone, strictZone})

	if len(layout.Walls) != 1 {
		t.Fatalf("expected exactly 1 surviving wall, got %d", len(layout.Walls))
	}
	if !layout.Walls[0].Landmark || layout.Walls[0].X != 100 {
		t.Errorf("wrong survivor: %+v", layout.Walls[0])
	}
}

func TestGenerateTreesFilterAgainstWallCandidates(t *testing.T) {
	// Стена-кандидат внутри зоны всё равно вытесняет дерево рядом с собой.
	zone := Zone{Circle: geom.Circle{X: 200, Y: 200, Radius: 60}}
	walls := []Placement{{Kind: defs.ObstacleWall, X: 200, Y: 200}}
	trees := []Placement{
		{Kind: defs.ObstacleTree, X: 230, Y: 200},
		{Kind: defs.ObstacleTree, X: 600, Y: 600},
	}

	layout := Generate(walls, trees, nil, []Zone{zone})

	if len(layout.Walls) != 0 {
		t.Fatalf("wall inside zone should be pruned, got %d walls", len(layout.Walls))
	}
	if len(layout.Trees) != 1 || layout.Trees[0].X != 600 {
		t.Fatalf("tree near pruned wall candidate should still be dropped, got %+v", layout.Trees)
	}
}

func TestGenerateBarrelsFilterAgainstFinalPlacements(t *testing.T) {
	// Стена внутри зоны исчезает, и бочка рядом с ней остаётся.
	zone := Zone{Circle: geom.Circle{X: 200, Y: 200, Radius: 60}}
	walls := []Placement{{Kind: defs.ObstacleWall, X: 200, Y: 200}}
	barrels := []Placement{{Kind: defs.ObstacleBarrel, X: 230, Y: 300}}

	layout := Generate(walls, nil, barrels, []Zone{zone})

	if len(layout.Barrels) != 1 {
		t.Fatalf("barrel near a pruned wall should survive, got %d barrels", len(layout.Barrels))
	}
}
