// internal/level/spawn_test.go
package level

import (
	"testing"

	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/defs"
	"github.com/aeft/zombie-shooter-game/internal/utils"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

func worldBounds() geom.Rect {
	return geom.Rect{
		X:     config.ScreenWidth / 2,
		Y:     config.ScreenHeight / 2,
		HalfW: config.ScreenWidth / 2,
		HalfH: config.ScreenHeight / 2,
	}
}

func TestFindSafeSpawnEmptyWorldReturnsCenter(t *testing.T) {
	rng := utils.NewPRNGService(1)
	x, y := FindSafeSpawn(nil, worldBounds(), rng)

	if x != config.ScreenWidth/2 || y != config.ScreenHeight/2 {
		t.Errorf("empty world should yield the first preferred candidate, got (%v,%v)", x, y)
	}
}

func TestFindSafeSpawnSkipsBlockedCandidates(t *testing.T) {
	rng := utils.NewPRNGService(1)
	// Препятствие точно в центре блокирует первый кандидат.
	obstacles := []Placement{{Kind: defs.ObstacleBarrel, X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}}

	x, y := FindSafeSpawn(obstacles, worldBounds(), rng)

	if x == config.ScreenWidth/2 && y == config.ScreenHeight/2 {
		t.Fatalf("spawn landed on the obstacle")
	}
	if d := geom.Dist(x, y, obstacles[0].X, obstacles[0].Y); d < config.SpawnSafeDistance {
		t.Errorf("spawn %.1f from obstacle, want >= %v", d, config.SpawnSafeDistance)
	}
}

func TestFindSafeSpawnAlwaysInBounds(t *testing.T) {
	rng := utils.NewPRNGService(99)
	bounds := worldBounds()

	// Частый случай: препятствия толпятся вокруг центра.
	var obstacles []Placement
	for dx := -200.0; dx <= 200; dx += 90 {
		for dy := -200.0; dy <= 200; dy += 90 {
			obstacles = append(obstacles, Placement{Kind: defs.ObstacleTree, X: bounds.X + dx, Y: bounds.Y + dy})
		}
	}

	for i := 0; i < 50; i++ {
		x, y := FindSafeSpawn(obstacles, bounds, rng)
		if x < bounds.Left() || x > bounds.Right() || y < bounds.Top() || y > bounds.Bottom() {
			t.Fatalf("spawn (%v,%v) escaped bounds", x, y)
		}
	}
}

func TestFindSafeSpawnFallsBackWhenEverythingBlocked(t *testing.T) {
	rng := utils.NewPRNGService(5)
	bounds := worldBounds()

	// Сетка с шагом 100 не оставляет ни одной безопасной точки
	// в радиусе поиска: до ближайшего узла всегда меньше 80.
	var obstacles []Placement
	for dx := -300.0; dx <= 300; dx += 100 {
		for dy := -300.0; dy <= 300; dy += 100 {
			obstacles = append(obstacles, Placement{Kind: defs.ObstacleWall, X: bounds.X + dx, Y: bounds.Y + dy})
		}
	}

	x, y := FindSafeSpawn(obstacles, bounds, rng)

	if x != bounds.X || y != bounds.Y {
		t.Errorf("fallback should return the first preferred candidate, got (%v,%v)", x, y)
	}
}
