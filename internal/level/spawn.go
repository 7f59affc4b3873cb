// internal/level/spawn.go
package level

import (
	"log"
	"math"

	"github.com/aeft/zombie-shooter-game/internal/config"
	"github.com/aeft/zombie-shooter-game/internal/utils"
	"github.com/aeft/zombie-shooter-game/pkg/geom"
)

// preferredSpawnOffsets are tried in order, relative to the arena center.
var preferredSpawnOffsets = [][2]float64{
	{0, 0},
	{-120, 0},
	{120, 0},
	{0, -120},
	{0, 120},
	{-200, 160},
	{200, 160},
}

// FindSafeSpawn returns a point clear of every obstacle. It tries the
// preferred candidates first, then random samples around the center, and
// finally falls back to the first candidate so the caller always gets a
// usable coordinate.
func FindSafeSpawn(obstacles []Placement, bounds geom.Rect, rng *utils.PRNGService) (float64, float64) {
	cx, cy := bounds.X, bounds.Y

	for _, offset := range preferredSpawnOffsets {
		x, y := clampToBounds(cx+offset[0], cy+offset[1], bounds)
		if spawnIsSafe(x, y, obstacles) {
			return x, y
		}
	}

	for i := 0; i < config.SpawnSearchAttempts; i++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * config.SpawnSearchRadius
		x, y := clampToBounds(cx+math.Cos(angle)*radius, cy+math.Sin(angle)*radius, bounds)
		if spawnIsSafe(x, y, obstacles) {
			return x, y
		}
	}

	x, y := clampToBounds(cx+preferredSpawnOffsets[0][0], cy+preferredSpawnOffsets[0][1], bounds)
	log.Printf("WARNING: no safe spawn found after %d attempts, falling back to (%.0f, %.0f)", config.SpawnSearchAttempts, x, y)
	return x, y
}

func spawnIsSafe(x, y float64, obstacles []Placement) bool {
	for _, obstacle := range obstacles {
		if geom.Dist(x, y, obstacle.X, obstacle.Y) < config.SpawnSafeDistance {
			return false
		}
	}
	return true
}

func clampToBounds(x, y float64, bounds geom.Rect) (float64, float64) {
	margin := config.PlayerRadius
	return geom.Clamp(x, bounds.Left()+margin, bounds.Right()-margin),
		geom.Clamp(y, bounds.Top()+margin, bounds.Bottom()-margin)
}
