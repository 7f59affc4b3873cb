// internal/component/obstacle.go
package component

import (
	"github.com/aeft/zombie-shooter-game/internal/defs"
)

// Obstacle is a destructible piece of the level. The entity carrying it also
// carries a MoveShape and a HitShape; both representations share the entity
// ID, so destroying one always finds its counterpart.
type Obstacle struct {
	Kind      defs.ObstacleKind
	Health    int  // remaining projectile hits
	Exploding bool // barrels only: set once, suppresses repeat chain triggers
	Landmark  bool // part of the landmark glyph, tagged at generation time
}

// MoveShape is the tight bound that blocks locomotion.
type MoveShape struct {
	HalfW, HalfH float64
}

// HitShape is the generous bound that absorbs projectiles.
type HitShape struct {
	HalfW, HalfH float64
}
