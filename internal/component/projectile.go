// internal/component/projectile.go
package component

import (
	"github.com/aeft/zombie-shooter-game/internal/defs"
)

// Projectile представляет выпущенный снаряд.
type Projectile struct {
	Kind      defs.ProjectileKind
	Damage    int
	Speed     float64
	Direction float64
	TTL       float64 // remaining lifetime in seconds
}

// Beam holds the segment of a beam projectile. Beams are tested as a line
// with width instead of a point-sized body.
type Beam struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
}
